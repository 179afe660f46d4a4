package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, Paginate(items, 2, 3))
	assert.Equal(t, []int{7}, Paginate(items, 3, 3))
	assert.Empty(t, Paginate(items, 4, 3))
	assert.Equal(t, []int{1, 2, 3}, Paginate(items, 0, 3), "page below 1 clamps to 1")
	assert.Equal(t, items, Paginate(items, 1, 0), "non-positive page size disables paging")
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, PageCount(7, 3))
	assert.Equal(t, 2, PageCount(6, 3))
	assert.Equal(t, 1, PageCount(0, 3))
	assert.Equal(t, 1, PageCount(5, 0))
}
