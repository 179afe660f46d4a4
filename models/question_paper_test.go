package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBySectionBucketsAndSorts(t *testing.T) {
	papers := []QuestionPaper{
		{ID: "p1", Name: "Set B", Section: "Previous Year", Year: 2021},
		{ID: "p2", Name: "Set A", Section: "Previous Year", Year: 2023},
		{ID: "p3", Name: "Basics"},
		{ID: "p4", Name: "Advanced", Section: "General"},
		{ID: "p5", Name: "Undated", Section: "Previous Year"},
	}

	grouped := GroupBySection(papers)
	require.Len(t, grouped, 2)

	previous := grouped["Previous Year"]
	require.Len(t, previous, 3)
	assert.Equal(t, "p2", previous[0].ID, "newest year first")
	assert.Equal(t, "p1", previous[1].ID)
	assert.Equal(t, "p5", previous[2].ID, "papers without a year come last")

	general := grouped["General"]
	require.Len(t, general, 2)
	assert.Equal(t, "Advanced", general[0].Name, "unsectioned papers land in General, sorted by name")
	assert.Equal(t, "Basics", general[1].Name)
}

func TestSectionNamesFollowSubjectPriorities(t *testing.T) {
	subject := &Subject{SectionPriorities: map[string]int{
		"Previous Year": 1,
		"General":       5,
	}}
	grouped := GroupBySection([]QuestionPaper{
		{Name: "a", Section: "General"},
		{Name: "b", Section: "Previous Year"},
		{Name: "c", Section: "Mock Test"},
	})

	assert.Equal(t, []string{"Previous Year", "General", "Mock Test"}, SectionNames(grouped, subject))
}

func TestPapersBySubject(t *testing.T) {
	papers := []QuestionPaper{
		{ID: "p1", Subject: "s1"},
		{ID: "p2", Subject: "s2"},
	}
	filtered := PapersBySubject(papers, "s1")
	require.Len(t, filtered, 1)
	assert.Equal(t, "p1", filtered[0].ID)
}
