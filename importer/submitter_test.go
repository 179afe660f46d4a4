package importer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examfit/api"
	"examfit/models"
	"examfit/session"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save("test-token", nil))
	return api.New(baseURL, store, quietLogger())
}

func batch() []models.Question {
	return []models.Question{
		{Text: "Q1", Options: []models.Option{{Text: "a"}, {Text: "b"}}, CorrectIndex: 0},
		{Text: "Q2", Options: []models.Option{{Text: "a"}, {Text: "b"}}, CorrectIndex: 1},
		{Text: "Q3", Options: []models.Option{{Text: "a"}, {Text: "b"}}, CorrectIndex: 1},
	}
}

func TestSubmitStampsTargetAndCountsSuccess(t *testing.T) {
	var got api.BulkCreateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/questions/bulk", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(api.BulkCreateResponse{Created: len(got.Questions)})
	}))
	defer server.Close()

	submitter := NewSubmitter(testClient(t, server.URL), quietLogger())
	outcome, err := submitter.Submit(context.Background(), batch(), Target{
		Exam: "e1", Subject: "s1", QuestionPaper: "p1",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Submitted)
	assert.Equal(t, 3, outcome.Succeeded)
	assert.Equal(t, 0, outcome.Failed)

	assert.Equal(t, "e1", got.Exam)
	assert.Equal(t, "s1", got.Subject)
	assert.Equal(t, "p1", got.QuestionPaper)
	for _, q := range got.Questions {
		assert.Equal(t, "p1", q.QuestionPaper.String())
		assert.Equal(t, "s1", q.Subject.String())
		assert.Equal(t, "e1", q.Exam.String())
	}
}

func TestSubmitSurfacesPartialFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.BulkCreateResponse{
			Created: 2,
			Errors:  []api.BulkRowError{{Index: 1, Message: "duplicate question"}},
		})
	}))
	defer server.Close()

	submitter := NewSubmitter(testClient(t, server.URL), quietLogger())
	outcome, err := submitter.Submit(context.Background(), batch(), Target{Exam: "e1", Subject: "s1", QuestionPaper: "p1"})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.Submitted)
	assert.Equal(t, 2, outcome.Succeeded)
	assert.Equal(t, 1, outcome.Failed)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, "duplicate question", outcome.Errors[0].Message)
}

func TestSubmitNetworkFailureReportsNothingCommitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection errors

	submitter := NewSubmitter(testClient(t, server.URL), quietLogger())
	outcome, err := submitter.Submit(context.Background(), batch(), Target{Exam: "e1", Subject: "s1", QuestionPaper: "p1"})

	assert.Error(t, err)
	assert.Nil(t, outcome)
}
