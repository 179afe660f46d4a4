package student

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examfit/api"
	"examfit/models"
	"examfit/session"
)

type fakeBackend struct {
	mu     sync.Mutex
	result models.TestResult
	saves  []savedAnswer
}

type savedAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     int    `json:"answer"`
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /student/tests/t1/result", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.result)
	})
	mux.HandleFunc("POST /student/tests/t1/answer", func(w http.ResponseWriter, r *http.Request) {
		var saved savedAnswer
		json.NewDecoder(r.Body).Decode(&saved)
		b.mu.Lock()
		b.saves = append(b.saves, saved)
		b.mu.Unlock()
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("POST /student/tests/t1/submit", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.result.Submitted = true
		b.result.Score = 1
		b.result.Total = 2
		result := b.result
		b.mu.Unlock()
		json.NewEncoder(w).Encode(result)
	})
	return mux
}

func (b *fakeBackend) savedAnswers() []savedAnswer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]savedAnswer(nil), b.saves...)
}

func newTestRunner(t *testing.T) (*Runner, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{result: models.TestResult{
		TestID: "t1",
		Questions: []models.Question{
			{ID: "q1", Text: "Q1", Options: []models.Option{{Text: "a"}, {Text: "b"}}},
			{ID: "q2", Text: "Q2", Options: []models.Option{{Text: "a"}, {Text: "b"}}},
		},
	}}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save("tok", nil))
	log := logrus.New()
	log.SetOutput(io.Discard)

	runner := NewRunner(api.New(server.URL, store, log), "t1", log)
	_, err := runner.Load(context.Background())
	require.NoError(t, err)
	return runner, backend
}

func TestAnswerSavesImmediately(t *testing.T) {
	runner, backend := newTestRunner(t)

	require.NoError(t, runner.Answer(context.Background(), "q1", 1))

	saves := backend.savedAnswers()
	require.Len(t, saves, 1)
	assert.Equal(t, savedAnswer{QuestionID: "q1", Answer: 1}, saves[0])
}

func TestAnswerIsImmutableOnceSet(t *testing.T) {
	runner, backend := newTestRunner(t)

	require.NoError(t, runner.Answer(context.Background(), "q1", 1))
	err := runner.Answer(context.Background(), "q1", 0)
	assert.True(t, errors.Is(err, ErrAlreadyAnswered))

	assert.Equal(t, map[string]int{"q1": 1}, runner.Answers())
	for _, saved := range backend.savedAnswers() {
		assert.Equal(t, 1, saved.Answer, "the held value never changes")
	}
}

func TestAnswerRejectsUnknownQuestion(t *testing.T) {
	runner, _ := newTestRunner(t)
	err := runner.Answer(context.Background(), "nope", 0)
	assert.True(t, errors.Is(err, ErrUnknownQuestion))
}

func TestAutosaveRepostsHeldAnswers(t *testing.T) {
	runner, backend := newTestRunner(t)
	runner.SetInterval(10 * time.Millisecond)

	require.NoError(t, runner.Answer(context.Background(), "q1", 1))
	runner.StartAutosave(context.Background())
	time.Sleep(60 * time.Millisecond)
	runner.StopAutosave()

	saves := backend.savedAnswers()
	require.Greater(t, len(saves), 2, "the interval re-posts beyond the immediate save")
	for _, saved := range saves {
		assert.Equal(t, savedAnswer{QuestionID: "q1", Answer: 1}, saved, "autosave resends the same value")
	}

	// No more saves after stop.
	count := len(saves)
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, backend.savedAnswers(), count)
}

func TestStartAutosaveIsIdempotent(t *testing.T) {
	runner, _ := newTestRunner(t)
	runner.SetInterval(10 * time.Millisecond)

	runner.StartAutosave(context.Background())
	runner.StartAutosave(context.Background())
	runner.StopAutosave()
	runner.StopAutosave() // second stop is a no-op
}

func TestSubmitStopsAutosaveAndLocksSession(t *testing.T) {
	runner, _ := newTestRunner(t)
	runner.SetInterval(10 * time.Millisecond)
	runner.StartAutosave(context.Background())

	require.NoError(t, runner.Answer(context.Background(), "q1", 1))
	result, err := runner.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.Equal(t, 1, result.Score)

	err = runner.Answer(context.Background(), "q2", 0)
	assert.True(t, errors.Is(err, ErrSubmitted))
}

func TestLoadSeedsExistingAnswers(t *testing.T) {
	backend := &fakeBackend{result: models.TestResult{
		TestID:    "t1",
		Questions: []models.Question{{ID: "q1"}, {ID: "q2"}},
		Answers:   map[string]int{"q1": 0},
	}}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save("tok", nil))
	log := logrus.New()
	log.SetOutput(io.Discard)

	runner := NewRunner(api.New(server.URL, store, log), "t1", log)
	_, err := runner.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, runner.Answered("q1"))
	err = runner.Answer(context.Background(), "q1", 1)
	assert.True(t, errors.Is(err, ErrAlreadyAnswered), "resumed answers stay locked")
}
