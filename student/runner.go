package student

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"examfit/api"
	"examfit/models"
)

// DefaultAutosaveInterval matches the portal's 10-second autosave cadence.
const DefaultAutosaveInterval = 10 * time.Second

var (
	// ErrAlreadyAnswered enforces the append-only answers map: once a
	// question is answered the selection cannot change until submit.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrSubmitted is returned for writes against a submitted session.
	ErrSubmitted = errors.New("test already submitted")
	// ErrUnknownQuestion is returned for an answer to a question id not in
	// the loaded session.
	ErrUnknownQuestion = errors.New("question is not part of this test")
)

// Runner drives one test attempt: it mirrors the server-owned session,
// saves each selection immediately, and re-posts all held answers on a
// fixed interval as a redundancy measure against dropped saves. The server
// upserts answers idempotently by question id, so the interval racing the
// immediate save is benign.
type Runner struct {
	client   *api.Client
	log      *logrus.Logger
	testID   string
	interval time.Duration

	mu        sync.Mutex
	test      *models.Test
	answers   map[string]int
	submitted bool

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(client *api.Client, testID string, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
	}
	return &Runner{
		client:   client,
		log:      log,
		testID:   testID,
		interval: DefaultAutosaveInterval,
		answers:  make(map[string]int),
	}
}

// SetInterval overrides the autosave cadence; used by tests.
func (r *Runner) SetInterval(d time.Duration) {
	r.interval = d
}

// Load fetches the session state. A submitted session is returned as-is so
// the caller can go straight to review.
func (r *Runner) Load(ctx context.Context) (*models.Test, error) {
	result, err := r.client.GetTestResult(ctx, r.testID)
	if err != nil {
		return nil, err
	}
	test := &models.Test{
		TestID:        r.testID,
		Exam:          result.Exam,
		Subject:       result.Subject,
		QuestionPaper: result.QuestionPaper,
		Questions:     result.Questions,
		Submitted:     result.Submitted,
	}
	r.mu.Lock()
	r.test = test
	r.submitted = result.Submitted
	for id, answer := range result.Answers {
		r.answers[id] = answer
	}
	r.mu.Unlock()
	return test, nil
}

// Answer records a selection and saves it immediately. Re-selection is
// blocked; the held value never changes once accepted.
func (r *Runner) Answer(ctx context.Context, questionID string, option int) error {
	r.mu.Lock()
	if r.submitted {
		r.mu.Unlock()
		return ErrSubmitted
	}
	if !r.hasQuestion(questionID) {
		r.mu.Unlock()
		return ErrUnknownQuestion
	}
	if _, answered := r.answers[questionID]; answered {
		r.mu.Unlock()
		return ErrAlreadyAnswered
	}
	r.answers[questionID] = option
	r.mu.Unlock()

	if err := r.client.SaveAnswer(ctx, r.testID, questionID, option); err != nil {
		// The answer stays held locally; the autosave interval retries it.
		r.log.WithError(err).WithField("question", questionID).Warn("immediate answer save failed")
	}
	return nil
}

// Answered reports whether a question already holds an answer.
func (r *Runner) Answered(questionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.answers[questionID]
	return ok
}

// Answers returns a copy of the held answers map.
func (r *Runner) Answers() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.answers))
	for id, answer := range r.answers {
		out[id] = answer
	}
	return out
}

// StartAutosave launches the interval task. It is a no-op if already
// running. The task stops when StopAutosave is called or ctx is cancelled.
func (r *Runner) StartAutosave(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	done := make(chan struct{})
	r.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.flush(ctx)
			}
		}
	}()
}

// StopAutosave cancels the interval task and waits for the current tick to
// finish. In-flight requests complete or fail silently.
func (r *Runner) StopAutosave() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// flush re-posts every held answer. Failures are logged and dropped; the
// next tick tries again.
func (r *Runner) flush(ctx context.Context) {
	for questionID, answer := range r.Answers() {
		if err := r.client.SaveAnswer(ctx, r.testID, questionID, answer); err != nil {
			r.log.WithError(err).WithField("question", questionID).Debug("autosave failed")
		}
	}
}

// Submit locks the session and returns the scored result.
func (r *Runner) Submit(ctx context.Context) (*models.TestResult, error) {
	r.StopAutosave()
	result, err := r.client.SubmitTest(ctx, r.testID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.submitted = true
	r.mu.Unlock()
	return result, nil
}

func (r *Runner) hasQuestion(questionID string) bool {
	if r.test == nil {
		return false
	}
	for _, q := range r.test.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}
