package importer

import (
	"context"

	"github.com/sirupsen/logrus"

	"examfit/api"
	"examfit/models"
)

// Target names the hierarchy node a batch is uploaded into.
type Target struct {
	Exam          string
	Subject       string
	QuestionPaper string
}

// Outcome reports per-row success counts of one upload. Failed rows are not
// retried; the operator fixes the sheet and re-uploads.
type Outcome struct {
	Submitted int
	Succeeded int
	Failed    int
	Errors    []api.BulkRowError
}

// Submitter posts reconciled batches to the bulk-create endpoint.
type Submitter struct {
	client *api.Client
	log    *logrus.Logger
}

func NewSubmitter(client *api.Client, log *logrus.Logger) *Submitter {
	if log == nil {
		log = logrus.New()
	}
	return &Submitter{client: client, log: log}
}

// Submit stamps every question with the target references and posts the
// batch in a single request. A transport or backend error means nothing is
// assumed committed; a partial-error response is translated into counts.
func (s *Submitter) Submit(ctx context.Context, questions []models.Question, target Target) (*Outcome, error) {
	for i := range questions {
		questions[i].Exam = models.Ref(target.Exam)
		questions[i].Subject = models.Ref(target.Subject)
		questions[i].QuestionPaper = models.Ref(target.QuestionPaper)
	}

	resp, err := s.client.BulkCreateQuestions(ctx, api.BulkCreateRequest{
		Questions:     questions,
		Exam:          target.Exam,
		Subject:       target.Subject,
		QuestionPaper: target.QuestionPaper,
	})
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Submitted: len(questions),
		Failed:    len(resp.Errors),
		Errors:    resp.Errors,
	}
	if resp.Created > 0 {
		outcome.Succeeded = resp.Created
	} else {
		outcome.Succeeded = outcome.Submitted - outcome.Failed
	}

	for _, rowErr := range resp.Errors {
		s.log.WithFields(logrus.Fields{
			"row":     rowErr.Index,
			"message": rowErr.Message,
		}).Warn("bulk upload row rejected")
	}
	return outcome, nil
}
