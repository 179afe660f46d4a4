package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"examfit/models"
)

// BulkCreateRequest is the payload of the bulk-create endpoint: the
// reconciled batch plus the target hierarchy references.
type BulkCreateRequest struct {
	Questions     []models.Question `json:"questions"`
	Exam          string            `json:"exam"`
	Subject       string            `json:"subject"`
	QuestionPaper string            `json:"questionPaper"`
}

// BulkRowError reports one failed row of a bulk create.
type BulkRowError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// BulkCreateResponse is the per-row outcome of a bulk create. Created counts
// the rows the backend accepted; Errors lists the rows it rejected.
type BulkCreateResponse struct {
	Created int            `json:"created"`
	Errors  []BulkRowError `json:"errors,omitempty"`
}

// ListQuestions fetches questions, optionally scoped to a question paper.
func (c *Client) ListQuestions(ctx context.Context, questionPaperID string) ([]models.Question, error) {
	path := "/questions"
	if questionPaperID != "" {
		path += "?questionPaper=" + url.QueryEscape(questionPaperID)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	var questions []models.Question
	if err := decodeList(raw, "questions", &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) CreateQuestion(ctx context.Context, question models.Question) error {
	return c.do(ctx, http.MethodPost, "/questions", question, nil)
}

func (c *Client) UpdateQuestion(ctx context.Context, id string, question models.Question) error {
	return c.do(ctx, http.MethodPatch, "/questions/"+id, question, nil)
}

func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/questions/"+id, nil, nil)
}

// BulkCreateQuestions posts the whole reconciled batch in one request. There
// is no retry; a partial-error response is passed back to the caller as-is.
func (c *Client) BulkCreateQuestions(ctx context.Context, req BulkCreateRequest) (*BulkCreateResponse, error) {
	var resp BulkCreateResponse
	if err := c.do(ctx, http.MethodPost, "/questions/bulk", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
