package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"examfit/models"
)

// ListQuestionPapers fetches papers, optionally scoped to a subject.
func (c *Client) ListQuestionPapers(ctx context.Context, subjectID string) ([]models.QuestionPaper, error) {
	path := "/question-papers"
	if subjectID != "" {
		path += "?subject=" + url.QueryEscape(subjectID)
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	var papers []models.QuestionPaper
	if err := decodeList(raw, "questionPapers", &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (c *Client) CreateQuestionPaper(ctx context.Context, paper models.QuestionPaper) error {
	return c.do(ctx, http.MethodPost, "/question-papers", paper, nil)
}

func (c *Client) UpdateQuestionPaper(ctx context.Context, id string, paper models.QuestionPaper) error {
	return c.do(ctx, http.MethodPatch, "/question-papers/"+id, paper, nil)
}

func (c *Client) DeleteQuestionPaper(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/question-papers/"+id, nil, nil)
}
