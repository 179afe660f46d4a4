package api

import (
	"context"
	"encoding/json"
	"net/http"

	"examfit/models"
)

func (c *Client) ListExams(ctx context.Context) ([]models.Exam, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/exams", nil, &raw); err != nil {
		return nil, err
	}
	var exams []models.Exam
	if err := decodeList(raw, "exams", &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (c *Client) GetExam(ctx context.Context, id string) (*models.Exam, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/exams/"+id, nil, &raw); err != nil {
		return nil, err
	}
	var exam models.Exam
	if err := decodeDoc(raw, "exam", &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (c *Client) CreateExam(ctx context.Context, exam models.Exam) error {
	return c.do(ctx, http.MethodPost, "/exams", exam, nil)
}

func (c *Client) UpdateExam(ctx context.Context, id string, exam models.Exam) error {
	return c.do(ctx, http.MethodPatch, "/exams/"+id, exam, nil)
}

func (c *Client) DeleteExam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/exams/"+id, nil, nil)
}
