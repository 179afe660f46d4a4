package api

import (
	"context"
	"encoding/json"
	"net/http"

	"examfit/models"
)

func (c *Client) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/subjects", nil, &raw); err != nil {
		return nil, err
	}
	var subjects []models.Subject
	if err := decodeList(raw, "subjects", &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (c *Client) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/subjects/"+id, nil, &raw); err != nil {
		return nil, err
	}
	var subject models.Subject
	if err := decodeDoc(raw, "subject", &subject); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (c *Client) CreateSubject(ctx context.Context, subject models.Subject) error {
	return c.do(ctx, http.MethodPost, "/subjects", subject, nil)
}

func (c *Client) UpdateSubject(ctx context.Context, id string, subject models.Subject) error {
	return c.do(ctx, http.MethodPatch, "/subjects/"+id, subject, nil)
}

func (c *Client) DeleteSubject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/subjects/"+id, nil, nil)
}
