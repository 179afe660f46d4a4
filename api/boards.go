package api

import (
	"context"
	"encoding/json"
	"net/http"

	"examfit/models"
)

func (c *Client) ListBoards(ctx context.Context) ([]models.Board, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/boards", nil, &raw); err != nil {
		return nil, err
	}
	var boards []models.Board
	if err := decodeList(raw, "boards", &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *Client) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/boards/"+id, nil, &raw); err != nil {
		return nil, err
	}
	var board models.Board
	if err := decodeDoc(raw, "board", &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) CreateBoard(ctx context.Context, board models.Board) error {
	return c.do(ctx, http.MethodPost, "/boards", board, nil)
}

func (c *Client) UpdateBoard(ctx context.Context, id string, board models.Board) error {
	return c.do(ctx, http.MethodPatch, "/boards/"+id, board, nil)
}

func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/boards/"+id, nil, nil)
}
