package api

import (
	"context"
	"encoding/json"
	"net/http"

	"examfit/models"
)

type CreateTestRequest struct {
	QuestionPaperID string `json:"questionPaperId"`
	ExamID          string `json:"examId,omitempty"`
}

type createTestResponse struct {
	TestID string `json:"testId"`
}

type saveAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     int    `json:"answer"`
}

func (c *Client) ListStudentBoards(ctx context.Context) ([]models.Board, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/student/boards", nil, &raw); err != nil {
		return nil, err
	}
	var boards []models.Board
	if err := decodeList(raw, "boards", &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// CreateTest starts a new attempt and returns the server-assigned test id.
func (c *Client) CreateTest(ctx context.Context, req CreateTestRequest) (string, error) {
	var resp createTestResponse
	if err := c.do(ctx, http.MethodPost, "/student/tests", req, &resp); err != nil {
		return "", err
	}
	return resp.TestID, nil
}

// SaveAnswer upserts one answer. The backend treats repeat saves of the same
// value as idempotent, which is what makes the autosave race benign.
func (c *Client) SaveAnswer(ctx context.Context, testID, questionID string, answer int) error {
	return c.do(ctx, http.MethodPost, "/student/tests/"+testID+"/answer",
		saveAnswerRequest{QuestionID: questionID, Answer: answer}, nil)
}

func (c *Client) SubmitTest(ctx context.Context, testID string) (*models.TestResult, error) {
	var result models.TestResult
	if err := c.do(ctx, http.MethodPost, "/student/tests/"+testID+"/submit", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTestResult fetches the session state: questions for an in-progress
// attempt, score and review once submitted.
func (c *Client) GetTestResult(ctx context.Context, testID string) (*models.TestResult, error) {
	var result models.TestResult
	if err := c.do(ctx, http.MethodGet, "/student/tests/"+testID+"/result", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteTest(ctx context.Context, testID string) error {
	return c.do(ctx, http.MethodDelete, "/student/tests/"+testID, nil, nil)
}
