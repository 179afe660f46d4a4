package models

// Test mirrors a server-owned test session. The client never owns the
// authoritative copy; it refetches via the result endpoint.
type Test struct {
	TestID        string     `json:"testId"`
	Exam          *Exam      `json:"exam,omitempty"`
	Subject       *Subject   `json:"subject,omitempty"`
	QuestionPaper Ref        `json:"questionPaperId,omitempty"`
	Questions     []Question `json:"questions"`
	Submitted     bool       `json:"submitted"`
}

// TestResult is the scored review returned after submit.
type TestResult struct {
	TestID        string         `json:"testId"`
	Submitted     bool           `json:"submitted"`
	Score         int            `json:"score"`
	Total         int            `json:"total"`
	Exam          *Exam          `json:"exam,omitempty"`
	Subject       *Subject       `json:"subject,omitempty"`
	QuestionPaper Ref            `json:"questionPaperId,omitempty"`
	Questions     []Question     `json:"questions"`
	Answers       map[string]int `json:"answers,omitempty"`
}

// DisplayTitle picks a heading for an in-progress test: subject name, then
// exam title, then a generic fallback.
func (t *Test) DisplayTitle() string {
	if t.Subject != nil && t.Subject.Name != "" {
		return t.Subject.Name
	}
	if t.Exam != nil && t.Exam.Title != "" {
		return t.Exam.Title
	}
	return "Practice Test"
}
