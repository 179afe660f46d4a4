package models

import "strings"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Option struct {
	Text  string `json:"text"`
	Media string `json:"media,omitempty"`
}

type Question struct {
	ID            string   `json:"_id,omitempty"`
	Text          string   `json:"text"`
	Options       []Option `json:"options"`
	CorrectIndex  int      `json:"correctIndex"`
	Explanation   string   `json:"explanation,omitempty"`
	Media         []string `json:"media,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Status        string   `json:"status,omitempty"`
	QuestionPaper Ref      `json:"questionPaper,omitempty"`
	Subject       Ref      `json:"subject,omitempty"`
	Exam          Ref      `json:"exam,omitempty"`
}

// SearchQuestions filters an already-fetched list by a case-insensitive
// substring of the question text.
func SearchQuestions(questions []Question, term string) []Question {
	if term == "" {
		return questions
	}
	lower := strings.ToLower(term)
	out := make([]Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Text), lower) {
			out = append(out, q)
		}
	}
	return out
}
