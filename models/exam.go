package models

type Exam struct {
	ID         string `json:"_id,omitempty"`
	Title      string `json:"title"`
	Board      Ref    `json:"board"`
	Priority   int    `json:"priority"`
	ParentExam Ref    `json:"parentExam,omitempty"`
}

// RootExams drops sub-exams; the admin listing only shows top-level exams.
func RootExams(exams []Exam) []Exam {
	out := make([]Exam, 0, len(exams))
	for _, e := range exams {
		if e.ParentExam == "" {
			out = append(out, e)
		}
	}
	return out
}

// ExamsByBoard filters an already-fetched list by parent board id.
func ExamsByBoard(exams []Exam, boardID string) []Exam {
	out := make([]Exam, 0)
	for _, e := range exams {
		if e.Board.String() == boardID {
			out = append(out, e)
		}
	}
	return out
}
