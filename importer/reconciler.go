package importer

import (
	"fmt"
	"strconv"
	"strings"

	"examfit/models"
)

// Spreadsheet sources are inconsistent about column naming, answer format
// and empty options, and a wrong mapping silently corrupts the answer key
// students see. The reconciler owns that policy: flexible column lookup,
// defaulting with a recorded warning instead of rejecting a row, and
// re-deriving correctIndex after empty options are filtered out.

// correctAnswerColumns are checked in order for the raw correct-answer value.
var correctAnswerColumns = []string{
	"Correct Answer",
	"CorrectAnswer",
	"correctAnswer",
	"Correct",
	"correct",
	"correctIndex",
	"Correct Index",
	"Answer",
	"answer",
}

// Warning records a row that was imported with a defaulted or remapped value.
type Warning struct {
	Row     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// Result is the outcome of reconciling a parsed batch.
type Result struct {
	Questions []models.Question
	Warnings  []Warning
	Dropped   int
}

// taggedOption keeps an option's original 1-based spreadsheet position so the
// correct answer can be re-located after empty options are removed.
type taggedOption struct {
	pos  int
	text string
}

// Reconcile converts parsed rows into normalized questions. Row numbers in
// warnings are 1-based over the parsed batch.
func Reconcile(rows []Row) Result {
	var result Result
	for i, row := range rows {
		question, warnings, ok := reconcileRow(i+1, row)
		result.Warnings = append(result.Warnings, warnings...)
		if !ok {
			result.Dropped++
			continue
		}
		result.Questions = append(result.Questions, question)
	}
	return result
}

func reconcileRow(rowNum int, row Row) (models.Question, []Warning, bool) {
	var warnings []Warning

	options := extractOptions(row)

	rawAnswer, found := rawCorrectAnswer(row)
	if !found {
		warnings = append(warnings, Warning{rowNum, "no correct-answer column, defaulting to option 1"})
	}
	answerPos := 1
	if found {
		pos, ok := normalizeAnswer(rawAnswer)
		if !ok {
			warnings = append(warnings, Warning{rowNum, fmt.Sprintf("unrecognized correct answer %q, defaulting to option 1", rawAnswer)})
		} else {
			answerPos = pos
		}
	}

	// Pre-filter text at the answer's original position.
	correctText := options[answerPos-1].text

	kept := make([]taggedOption, 0, len(options))
	for _, opt := range options {
		if opt.text != "" {
			kept = append(kept, opt)
		}
	}

	correctIndex := -1
	for i, opt := range kept {
		if opt.pos == answerPos {
			correctIndex = i
			break
		}
	}
	if correctIndex < 0 && correctText != "" {
		for i, opt := range kept {
			if opt.text == correctText {
				correctIndex = i
				break
			}
		}
	}
	if correctIndex < 0 {
		warnings = append(warnings, Warning{rowNum, "correct option is empty or missing, defaulting to first option"})
		correctIndex = 0
	}

	text := row.Text()
	if text == "" || len(kept) < 2 {
		warnings = append(warnings, Warning{rowNum, "dropped: needs question text and at least 2 options"})
		return models.Question{}, warnings, false
	}

	question := models.Question{
		Text:         text,
		Options:      make([]models.Option, len(kept)),
		CorrectIndex: correctIndex,
		Explanation:  strings.TrimSpace(firstValue(row, "Explanation", "explanation")),
		Difficulty:   normalizeDifficulty(firstValue(row, "Difficulty", "difficulty")),
		Status:       models.StatusPublished,
	}
	for i, opt := range kept {
		question.Options[i] = models.Option{Text: opt.text}
	}
	return question, warnings, true
}

// extractOptions pulls the four option cells, each checked against its
// column-name variants in priority order and tagged with its 1-based
// position. Missing cells become empty strings.
func extractOptions(row Row) [4]taggedOption {
	var options [4]taggedOption
	for n := 1; n <= 4; n++ {
		text := firstValue(row,
			fmt.Sprintf("Option %d", n),
			fmt.Sprintf("option%d", n),
			fmt.Sprintf("Option%d", n),
		)
		options[n-1] = taggedOption{pos: n, text: strings.TrimSpace(text)}
	}
	return options
}

func rawCorrectAnswer(row Row) (string, bool) {
	for _, col := range correctAnswerColumns {
		if v := strings.TrimSpace(row[col]); v != "" {
			return v, true
		}
	}
	return "", false
}

// normalizeAnswer maps a raw correct-answer value to a 1-based option
// position: an integer 1-4, or a single letter A-D in either case.
func normalizeAnswer(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n >= 1 && n <= 4 {
			return n, true
		}
		return 0, false
	}
	if len(raw) == 1 {
		switch c := strings.ToUpper(raw)[0]; {
		case c >= 'A' && c <= 'D':
			return int(c-'A') + 1, true
		}
	}
	return 0, false
}

func normalizeDifficulty(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	if d == "" {
		return models.DifficultyMedium
	}
	return d
}

func firstValue(row Row, columns ...string) string {
	for _, col := range columns {
		if v := row[col]; strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
