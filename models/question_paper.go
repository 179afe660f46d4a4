package models

import "sort"

// PredefinedSections are the suggested section labels offered in the admin
// console; the field itself stays free text.
var PredefinedSections = []string{
	"General",
	"Paper 1",
	"Paper 2",
	"Previous Year",
	"Mock Test",
	"Practice Set",
}

type QuestionPaper struct {
	ID      string `json:"_id,omitempty"`
	Name    string `json:"name"`
	Subject Ref    `json:"subject"`
	Exam    Ref    `json:"exam"`
	Board   Ref    `json:"board"`
	Section string `json:"section,omitempty"`
	Year    int    `json:"year,omitempty"`
}

// PapersBySubject filters an already-fetched list by parent subject id.
func PapersBySubject(papers []QuestionPaper, subjectID string) []QuestionPaper {
	out := make([]QuestionPaper, 0)
	for _, p := range papers {
		if p.Subject.String() == subjectID {
			out = append(out, p)
		}
	}
	return out
}

// GroupBySection buckets papers by their section label ("General" when
// unset) and sorts each bucket: year descending, papers with a year before
// papers without, then name.
func GroupBySection(papers []QuestionPaper) map[string][]QuestionPaper {
	grouped := make(map[string][]QuestionPaper)
	for _, p := range papers {
		section := p.Section
		if section == "" {
			section = "General"
		}
		grouped[section] = append(grouped[section], p)
	}
	for section := range grouped {
		bucket := grouped[section]
		sort.SliceStable(bucket, func(i, j int) bool {
			a, b := bucket[i], bucket[j]
			if a.Year != 0 && b.Year != 0 {
				return a.Year > b.Year
			}
			if a.Year != 0 {
				return true
			}
			if b.Year != 0 {
				return false
			}
			return a.Name < b.Name
		})
	}
	return grouped
}

// SectionNames returns the distinct sections of a grouped paper set ordered
// by the subject's section priorities.
func SectionNames(grouped map[string][]QuestionPaper, subject *Subject) []string {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	subject.SortSections(names)
	return names
}
