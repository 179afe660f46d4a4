package models

import (
	"sort"
	"strings"
)

// DefaultSectionPriority places sections without an explicit priority last.
const DefaultSectionPriority = 999

type Subject struct {
	ID                string         `json:"_id,omitempty"`
	Name              string         `json:"name"`
	Slug              string         `json:"slug,omitempty"`
	Exam              Ref            `json:"exam"`
	Board             Ref            `json:"board"`
	Icon              string         `json:"icon,omitempty"`
	Priority          int            `json:"priority"`
	Description       string         `json:"description,omitempty"`
	SectionPriorities map[string]int `json:"sectionPriorities,omitempty"`
}

// SectionPriority resolves the display priority for a section name. Keys are
// matched exactly first, then case-insensitively after trimming; unmapped
// sections sort last.
func (s *Subject) SectionPriority(section string) int {
	if s == nil || len(s.SectionPriorities) == 0 {
		return DefaultSectionPriority
	}
	name := strings.TrimSpace(section)
	if p, ok := s.SectionPriorities[name]; ok && p != 0 {
		return p
	}
	lower := strings.ToLower(name)
	for key, p := range s.SectionPriorities {
		if strings.ToLower(strings.TrimSpace(key)) == lower {
			if p == 0 {
				return DefaultSectionPriority
			}
			return p
		}
	}
	return DefaultSectionPriority
}

// SortSections orders section names by mapped priority ascending; equal
// priorities fall back to lexicographic order. The sort is stable and
// independent of input order.
func (s *Subject) SortSections(sections []string) {
	sort.SliceStable(sections, func(i, j int) bool {
		pi, pj := s.SectionPriority(sections[i]), s.SectionPriority(sections[j])
		if pi != pj {
			return pi < pj
		}
		return sections[i] < sections[j]
	})
}

// SubjectsByExam filters an already-fetched list by parent exam id.
func SubjectsByExam(subjects []Subject, examID string) []Subject {
	out := make([]Subject, 0)
	for _, s := range subjects {
		if s.Exam.String() == examID {
			out = append(out, s)
		}
	}
	return out
}
