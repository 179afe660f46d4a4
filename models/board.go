package models

import "sort"

type Board struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority"`
}

// SortBoards orders boards for display: priority ascending, then name.
func SortBoards(boards []Board) {
	sort.SliceStable(boards, func(i, j int) bool {
		if boards[i].Priority != boards[j].Priority {
			return boards[i].Priority < boards[j].Priority
		}
		return boards[i].Name < boards[j].Name
	})
}
