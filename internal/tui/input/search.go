// Package input matches catalog search queries against story names.
package input

import "strings"

// Entry is a searchable story.
type Entry struct {
	Group string
	Name  string
}

// Title returns "Group/Name".
func (e Entry) Title() string {
	return e.Group + "/" + e.Name
}

// Matching returns the indices of entries whose name or title starts with query,
// ignoring case. An empty query matches nothing.
func Matching(query string, entries []Entry) []int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	matches := make([]int, 0, len(entries))
	for i, e := range entries {
		name := strings.ToLower(e.Name)
		title := strings.ToLower(e.Title())
		if strings.HasPrefix(name, query) || strings.HasPrefix(title, query) {
			matches = append(matches, i)
		}
	}
	return matches
}

// First returns the index of the first matching entry and whether one exists.
func First(query string, entries []Entry) (int, bool) {
	matches := Matching(query, entries)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0], true
}
