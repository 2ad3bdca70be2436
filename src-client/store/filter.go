package store

import (
	"strings"

	"campusevents/src-client/model"

	"golang.org/x/text/cases"
)

// A category of "" or "all" places no constraint on the category.
func categoryUnconstrained(category string) bool {
	return category == "" || category == model.CategoryAll
}

// Whether the filter is empty, i.e. the view shows the whole canonical list.
// A whitespace term is still a search term.
func Unfiltered(term, category string) bool {
	return term == "" && categoryUnconstrained(category)
}

// ApplyFilter returns the events whose title or description contains term
// (case-insensitive) and whose category matches, in the order given.
func ApplyFilter(events []model.Event, term, category string) []model.Event {
	folder := cases.Fold()
	foldedTerm := folder.String(term)

	view := make([]model.Event, 0, len(events))
	for i := range events {
		if matches(folder, &events[i], foldedTerm, category) {
			view = append(view, events[i])
		}
	}
	return view
}

func matches(folder cases.Caser, event *model.Event, foldedTerm, category string) bool {
	if !categoryUnconstrained(category) && string(event.Category) != category {
		return false
	}
	if foldedTerm == "" {
		return true
	}
	return strings.Contains(folder.String(event.Title), foldedTerm) ||
		strings.Contains(folder.String(event.Description), foldedTerm)
}
