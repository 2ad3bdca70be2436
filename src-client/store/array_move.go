package store

import "campusevents/src-client/model"

// ArrayMove returns a copy of s with the element at from moved to index to.
// Everything between the two indexes shifts by one, the rest keeps its
// place. Out of range indexes give back an unchanged copy.
func ArrayMove[T any](s []T, from, to int) []T {
	moved := make([]T, len(s))
	copy(moved, s)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return moved
	}

	item := moved[from]
	if from < to {
		copy(moved[from:to], moved[from+1:to+1])
	} else {
		copy(moved[to+1:from+1], moved[to:from])
	}
	moved[to] = item
	return moved
}

func IDs(events []model.Event) []int64 {
	ids := make([]int64, len(events))
	for i := range events {
		ids[i] = events[i].ID
	}
	return ids
}

func indexOf(events []model.Event, id int64) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}
