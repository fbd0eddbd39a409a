package domain

import (
	"strings"
	"time"
)

// DueBucket names a due-date window used by card filtering.
type DueBucket string

const (
	DueOverdue DueBucket = "overdue"
	DueToday   DueBucket = "today"
	DueWeek    DueBucket = "week"
)

// CardFilters narrows FilterCards beyond the text search. Zero values mean
// "any".
type CardFilters struct {
	Priority Priority
	Label    string
	Due      DueBucket
}

// FilterCards computes a visibility verdict for every card on the board
// without mutating it. A card is visible when the search term matches its
// title or description (case-insensitive substring) and it passes every
// set filter. An empty term and empty filters mark all cards visible.
func (b *Board) FilterCards(searchTerm string, filters CardFilters) map[string]bool {
	return b.filterCardsAt(time.Now(), searchTerm, filters)
}

func (b *Board) filterCardsAt(now time.Time, searchTerm string, filters CardFilters) map[string]bool {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	visible := make(map[string]bool)
	for _, col := range b.columns {
		for _, card := range col.Cards() {
			visible[card.ID] = cardMatches(card, now, term, filters)
		}
	}
	return visible
}

func cardMatches(card *Card, now time.Time, term string, filters CardFilters) bool {
	if term != "" &&
		!strings.Contains(strings.ToLower(card.Title), term) &&
		!strings.Contains(strings.ToLower(card.Description), term) {
		return false
	}
	if filters.Priority != "" && card.Priority != filters.Priority {
		return false
	}
	if filters.Label != "" && !hasLabel(card, filters.Label) {
		return false
	}
	if filters.Due != "" && !inDueBucket(card, now, filters.Due) {
		return false
	}
	return true
}

func hasLabel(card *Card, label string) bool {
	for _, l := range card.Labels {
		if l == label {
			return true
		}
	}
	return false
}

func inDueBucket(card *Card, now time.Time, bucket DueBucket) bool {
	if card.DueDate == nil {
		return false
	}
	due := *card.DueDate
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch bucket {
	case DueOverdue:
		return due.Before(todayStart)
	case DueToday:
		return !due.Before(todayStart) && due.Before(todayStart.AddDate(0, 0, 1))
	case DueWeek:
		return !due.Before(todayStart) && !due.After(todayStart.AddDate(0, 0, 7))
	}
	return false
}
