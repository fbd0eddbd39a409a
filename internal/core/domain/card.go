package domain

import (
	"fmt"
	"time"
)

// Priority of a card.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps a stored/user value onto a Priority. The empty string
// defaults to medium.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q", s)
}

// Card is a single work item. It belongs to exactly one column, and its
// Status always matches that column's status.
type Card struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    Priority
	Labels      []string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardPatch lists the fields a card edit may change. ID and CreatedAt are
// deliberately absent. A nil field is left untouched; ClearDueDate removes
// the due date regardless of DueDate.
type CardPatch struct {
	Title        *string
	Description  *string
	Status       *string
	Priority     *Priority
	Labels       []string
	DueDate      *time.Time
	ClearDueDate bool
}

// NewCard builds a card from a stored record. The caller supplies the id;
// a record without one is rejected. Missing priority defaults to medium,
// missing timestamps to now.
func NewCard(rec CardRecord) (*Card, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("card: %w", ErrMissingID)
	}
	priority, err := ParsePriority(rec.Priority)
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", rec.ID, err)
	}
	createdAt, err := parseTime(rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("card %s: createdAt: %w", rec.ID, err)
	}
	updatedAt, err := parseTime(rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("card %s: updatedAt: %w", rec.ID, err)
	}
	var dueDate *time.Time
	if rec.DueDate != nil && *rec.DueDate != "" {
		due, err := time.Parse(time.RFC3339, *rec.DueDate)
		if err != nil {
			return nil, fmt.Errorf("card %s: dueDate: %w", rec.ID, err)
		}
		dueDate = &due
	}
	return &Card{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      rec.Status,
		Priority:    priority,
		Labels:      normalizeLabels(rec.Labels),
		DueDate:     dueDate,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// Update merges the patch into the card and refreshes UpdatedAt.
func (c *Card) Update(patch CardPatch) {
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Priority != nil {
		c.Priority = *patch.Priority
	}
	if patch.Labels != nil {
		c.Labels = normalizeLabels(patch.Labels)
	}
	if patch.ClearDueDate {
		c.DueDate = nil
	} else if patch.DueDate != nil {
		due := *patch.DueDate
		c.DueDate = &due
	}
	c.UpdatedAt = time.Now()
}

// IsOverdue reports whether the card has a due date strictly in the past.
func (c *Card) IsOverdue() bool {
	return c.overdueAt(time.Now())
}

func (c *Card) overdueAt(now time.Time) bool {
	return c.DueDate != nil && c.DueDate.Before(now)
}

// Record returns the card as its stored representation.
func (c *Card) Record() CardRecord {
	labels := c.Labels
	if labels == nil {
		labels = []string{}
	}
	var dueDate *string
	if c.DueDate != nil {
		s := c.DueDate.Format(time.RFC3339Nano)
		dueDate = &s
	}
	return CardRecord{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339Nano),
		Priority:    string(c.Priority),
		Labels:      labels,
		DueDate:     dueDate,
	}
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, s)
}

// normalizeLabels drops empty and duplicate labels, keeping first-seen order.
func normalizeLabels(labels []string) []string {
	if labels == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
