package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testGen() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNewCardRequiresID(t *testing.T) {
	_, err := NewCard(CardRecord{Title: "orphan"})
	require.ErrorIs(t, err, ErrMissingID)
}

func TestNewCardDefaults(t *testing.T) {
	before := time.Now()
	card, err := NewCard(CardRecord{ID: "c1", Title: "write tests", Status: "todo"})
	require.NoError(t, err)

	require.Equal(t, PriorityMedium, card.Priority)
	require.Nil(t, card.DueDate)
	require.False(t, card.CreatedAt.Before(before))
	require.False(t, card.UpdatedAt.Before(before))
}

func TestNewCardInvalidPriority(t *testing.T) {
	_, err := NewCard(CardRecord{ID: "c1", Priority: "urgent"})
	require.Error(t, err)
}

func TestNewCardParsesDates(t *testing.T) {
	due := "2026-03-01T12:00:00Z"
	card, err := NewCard(CardRecord{
		ID:        "c1",
		Title:     "dated",
		CreatedAt: "2026-01-02T03:04:05Z",
		UpdatedAt: "2026-01-03T03:04:05Z",
		DueDate:   &due,
	})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), card.CreatedAt)
	require.NotNil(t, card.DueDate)
	require.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), *card.DueDate)
}

func TestCardUpdateAppliesOnlyPatchedFields(t *testing.T) {
	card, err := NewCard(CardRecord{ID: "c1", Title: "before", Description: "keep me", Status: "todo"})
	require.NoError(t, err)
	createdAt := card.CreatedAt
	updatedBefore := card.UpdatedAt

	title := "after"
	priority := PriorityHigh
	card.Update(CardPatch{Title: &title, Priority: &priority})

	require.Equal(t, "after", card.Title)
	require.Equal(t, "keep me", card.Description)
	require.Equal(t, PriorityHigh, card.Priority)
	require.Equal(t, "c1", card.ID)
	require.Equal(t, createdAt, card.CreatedAt)
	require.False(t, card.UpdatedAt.Before(updatedBefore))
}

func TestCardUpdateClearsDueDate(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	card, err := NewCard(CardRecord{ID: "c1", Title: "t"})
	require.NoError(t, err)

	card.Update(CardPatch{DueDate: &due})
	require.NotNil(t, card.DueDate)

	card.Update(CardPatch{ClearDueDate: true})
	require.Nil(t, card.DueDate)
}

func TestCardIsOverdue(t *testing.T) {
	yesterday := time.Now().Add(-24 * time.Hour)
	tomorrow := time.Now().Add(24 * time.Hour)

	overdue := &Card{ID: "c1", DueDate: &yesterday}
	require.True(t, overdue.IsOverdue())

	pending := &Card{ID: "c2", DueDate: &tomorrow}
	require.False(t, pending.IsOverdue())

	undated := &Card{ID: "c3"}
	require.False(t, undated.IsOverdue())
}

func TestCardRecordRoundTrip(t *testing.T) {
	due := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	original := &Card{
		ID:          "c1",
		Title:       "round trip",
		Description: "survives storage",
		Status:      "doing",
		Priority:    PriorityLow,
		Labels:      []string{"bug", "backend"},
		DueDate:     &due,
		CreatedAt:   time.Date(2026, 4, 1, 8, 0, 0, 123456789, time.UTC),
		UpdatedAt:   time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC),
	}

	rebuilt, err := NewCard(original.Record())
	require.NoError(t, err)

	require.Equal(t, original.ID, rebuilt.ID)
	require.Equal(t, original.Labels, rebuilt.Labels)
	require.True(t, original.CreatedAt.Equal(rebuilt.CreatedAt))
	require.True(t, original.UpdatedAt.Equal(rebuilt.UpdatedAt))
	require.True(t, original.DueDate.Equal(*rebuilt.DueDate))
	require.Equal(t, original.Record(), rebuilt.Record())
}

func TestCardRecordNullDueDate(t *testing.T) {
	card, err := NewCard(CardRecord{ID: "c1", Title: "no deadline"})
	require.NoError(t, err)
	require.Nil(t, card.Record().DueDate)
}

func TestNormalizeLabelsDropsDuplicates(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, normalizeLabels([]string{"a", "", "b", "a"}))
}
