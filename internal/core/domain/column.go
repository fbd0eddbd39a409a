package domain

import "fmt"

// Column groups the cards sharing one workflow status. Card order is
// display order. A WIPLimit of 0 means unlimited.
type Column struct {
	ID       string
	Title    string
	Status   string
	WIPLimit int

	cards []*Card
}

// NewColumn builds a column from a stored record, reconstructing its cards.
func NewColumn(rec ColumnRecord) (*Column, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("column: %w", ErrMissingID)
	}
	if rec.WIPLimit < 0 {
		return nil, fmt.Errorf("column %s: wip limit must not be negative", rec.ID)
	}
	col := &Column{
		ID:       rec.ID,
		Title:    rec.Title,
		Status:   rec.Status,
		WIPLimit: rec.WIPLimit,
	}
	for _, cardRec := range rec.Cards {
		card, err := NewCard(cardRec)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", rec.ID, err)
		}
		col.AddCard(card)
	}
	return col, nil
}

// AddCard appends the card to the column. A card with an id already present
// replaces the existing one in place, keeping its position.
func (c *Column) AddCard(card *Card) bool {
	for i, existing := range c.cards {
		if existing.ID == card.ID {
			c.cards[i] = card
			return true
		}
	}
	c.cards = append(c.cards, card)
	return true
}

// RemoveCard removes and returns the card with the given id. Removing an
// absent card is a no-op.
func (c *Column) RemoveCard(cardID string) (*Card, bool) {
	for i, card := range c.cards {
		if card.ID == cardID {
			c.cards = append(c.cards[:i], c.cards[i+1:]...)
			return card, true
		}
	}
	return nil, false
}

// Card returns the card with the given id.
func (c *Column) Card(cardID string) (*Card, bool) {
	for _, card := range c.cards {
		if card.ID == cardID {
			return card, true
		}
	}
	return nil, false
}

// Cards returns the cards in display order.
func (c *Column) Cards() []*Card {
	out := make([]*Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards in the column.
func (c *Column) Len() int {
	return len(c.cards)
}

// insertCardAt places the card at the given position, clamped to the valid
// range.
func (c *Column) insertCardAt(card *Card, pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(c.cards) {
		pos = len(c.cards)
	}
	c.cards = append(c.cards, nil)
	copy(c.cards[pos+1:], c.cards[pos:])
	c.cards[pos] = card
}

// Record returns the column as its stored representation.
func (c *Column) Record() ColumnRecord {
	cards := make([]CardRecord, 0, len(c.cards))
	for _, card := range c.cards {
		cards = append(cards, card.Record())
	}
	return ColumnRecord{
		ID:       c.ID,
		Title:    c.Title,
		Status:   c.Status,
		WIPLimit: c.WIPLimit,
		Cards:    cards,
	}
}
