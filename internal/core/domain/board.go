package domain

import (
	"fmt"
	"strings"
	"time"
)

// Board is the top-level container of columns for one project. All
// mutations of the column/card graph go through its methods.
type Board struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time

	columns []*Column
	genID   IDGenerator
}

// CardData carries the user-supplied fields of a new card. Id, status and
// timestamps are filled in by the board.
type CardData struct {
	Title       string
	Description string
	Priority    Priority
	Labels      []string
	DueDate     *time.Time
}

// NewBoard builds a board from a stored record. A record without columns
// gets the default To Do / In Progress / Done set. A missing board id is
// generated.
func NewBoard(rec BoardRecord, gen IDGenerator) (*Board, error) {
	if gen == nil {
		gen = NewID
	}
	createdAt, err := parseTime(rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("board %s: createdAt: %w", rec.ID, err)
	}
	b := &Board{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		CreatedAt:   createdAt,
		genID:       gen,
	}
	if b.ID == "" {
		b.ID = gen()
	}
	// A nil Columns means "never had columns": install the default set. An
	// empty array is a board whose columns were all removed, and stays empty.
	if rec.Columns == nil {
		b.installDefaultColumns()
		return b, nil
	}
	for _, colRec := range rec.Columns {
		col, err := NewColumn(colRec)
		if err != nil {
			return nil, fmt.Errorf("board %s: %w", b.ID, err)
		}
		b.columns = append(b.columns, col)
	}
	return b, nil
}

func (b *Board) installDefaultColumns() {
	defaults := []struct {
		title  string
		status string
	}{
		{"To Do", "todo"},
		{"In Progress", "in-progress"},
		{"Done", "done"},
	}
	for _, d := range defaults {
		b.columns = append(b.columns, &Column{
			ID:     b.genID(),
			Title:  d.title,
			Status: d.status,
		})
	}
}

// AddColumn appends a new empty column. An empty status is derived from the
// title. The status must not collide with an existing column's status.
func (b *Board) AddColumn(title, status string, wipLimit int) (*Column, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("column: %w", ErrEmptyTitle)
	}
	if wipLimit < 0 {
		return nil, fmt.Errorf("column %q: wip limit must not be negative", title)
	}
	if status == "" {
		status = slugify(title)
	}
	if _, ok := b.ColumnByStatus(status); ok {
		return nil, fmt.Errorf("status %q: %w", status, ErrStatusConflict)
	}
	col := &Column{
		ID:       b.genID(),
		Title:    title,
		Status:   status,
		WIPLimit: wipLimit,
	}
	b.columns = append(b.columns, col)
	return col, nil
}

// RemoveColumn drops the column and all its cards. Removing an absent
// column is a no-op.
func (b *Board) RemoveColumn(columnID string) {
	for i, col := range b.columns {
		if col.ID == columnID {
			b.columns = append(b.columns[:i], b.columns[i+1:]...)
			return
		}
	}
}

// Column returns the column with the given id.
func (b *Board) Column(columnID string) (*Column, bool) {
	for _, col := range b.columns {
		if col.ID == columnID {
			return col, true
		}
	}
	return nil, false
}

// ColumnByStatus returns the column using the given status as routing key.
func (b *Board) ColumnByStatus(status string) (*Column, bool) {
	for _, col := range b.columns {
		if col.Status == status {
			return col, true
		}
	}
	return nil, false
}

// Columns returns the columns in display order.
func (b *Board) Columns() []*Column {
	out := make([]*Column, len(b.columns))
	copy(out, b.columns)
	return out
}

// MoveCard moves a card between columns, or repositions it within one.
// Position is clamped to the valid range; nil appends. The move is atomic:
// on any error the card stays in its source column at its original
// position. A full target column rejects the move with *CapacityError,
// except that a card repositioned within its own column never counts
// against its own limit.
func (b *Board) MoveCard(cardID, sourceColumnID, targetColumnID string, position *int) error {
	source, ok := b.Column(sourceColumnID)
	if !ok {
		return fmt.Errorf("source %s: %w", sourceColumnID, ErrColumnNotFound)
	}
	target, ok := b.Column(targetColumnID)
	if !ok {
		return fmt.Errorf("target %s: %w", targetColumnID, ErrColumnNotFound)
	}
	card, ok := source.Card(cardID)
	if !ok {
		return fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
	}
	occupied := target.Len()
	if source == target {
		occupied--
	}
	if target.WIPLimit > 0 && occupied >= target.WIPLimit {
		return &CapacityError{ColumnTitle: target.Title, Limit: target.WIPLimit}
	}
	source.RemoveCard(cardID)
	card.Status = target.Status
	card.UpdatedAt = time.Now()
	if position != nil {
		target.insertCardAt(card, *position)
	} else {
		target.insertCardAt(card, target.Len())
	}
	return nil
}

// AddCard creates a card in the given column. The card takes the column's
// status and a fresh id.
func (b *Board) AddCard(columnID string, data CardData) (*Card, error) {
	col, ok := b.Column(columnID)
	if !ok {
		return nil, fmt.Errorf("column %s: %w", columnID, ErrColumnNotFound)
	}
	if strings.TrimSpace(data.Title) == "" {
		return nil, fmt.Errorf("card: %w", ErrEmptyTitle)
	}
	priority := data.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	now := time.Now()
	var dueDate *time.Time
	if data.DueDate != nil {
		due := *data.DueDate
		dueDate = &due
	}
	card := &Card{
		ID:          b.genID(),
		Title:       data.Title,
		Description: data.Description,
		Status:      col.Status,
		Priority:    priority,
		Labels:      normalizeLabels(data.Labels),
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	col.AddCard(card)
	return card, nil
}

// FindCard locates a card anywhere on the board together with its owning
// column.
func (b *Board) FindCard(cardID string) (*Card, *Column, bool) {
	for _, col := range b.columns {
		if card, ok := col.Card(cardID); ok {
			return card, col, true
		}
	}
	return nil, nil, false
}

// DeleteCard removes a card from whichever column owns it.
func (b *Board) DeleteCard(cardID string) bool {
	_, col, ok := b.FindCard(cardID)
	if !ok {
		return false
	}
	_, removed := col.RemoveCard(cardID)
	return removed
}

// ReorderColumns rebuilds the column order: listed ids first, in the given
// order; ids not on the board are ignored; columns missing from the list
// keep their relative order after the listed ones.
func (b *Board) ReorderColumns(orderedIDs []string) {
	placed := make(map[string]bool, len(orderedIDs))
	ordered := make([]*Column, 0, len(b.columns))
	for _, id := range orderedIDs {
		if placed[id] {
			continue
		}
		if col, ok := b.Column(id); ok {
			ordered = append(ordered, col)
			placed[id] = true
		}
	}
	for _, col := range b.columns {
		if !placed[col.ID] {
			ordered = append(ordered, col)
		}
	}
	b.columns = ordered
}

// Record returns the board as its stored representation.
func (b *Board) Record() BoardRecord {
	columns := make([]ColumnRecord, 0, len(b.columns))
	for _, col := range b.columns {
		columns = append(columns, col.Record())
	}
	return BoardRecord{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339Nano),
		Columns:     columns,
	}
}

// slugify turns a column title into a status key: lowercase, runs of
// non-alphanumerics collapsed to single dashes.
func slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		default:
			if !dash && sb.Len() > 0 {
				sb.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
