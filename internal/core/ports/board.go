package ports

import (
	"context"

	"github.com/gmllt/kanban/internal/core/domain"
)

// BoardStore persists board records. Save upserts by board id. ImportAll
// replaces the whole stored set atomically or not at all.
type BoardStore interface {
	GetAll(ctx context.Context) ([]domain.BoardRecord, error)
	Save(ctx context.Context, rec domain.BoardRecord) error
	Delete(ctx context.Context, boardID string) error
	ExportAll(ctx context.Context) ([]byte, error)
	ImportAll(ctx context.Context, data []byte) error
}

// BoardService exposes one method per user intent coming from the
// presentation layer.
type BoardService interface {
	ListBoards(ctx context.Context) []domain.BoardRecord
	GetBoard(ctx context.Context, boardID string) (domain.BoardRecord, error)
	CreateBoard(ctx context.Context, title, description string) (domain.BoardRecord, error)
	DeleteBoard(ctx context.Context, boardID string) error

	AddColumn(ctx context.Context, boardID, title, status string, wipLimit int) (domain.ColumnRecord, error)
	RemoveColumn(ctx context.Context, boardID, columnID string) error
	ReorderColumns(ctx context.Context, boardID string, orderedIDs []string) (domain.BoardRecord, error)

	AddCard(ctx context.Context, boardID, columnID string, data domain.CardData) (domain.CardRecord, error)
	UpdateCard(ctx context.Context, boardID, cardID string, patch domain.CardPatch) (domain.CardRecord, error)
	DeleteCard(ctx context.Context, boardID, cardID string) error
	MoveCard(ctx context.Context, boardID, cardID, sourceColumnID, targetColumnID string, position *int) (domain.BoardRecord, error)

	FilterCards(ctx context.Context, boardID, searchTerm string, filters domain.CardFilters) (map[string]bool, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error
}
