package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gmllt/kanban/internal/core/domain"
	"github.com/gmllt/kanban/internal/core/ports"
)

// BoardService applies user intents to boards. Every mutation loads the
// board from the store, rebuilds the entity graph, applies one operation
// and saves the result back, so a failed save never leaves a half-written
// board behind.
type BoardService struct {
	store ports.BoardStore
	genID domain.IDGenerator
}

func NewBoardService(store ports.BoardStore, genID domain.IDGenerator) *BoardService {
	if genID == nil {
		genID = domain.NewID
	}
	return &BoardService{store: store, genID: genID}
}

var _ ports.BoardService = (*BoardService)(nil)

// ListBoards returns all stored boards. A store read failure degrades to
// an empty list; the board UI treats that as "nothing stored yet".
func (s *BoardService) ListBoards(ctx context.Context) []domain.BoardRecord {
	recs, err := s.store.GetAll(ctx)
	if err != nil {
		zap.L().Warn("failed to read boards, returning empty list", zap.Error(err))
		return []domain.BoardRecord{}
	}
	if recs == nil {
		recs = []domain.BoardRecord{}
	}
	return recs
}

func (s *BoardService) GetBoard(ctx context.Context, boardID string) (domain.BoardRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.BoardRecord{}, err
	}
	return board.Record(), nil
}

func (s *BoardService) CreateBoard(ctx context.Context, title, description string) (domain.BoardRecord, error) {
	board, err := domain.NewBoard(domain.BoardRecord{
		Title:       title,
		Description: description,
	}, s.genID)
	if err != nil {
		return domain.BoardRecord{}, err
	}
	rec := board.Record()
	if err := s.store.Save(ctx, rec); err != nil {
		return domain.BoardRecord{}, fmt.Errorf("save board: %w", err)
	}
	return rec, nil
}

func (s *BoardService) DeleteBoard(ctx context.Context, boardID string) error {
	if _, err := s.loadBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, boardID); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}

func (s *BoardService) AddColumn(ctx context.Context, boardID, title, status string, wipLimit int) (domain.ColumnRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.ColumnRecord{}, err
	}
	col, err := board.AddColumn(title, status, wipLimit)
	if err != nil {
		return domain.ColumnRecord{}, err
	}
	if err := s.saveBoard(ctx, board); err != nil {
		return domain.ColumnRecord{}, err
	}
	return col.Record(), nil
}

func (s *BoardService) RemoveColumn(ctx context.Context, boardID, columnID string) error {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return err
	}
	board.RemoveColumn(columnID)
	return s.saveBoard(ctx, board)
}

func (s *BoardService) ReorderColumns(ctx context.Context, boardID string, orderedIDs []string) (domain.BoardRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.BoardRecord{}, err
	}
	board.ReorderColumns(orderedIDs)
	if err := s.saveBoard(ctx, board); err != nil {
		return domain.BoardRecord{}, err
	}
	return board.Record(), nil
}

func (s *BoardService) AddCard(ctx context.Context, boardID, columnID string, data domain.CardData) (domain.CardRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.CardRecord{}, err
	}
	card, err := board.AddCard(columnID, data)
	if err != nil {
		return domain.CardRecord{}, err
	}
	if err := s.saveBoard(ctx, board); err != nil {
		return domain.CardRecord{}, err
	}
	return card.Record(), nil
}

func (s *BoardService) UpdateCard(ctx context.Context, boardID, cardID string, patch domain.CardPatch) (domain.CardRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.CardRecord{}, err
	}
	card, _, ok := board.FindCard(cardID)
	if !ok {
		return domain.CardRecord{}, fmt.Errorf("card %s: %w", cardID, domain.ErrCardNotFound)
	}
	card.Update(patch)
	if err := s.saveBoard(ctx, board); err != nil {
		return domain.CardRecord{}, err
	}
	return card.Record(), nil
}

func (s *BoardService) DeleteCard(ctx context.Context, boardID, cardID string) error {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if !board.DeleteCard(cardID) {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrCardNotFound)
	}
	return s.saveBoard(ctx, board)
}

func (s *BoardService) MoveCard(ctx context.Context, boardID, cardID, sourceColumnID, targetColumnID string, position *int) (domain.BoardRecord, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return domain.BoardRecord{}, err
	}
	if err := board.MoveCard(cardID, sourceColumnID, targetColumnID, position); err != nil {
		return domain.BoardRecord{}, err
	}
	if err := s.saveBoard(ctx, board); err != nil {
		return domain.BoardRecord{}, err
	}
	return board.Record(), nil
}

func (s *BoardService) FilterCards(ctx context.Context, boardID, searchTerm string, filters domain.CardFilters) (map[string]bool, error) {
	board, err := s.loadBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return board.FilterCards(searchTerm, filters), nil
}

func (s *BoardService) Export(ctx context.Context) ([]byte, error) {
	return s.store.ExportAll(ctx)
}

func (s *BoardService) Import(ctx context.Context, data []byte) error {
	return s.store.ImportAll(ctx, data)
}

func (s *BoardService) loadBoard(ctx context.Context, boardID string) (*domain.Board, error) {
	recs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read boards: %w", err)
	}
	for _, rec := range recs {
		if rec.ID == boardID {
			return domain.NewBoard(rec, s.genID)
		}
	}
	return nil, fmt.Errorf("board %s: %w", boardID, domain.ErrBoardNotFound)
}

func (s *BoardService) saveBoard(ctx context.Context, board *domain.Board) error {
	if err := s.store.Save(ctx, board.Record()); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
