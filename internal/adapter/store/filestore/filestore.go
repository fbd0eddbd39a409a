// Package filestore keeps all boards in a single human-readable JSON file.
// It is the default backend and mirrors the contract of the S3 store.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gmllt/kanban/internal/core/domain"
	"github.com/gmllt/kanban/internal/core/ports"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

var _ ports.BoardStore = (*Store)(nil)

func (s *Store) GetAll(ctx context.Context) ([]domain.BoardRecord, error) {
	return s.load()
}

func (s *Store) Save(ctx context.Context, rec domain.BoardRecord) error {
	boards, err := s.load()
	if err != nil {
		return err
	}
	return s.save(upsert(boards, rec))
}

func (s *Store) Delete(ctx context.Context, boardID string) error {
	boards, err := s.load()
	if err != nil {
		return err
	}
	kept := boards[:0]
	for _, b := range boards {
		if b.ID != boardID {
			kept = append(kept, b)
		}
	}
	return s.save(kept)
}

func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	boards, err := s.load()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(boards, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

func (s *Store) ImportAll(ctx context.Context, data []byte) error {
	var boards []domain.BoardRecord
	if err := json.Unmarshal(data, &boards); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if boards == nil {
		return fmt.Errorf("%w: expected a JSON array of boards", domain.ErrMalformedImport)
	}
	return s.save(boards)
}

func (s *Store) load() ([]domain.BoardRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.BoardRecord{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var boards []domain.BoardRecord
	if err := json.Unmarshal(b, &boards); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return boards, nil
}

func (s *Store) save(boards []domain.BoardRecord) error {
	b, err := json.MarshalIndent(boards, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func upsert(boards []domain.BoardRecord, rec domain.BoardRecord) []domain.BoardRecord {
	for i, b := range boards {
		if b.ID == rec.ID {
			boards[i] = rec
			return boards
		}
	}
	return append(boards, rec)
}
