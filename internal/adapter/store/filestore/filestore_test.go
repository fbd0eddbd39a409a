package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gmllt/kanban/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "boards.json"))
}

func boardRec(id, title string) domain.BoardRecord {
	return domain.BoardRecord{
		ID:        id,
		Title:     title,
		CreatedAt: "2026-01-01T00:00:00Z",
		Columns:   []domain.ColumnRecord{},
	}
}

func TestGetAllEmptyWhenNothingStored(t *testing.T) {
	store := newTestStore(t)

	boards, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, boards)
}

func TestSaveUpsertsByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, boardRec("b1", "first")))
	require.NoError(t, store.Save(ctx, boardRec("b2", "second")))
	require.NoError(t, store.Save(ctx, boardRec("b1", "renamed")))

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	require.Equal(t, "renamed", boards[0].Title)
	require.Equal(t, "b2", boards[1].ID)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, boardRec("b1", "doomed")))
	require.NoError(t, store.Delete(ctx, "b1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, boards)
}

func TestExportAllIsPrettyJSONArray(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, boardRec("b1", "exported")))

	data, err := store.ExportAll(ctx)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")

	var boards []domain.BoardRecord
	require.NoError(t, json.Unmarshal(data, &boards))
	require.Len(t, boards, 1)
}

func TestImportAllReplacesEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, boardRec("old", "gone after import")))

	payload, err := json.Marshal([]domain.BoardRecord{boardRec("new", "imported")})
	require.NoError(t, err)
	require.NoError(t, store.ImportAll(ctx, payload))

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Equal(t, "new", boards[0].ID)
}

func TestImportAllRejectsMalformedInputWithoutWriting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, boardRec("b1", "untouched")))

	err := store.ImportAll(ctx, []byte("not json"))
	require.ErrorIs(t, err, domain.ErrMalformedImport)

	err = store.ImportAll(ctx, []byte(`{"id":"an-object-not-an-array"}`))
	require.ErrorIs(t, err, domain.ErrMalformedImport)

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Equal(t, "untouched", boards[0].Title)
}
