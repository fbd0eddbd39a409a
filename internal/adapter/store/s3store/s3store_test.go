package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"

	"github.com/gmllt/kanban/internal/config"
	"github.com/gmllt/kanban/internal/core/domain"
)

type apiError struct {
	code string
}

func (e *apiError) Error() string                 { return e.code }
func (e *apiError) ErrorCode() string             { return e.code }
func (e *apiError) ErrorMessage() string          { return e.code }
func (e *apiError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// fakeObjectAPI is an in-memory stand-in for the S3 client.
type fakeObjectAPI struct {
	objects map[string][]byte
	putErr  error
}

func newFakeObjectAPI() *fakeObjectAPI {
	return &fakeObjectAPI{objects: map[string][]byte{}}
}

func (f *fakeObjectAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Key]
	if !ok {
		return nil, &apiError{code: "NoSuchKey"}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, nil
}

func boardRec(id string) domain.BoardRecord {
	return domain.BoardRecord{ID: id, CreatedAt: "2026-01-01T00:00:00Z", Columns: []domain.ColumnRecord{}}
}

func TestGetAllEmptyWhenObjectMissing(t *testing.T) {
	store := NewWithClient(newFakeObjectAPI(), "kanban")

	boards, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, boards)
}

func TestSaveUpsertsIntoObject(t *testing.T) {
	api := newFakeObjectAPI()
	store := NewWithClient(api, "kanban")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, boardRec("b1")))
	require.NoError(t, store.Save(ctx, boardRec("b2")))
	require.NoError(t, store.Save(ctx, boardRec("b1")))

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)

	// Everything lives under one key.
	require.Len(t, api.objects, 1)
	require.Contains(t, api.objects, objectKey)
}

func TestDeleteRemovesBoard(t *testing.T) {
	store := NewWithClient(newFakeObjectAPI(), "kanban")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, boardRec("b1")))
	require.NoError(t, store.Delete(ctx, "b1"))

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, boards)
}

func TestImportAllValidatesBeforeWriting(t *testing.T) {
	api := newFakeObjectAPI()
	store := NewWithClient(api, "kanban")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, boardRec("keep")))

	err := store.ImportAll(ctx, []byte("not json"))
	require.ErrorIs(t, err, domain.ErrMalformedImport)

	boards, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Equal(t, "keep", boards[0].ID)
}

func TestExportAllPrettyPrints(t *testing.T) {
	store := NewWithClient(newFakeObjectAPI(), "kanban")
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, boardRec("b1")))

	data, err := store.ExportAll(ctx)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")

	var boards []domain.BoardRecord
	require.NoError(t, json.Unmarshal(data, &boards))
	require.Len(t, boards, 1)
}

func TestSavePropagatesPutFailure(t *testing.T) {
	api := newFakeObjectAPI()
	api.putErr = errors.New("quota exceeded")
	store := NewWithClient(api, "kanban")

	err := store.Save(context.Background(), boardRec("b1"))
	require.Error(t, err)
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := New(config.S3Config{Bucket: "kanban"})
	require.Error(t, err)
}
