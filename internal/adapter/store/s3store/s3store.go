// Package s3store keeps all boards in a single boards.json object on an
// S3-compatible service (AWS, MinIO, Ceph RGW).
package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/gmllt/kanban/internal/config"
	"github.com/gmllt/kanban/internal/core/domain"
	"github.com/gmllt/kanban/internal/core/ports"
)

const (
	objectKey = "boards.json"
	opTimeout = 10 * time.Second
)

// objectAPI is the slice of the S3 client the store actually uses; tests
// substitute a fake.
type objectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type Store struct {
	client objectAPI
	bucket string
}

var _ ports.BoardStore = (*Store)(nil)

// New builds a store from the S3 config. It is compatible with MinIO and
// other S3-compatible services.
func New(cfg config.S3Config) (*Store, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		return nil, errors.New("s3 endpoint is required")
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid s3 endpoint: %w", err)
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithEndpointResolver(
			aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint, SigningRegion: cfg.Region}, nil
			}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// NewWithClient wires an existing client; used by tests.
func NewWithClient(client objectAPI, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// EnsureBucket verifies the configured bucket exists before serving.
func (s *Store) EnsureBucket(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &s.bucket})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return fmt.Errorf("bucket %s does not exist", s.bucket)
		}
		return fmt.Errorf("error checking bucket: %w", err)
	}
	return nil
}

func (s *Store) GetAll(ctx context.Context) ([]domain.BoardRecord, error) {
	return s.load(ctx)
}

func (s *Store) Save(ctx context.Context, rec domain.BoardRecord) error {
	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, upsert(boards, rec))
}

func (s *Store) Delete(ctx context.Context, boardID string) error {
	boards, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := boards[:0]
	for _, b := range boards {
		if b.ID != boardID {
			kept = append(kept, b)
		}
	}
	return s.save(ctx, kept)
}

func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	boards, err := s.load(ctx)
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
	return s.save(ctx, boards)
}

func (s *Store) load(ctx context.Context) ([]domain.BoardRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
			return []domain.BoardRecord{}, nil
		}
		return nil, fmt.Errorf("error loading boards from S3: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading boards data: %w", err)
	}
	var boards []domain.BoardRecord
	if err := json.Unmarshal(data, &boards); err != nil {
		return nil, fmt.Errorf("error decoding boards json: %w", err)
	}
	return boards, nil
}

func (s *Store) save(ctx context.Context, boards []domain.BoardRecord) error {
	data, err := json.Marshal(boards)
	if err != nil {
		return fmt.Errorf("error encoding boards json: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("error saving boards to S3: %w", err)
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
