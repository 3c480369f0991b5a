package minio

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage struct {
	client          *miniogo.Client
	rawBucket       string
	processedBucket string
	publicRead      bool
}

type StorageConfig struct {
	Endpoint        string
	AccessKey       string
	SecretKey       string
	UseSSL          bool
	RawBucket       string
	ProcessedBucket string
	PublicRead      bool
}

func NewStorage(cfg StorageConfig) (*Storage, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Storage{
		client:          client,
		rawBucket:       cfg.RawBucket,
		processedBucket: cfg.ProcessedBucket,
		publicRead:      cfg.PublicRead,
	}, nil
}

// EnsureBuckets creates both buckets if absent. When public reads are
// configured, the processed bucket gets an anonymous-download policy so
// published renditions are publicly readable.
func (s *Storage) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{s.rawBucket, s.processedBucket} {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := s.client.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("create bucket %s: %w", bucket, err)
			}
		}
	}

	if s.publicRead {
		policy := fmt.Sprintf(`{
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}]
		}`, s.processedBucket)
		if err := s.client.SetBucketPolicy(ctx, s.processedBucket, policy); err != nil {
			return fmt.Errorf("set public-read policy on %s: %w", s.processedBucket, err)
		}
	}

	return nil
}

func (s *Storage) DownloadRaw(ctx context.Context, objectKey string, destPath string) error {
	return s.client.FGetObject(ctx, s.rawBucket, objectKey, destPath, miniogo.GetObjectOptions{})
}

func (s *Storage) UploadProcessed(ctx context.Context, objectKey string, srcPath string) error {
	contentType := mime.TypeByExtension(filepath.Ext(srcPath))
	if contentType == "" {
		contentType = "video/mp4"
	}

	_, err := s.client.FPutObject(ctx, s.processedBucket, objectKey, srcPath, miniogo.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectKey, err)
	}
	return nil
}
