package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore 对象存储后端，桶在首次写入时懒初始化
type MinIOStore struct {
	client   *minio.Client
	bucket   string
	initOnce sync.Once
	initErr  error
}

func NewMinIOStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinIOStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOStore{client: client, bucket: bucket}, nil
}

func (s *MinIOStore) lazyInit(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = fmt.Errorf("check bucket: %w", err)
			return
		}
		if !exists {
			if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
				s.initErr = fmt.Errorf("create bucket: %w", err)
			}
		}
	})
	return s.initErr
}

func (s *MinIOStore) Save(ctx context.Context, relPath string, r io.Reader, size int64, contentType string) error {
	if err := CheckSize(size); err != nil {
		return err
	}
	if err := s.lazyInit(ctx); err != nil {
		return err
	}
	if contentType == "" {
		contentType = ContentTypeByExt(relPath)
	}
	_, err := s.client.PutObject(ctx, s.bucket, relPath, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}
