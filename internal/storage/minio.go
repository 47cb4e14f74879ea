package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioStorage struct {
	client *minio.Client
}

func NewMinioStorage(endpoint, accessKey, secretKey string, useSSL bool) (ObjectStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStorage{client: client}, nil
}

func splitKey(key string) (bucket, object string) {
	bucket, object, _ = strings.Cut(key, "/")
	return bucket, object
}

func (m *minioStorage) Save(ctx context.Context, key string, reader io.Reader, size int64) error {
	bucket, object := splitKey(key)
	if bucket == "" || object == "" {
		return fmt.Errorf("invalid storage key %q", key)
	}
	if err := m.ensureBucket(ctx, bucket); err != nil {
		return err
	}
	_, err := m.client.PutObject(ctx, bucket, object, reader, size, minio.PutObjectOptions{})
	return err
}

func (m *minioStorage) Exists(ctx context.Context, key string) (bool, error) {
	bucket, object := splitKey(key)
	if bucket == "" || object == "" {
		return false, nil
	}
	_, err := m.client.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (m *minioStorage) Delete(ctx context.Context, key string) error {
	bucket, object := splitKey(key)
	if bucket == "" || object == "" {
		return fmt.Errorf("invalid storage key %q", key)
	}
	return m.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{})
}

func (m *minioStorage) ensureBucket(ctx context.Context, bucket string) error {
	found, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	}
	return nil
}
