package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/ajshan23/alghazal-b-p/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps a MinIO connection for document and photo uploads
type Client struct {
	minio    *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// UploadResult is returned on a successful upload
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// NewClient connects to the object store configured via environment variables
func NewClient() (*Client, error) {
	endpoint := config.GetEnv("S3_ENDPOINT", "localhost:9000")
	accessKey := config.GetEnv("S3_ACCESS_KEY", "")
	secretKey := config.GetEnv("S3_SECRET_KEY", "")
	bucket := config.GetEnv("S3_BUCKET", "alghazal-documents")
	useSSL := config.GetEnvBool("S3_USE_SSL", false)

	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY must be set")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %v", err)
	}

	client := &Client{
		minio:    minioClient,
		bucket:   bucket,
		endpoint: endpoint,
		useSSL:   useSSL,
	}

	if err := client.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	log.Printf("✅ Connected to object storage (bucket %s)", bucket)
	return client, nil
}

func (c *Client) ensureBucket(ctx context.Context) error {
	exists, err := c.minio.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %v", err)
	}
	if exists {
		return nil
	}
	return c.minio.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
}

// Upload stores a file buffer under a generated key inside the given folder
// and returns its public URL and key
func (c *Client) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (UploadResult, error) {
	key := buildKey(folder, filename)

	_, err := c.minio.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload %s: %v", key, err)
	}

	return UploadResult{
		URL: c.objectURL(key),
		Key: key,
	}, nil
}

// Delete removes an object by key
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.minio.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{})
}

func (c *Client) objectURL(key string) string {
	scheme := "http"
	if c.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.endpoint, c.bucket, key)
}

// buildKey generates a collision-free object key that keeps the original
// file extension
func buildKey(folder, filename string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	base = strings.ReplaceAll(strings.ToLower(base), " ", "-")
	return fmt.Sprintf("%s/%s-%s%s", folder, base, uuid.NewString(), ext)
}
