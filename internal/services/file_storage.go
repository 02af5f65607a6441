package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"cinema-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// FileStorage persists uploaded files outside the database. Containers
// namespace objects per resource ("movies", "actors").
type FileStorage interface {
	SaveFile(ctx context.Context, container string, file *multipart.FileHeader) (string, error)
	DeleteFile(ctx context.Context, url, container string) error
	SaveEditedFile(ctx context.Context, oldURL, container string, file *multipart.FileHeader) (string, error)
}

type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOStorage(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOStorage, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	storage := &MinIOStorage{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := storage.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return storage, nil
}

func (s *MinIOStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// SaveFile uploads the file under a unique name inside the container and
// returns the public URL to store on the owning entity.
func (s *MinIOStorage) SaveFile(ctx context.Context, container string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectName := path.Join(container, uuid.New().String()+ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectName).Error("Failed to upload file")
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := s.publicURL + "/" + objectName

	s.logger.WithFields(logrus.Fields{
		"object": objectName,
		"size":   file.Size,
	}).Info("File uploaded successfully")

	return url, nil
}

// DeleteFile removes the object referenced by a public URL. Empty URLs are
// a no-op so callers can pass entity fields straight through.
func (s *MinIOStorage) DeleteFile(ctx context.Context, url, container string) error {
	if url == "" {
		return nil
	}

	objectName := path.Join(container, path.Base(url))
	if idx := strings.Index(objectName, "?"); idx != -1 {
		objectName = objectName[:idx]
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", objectName).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("object", objectName).Info("File deleted successfully")
	return nil
}

// SaveEditedFile replaces a previously stored object: delete old, save new.
func (s *MinIOStorage) SaveEditedFile(ctx context.Context, oldURL, container string, file *multipart.FileHeader) (string, error) {
	if err := s.DeleteFile(ctx, oldURL, container); err != nil {
		s.logger.WithError(err).Warn("Failed to delete previous file before replacement")
	}
	return s.SaveFile(ctx, container, file)
}
