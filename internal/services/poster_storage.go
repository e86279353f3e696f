package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"movieverse-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// PosterStorage keeps movie poster images in a MinIO/S3 bucket. Clients
// upload directly via presigned PUT URLs; the resulting public URL is stored
// on the movie as posterUrl.
type PosterStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

const presignExpiry = 15 * time.Minute

func NewPosterStorage(cfg *config.MinIOConfig, logger *logrus.Logger) (*PosterStorage, error) {
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
	}).Info("Poster storage initialized")

	storage := &PosterStorage{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := storage.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure poster bucket, but continuing...")
	}

	return storage, nil
}

func (s *PosterStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Poster bucket created")
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

// PresignUpload returns a presigned PUT URL for a poster upload plus the
// public URL the object will be reachable at. The object name gets a random
// suffix so repeated uploads of the same filename never collide.
func (s *PosterStorage) PresignUpload(filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, ext)
	objectPath := fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucket,
		objectPath,
		presignExpiry,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicBase := strings.TrimPrefix(s.publicURL, "https://")
	publicBase = strings.TrimPrefix(publicBase, "http://")
	if idx := strings.Index(publicBase, "/"); idx != -1 {
		publicBase = publicBase[:idx]
	}

	protocol := "http://"
	if strings.HasPrefix(s.publicURL, "https://") {
		protocol = "https://"
	}

	publicURL := fmt.Sprintf("%s%s/%s/%s", protocol, publicBase, s.bucket, objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned poster upload URL")

	return presignedURL.String(), publicURL, nil
}

// Owns reports whether a poster URL points into this storage's bucket.
func (s *PosterStorage) Owns(url string) bool {
	return strings.Contains(url, "http") && strings.Contains(url, "/"+s.bucket+"/")
}

// Remove deletes a poster object. Accepts either a bare object name or a full
// public/presigned URL.
func (s *PosterStorage) Remove(objectOrURL string) error {
	objectPath := objectOrURL
	if strings.Contains(objectPath, "http") {
		parts := strings.Split(objectPath, "/")
		if len(parts) > 0 {
			objectPath = parts[len(parts)-1]
		}
	}
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}
	objectPath = strings.TrimPrefix(objectPath, s.bucket+"/")

	err := s.client.RemoveObject(
		context.Background(),
		s.bucket,
		objectPath,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete poster")
		return fmt.Errorf("failed to delete poster: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("Poster deleted from storage")
	return nil
}
