package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageStore removes image objects that catalog records no longer reference.
type ImageStore interface {
	RemoveImage(ctx context.Context, ref string)
}

// Upload folders, one per image-bearing entity.
var ImageFolders = map[string]bool{
	"actors":      true,
	"movies":      true,
	"movie_shots": true,
}

const presignExpiry = 15 * time.Minute

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
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

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
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

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL returns a presigned PUT URL for a new object under
// folder and the public URL the record should store once uploaded.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, folder, filename string) (string, string, error) {
	objectPath := ObjectName(folder, filename, uuid.NewString()[:8])

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, presignExpiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := s.publicURL + "/" + objectPath

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     presignExpiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// RemoveImage deletes the object behind ref when it lives in our bucket.
// Foreign URLs and failures are logged and ignored.
func (s *MinIOService) RemoveImage(ctx context.Context, ref string) {
	objectPath, ok := ObjectPath(ref, s.publicURL)
	if !ok {
		return
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Warn("Failed to delete image from MinIO")
		return
	}

	s.logger.WithField("objectPath", objectPath).Info("Image deleted from MinIO")
}

// ObjectName builds "<folder>/<name>_<suffix><ext>" from an uploaded file name.
func ObjectName(folder, filename, suffix string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return path.Join(folder, fmt.Sprintf("%s_%s%s", name, suffix, ext))
}

// ObjectPath extracts the object key from a stored image reference. It
// reports false for references outside publicURL.
func ObjectPath(ref, publicURL string) (string, bool) {
	if ref == "" || publicURL == "" || !strings.HasPrefix(ref, publicURL+"/") {
		return "", false
	}

	objectPath := strings.TrimPrefix(ref, publicURL+"/")
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}
	if unescaped, err := url.PathUnescape(objectPath); err == nil {
		objectPath = unescaped
	}
	return objectPath, objectPath != ""
}

func removeImages(ctx context.Context, store ImageStore, refs ...string) {
	if store == nil {
		return
	}
	for _, ref := range refs {
		if ref != "" {
			store.RemoveImage(ctx, ref)
		}
	}
}
