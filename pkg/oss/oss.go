package oss

import (
	"context"
	"fmt"
	"io"

	"PartyHub.com/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadVideo stages a raw video file and returns its public locator.
func UploadVideo(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	var suffix string
	switch contentType {
	case "video/mp4":
		suffix = ".mp4"
	case "video/webm":
		suffix = ".webm"
	case "video/quicktime":
		suffix = ".mov"
	default:
		return "", fmt.Errorf("unsupported video format: %s", contentType)
	}
	objectName := "video/" + uuid.New().String() + suffix
	return putObject(ctx, objectName, reader, size, contentType)
}

// UploadCover stages a thumbnail image and returns its public locator.
func UploadCover(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
	objectName := "cover/" + uuid.New().String() + suffix
	return putObject(ctx, objectName, reader, size, contentType)
}

func putObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("upload staging is not configured")
	}
	bucketName := config.ConfigInfo.Minio.Bucket

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return "", fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("create bucket error: %w", err)
		}
	}

	_, err = minioClient.PutObject(ctx, bucketName, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object error: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicURL, bucketName, objectName), nil
}
