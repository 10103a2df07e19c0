package oss

import (
	"PartyHub.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var minioClient *minio.Client

// InitMinio connects the upload staging client. Endpoint left empty in
// the config means staging is disabled; IsEnabled reports that to the
// upload handler.
func InitMinio() error {
	cfg := config.ConfigInfo.Minio
	if cfg.Endpoint == "" {
		hlog.Info("MinIO endpoint not configured, upload staging disabled")
		return nil
	}

	var err error
	minioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Infof("Connect MinIO success, endpoint: %s", cfg.Endpoint)
	return nil
}

func IsEnabled() bool {
	return minioClient != nil
}
