package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/config"
	s3client "volonterka-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKey, config.Conf.S3.SecretKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Помилка ініціалізації клієнта S3")
		return
	}
	s3client.Client = minioClient

	if err = s3client.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("Не вдалося перевірити бакет S3")
		return
	}
	log.Info("Клієнт S3 успішно ініціалізовано")
}
