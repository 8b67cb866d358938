package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"

	"volonterka-backend/config"
)

var Client *minio.Client

// EnsureBucket створює бакет фонду, якщо його ще немає.
func EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.Bucket
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
}
