package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"volonterka-backend/config"
	s3client "volonterka-backend/s3"
)

type Provider interface {
	UploadProof(ctx context.Context, file []byte, fileName string) (storedPath string, err error)
	UploadVehicleImage(ctx context.Context, file []byte, fileName string) (storedPath string, err error)
	GetFile(ctx context.Context, storedPath string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) UploadProof(ctx context.Context, file []byte, fileName string) (string, error) {
	return i.upload(ctx, "proofs", file, fileName)
}

func (i impl) UploadVehicleImage(ctx context.Context, file []byte, fileName string) (string, error) {
	return i.upload(ctx, "vehicles", file, fileName)
}

func (i impl) upload(ctx context.Context, dir string, file []byte, fileName string) (string, error) {
	ext := strings.ToLower(path.Ext(fileName))
	objectName := fmt.Sprintf("%s/%s-%d%s", dir, uuid.NewString(), time.Now().Unix(), ext)
	reader := bytes.NewReader(file)
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.Bucket, objectName, reader, int64(len(file)),
		minio.PutObjectOptions{})
	if err != nil {
		log.WithError(err).WithField("object", objectName).Error("Помилка завантаження файлу в сховище")
		return "", errors.Wrap(err, "помилка завантаження файлу")
	}
	return objectName, nil
}

func (i impl) GetFile(ctx context.Context, storedPath string) ([]byte, error) {
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.Bucket, storedPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "помилка читання файлу зі сховища")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(object); err != nil {
		return nil, errors.Wrap(err, "помилка читання файлу зі сховища")
	}
	return buf.Bytes(), nil
}
