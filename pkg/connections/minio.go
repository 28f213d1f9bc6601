package dbconnections

import (
	"context"
	"errors"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioBlockStorageProductionConnectionConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Location  string
	UseSSL    bool
}

type MinioBlockStorageProductionConnection struct {
	config MinioBlockStorageProductionConnectionConfig
	client *minio.Client
}

var _ MinioBlockStorageConnection = (*MinioBlockStorageProductionConnection)(nil)

func NewMinioBlockStorageProductionConnection(ctx context.Context, config MinioBlockStorageProductionConnectionConfig) (conn MinioBlockStorageProductionConnection, err error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})

	if err != nil {
		return
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return
	}

	if !exists {
		makeBucketOptions := minio.MakeBucketOptions{Region: config.Location}
		if err = client.MakeBucket(ctx, config.Bucket, makeBucketOptions); err != nil {
			return
		}
	}

	conn = MinioBlockStorageProductionConnection{
		config: config,
		client: client,
	}

	return
}

func (c *MinioBlockStorageProductionConnection) GetObject(ctx context.Context, objectName string) ([]byte, ObjectInfo, error) {
	object, err := c.client.GetObject(ctx, c.config.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, convertToKnownError(err)
	}
	defer object.Close()

	stat, err := object.Stat()
	if err != nil {
		return nil, ObjectInfo{}, convertToKnownError(err)
	}

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, ObjectInfo{}, convertToKnownError(err)
	}

	info := ObjectInfo{
		Name:         stat.Key,
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		LastModified: stat.LastModified,
	}

	return data, info, nil
}

func (c *MinioBlockStorageProductionConnection) PutObject(
	ctx context.Context,
	objectName string,
	objectSize int64,
	mimeType string,
	reader io.Reader,
) error {
	_, err := c.client.PutObject(
		ctx,
		c.config.Bucket,
		objectName,
		reader,
		objectSize,
		minio.PutObjectOptions{ContentType: mimeType},
	)
	return err
}

func (c *MinioBlockStorageProductionConnection) DeleteObject(ctx context.Context, objectName string) error {
	return c.client.RemoveObject(ctx, c.config.Bucket, objectName, minio.RemoveObjectOptions{})
}

func (c *MinioBlockStorageProductionConnection) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	names := []string{}
	options := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}

	for object := range c.client.ListObjects(ctx, c.config.Bucket, options) {
		if object.Err != nil {
			return names, object.Err
		}
		names = append(names, object.Key)
	}

	return names, nil
}

func convertToKnownError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}

	return err
}

var ErrObjectNotFound = errors.New("object not found")
