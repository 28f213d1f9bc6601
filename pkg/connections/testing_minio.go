package dbconnections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioBlockStorageTestingConnection struct {
	MinioBlockStorageProductionConnection
}

func NewMinioBlockStorageTestingConnection(t *testing.T) *MinioBlockStorageTestingConnection {
	endpoint := testingMinioEndpoint()

	conn, err := NewMinioBlockStorageProductionConnection(context.Background(), MinioBlockStorageProductionConnectionConfig{
		Endpoint:  endpoint,
		AccessKey: testingServerAccessKey,
		SecretKey: testingServerSecretKey,
		Bucket:    getRandomTestingBucketName(endpoint),
		Location:  "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatalf("Error when connecting to minio block storage: %s", err)
	}

	testingConn := &MinioBlockStorageTestingConnection{conn}
	t.Cleanup(testingConn.dropTestBucket)

	return testingConn
}

func (c *MinioBlockStorageTestingConnection) dropTestBucket() {
	ctx := context.Background()
	for object := range c.client.ListObjects(ctx, c.config.Bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return
		}
		c.client.RemoveObject(ctx, c.config.Bucket, object.Key, minio.RemoveObjectOptions{})
	}

	c.client.RemoveBucket(ctx, c.config.Bucket)
}

func testingMinioEndpoint() string {
	if endpoint := os.Getenv("IMGLIDE_TEST_MINIO_ENDPOINT"); endpoint != "" {
		return endpoint
	}

	return defaultTestingServerEndpoint
}

func getRandomTestingBucketName(endpoint string) string {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(testingServerAccessKey, testingServerSecretKey, ""),
		Secure: false,
	})
	if err != nil {
		panic("Error when generating random name of test bucket: " + err.Error())
	}

	for i := 0; i < 10; i++ {
		bucketName := uuid.New().String()

		exists, err := minioClient.BucketExists(context.Background(), bucketName)
		if err != nil {
			panic("Error when checking if bucket name exists: " + err.Error())
		}
		if !exists {
			return bucketName
		}
	}

	panic("Could not generate random bucket name")
}

const defaultTestingServerEndpoint = "IntegrationTests.Imglide.Minio:9000"
const testingServerAccessKey = "minio"
const testingServerSecretKey = "minio123"
