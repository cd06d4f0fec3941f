package filestore

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	miniotc "github.com/testcontainers/testcontainers-go/modules/minio"
)

const (
	testBucket    = "test-bucket"
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
)

var (
	testConfig  config.Config
	minioClient *minio.Client
)

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

	container, err := miniotc.Run(ctx, "minio/minio:latest",
		miniotc.WithUsername(minioUser),
		miniotc.WithPassword(minioPassword),
	)
	if err != nil {
		log.Printf("MinIO container unavailable, object store tests are skipped: %v", err)
	} else {
		endpoint, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get MinIO endpoint: %v", err)
		}

		testConfig = config.Config{
			Store: config.FileStoreConfig{
				Endpoint:   endpoint,
				AccessKey:  minioUser,
				SecretKey:  minioPassword,
				Bucket:     testBucket,
				PresignTTL: time.Minute,
			},
		}

		minioClient, err = minio.New(endpoint, &minio.Options{
			Creds: credentials.NewStaticV4(minioUser, minioPassword, ""),
		})
		if err != nil {
			log.Fatalf("Failed to create MinIO client: %v", err)
		}
	}
	cancel()

	code := m.Run()

	if container != nil {
		_ = container.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupTestBucket(t *testing.T) func() {
	t.Helper()
	if minioClient == nil {
		t.Skip("MinIO is not available")
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		objectsCh := minioClient.ListObjects(ctx, testBucket, minio.ListObjectsOptions{
			Recursive: true,
		})
		for object := range objectsCh {
			if object.Err == nil {
				_ = minioClient.RemoveObject(ctx, testBucket, object.Key, minio.RemoveObjectOptions{})
			}
		}
		_ = minioClient.RemoveBucket(ctx, testBucket)
	}
}

func newUpload(name, contentType string, content []byte) *models.Upload {
	return &models.Upload{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: contentType,
		Entry:       io.NopCloser(bytes.NewReader(content)),
	}
}

func TestNewMinioStore(t *testing.T) {
	t.Run("successfully creates store and bucket", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		store, err := NewMinioStore(testConfig)

		require.NoError(t, err)
		require.NotNil(t, store)

		exists, err := minioClient.BucketExists(context.Background(), testBucket)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("works when bucket already exists", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		_, err := NewMinioStore(testConfig)
		require.NoError(t, err)

		_, err = NewMinioStore(testConfig)
		require.NoError(t, err)
	})

	t.Run("fails with invalid credentials", func(t *testing.T) {
		setupTestBucket(t)

		cfg := testConfig
		cfg.Store.AccessKey = "invalid"
		cfg.Store.SecretKey = "invalid"

		store, err := NewMinioStore(cfg)
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("presign ttl defaults", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		cfg := testConfig
		cfg.Store.PresignTTL = 0

		store, err := NewMinioStore(cfg)
		require.NoError(t, err)
		assert.Equal(t, defaultPresignTTL, store.(*minioStore).presignTTL)
	})
}

func TestUploadFile(t *testing.T) {
	t.Run("stores content with its content type", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		store, err := NewMinioStore(testConfig)
		require.NoError(t, err)

		ownerID, fileID := uuid.New(), uuid.New()
		content := []byte("%PDF-1.4 quarterly numbers")
		ctx := context.Background()

		key, err := store.UploadFile(ctx, ownerID, fileID, newUpload("Q1 report.pdf", "application/pdf", content))

		require.NoError(t, err)
		assert.Equal(t, ownerID.String()+"/files/"+fileID.String()+"/Q1_report.pdf", key)

		obj, err := minioClient.GetObject(ctx, testBucket, key, minio.GetObjectOptions{})
		require.NoError(t, err)
		defer obj.Close()

		downloaded, err := io.ReadAll(obj)
		require.NoError(t, err)
		assert.Equal(t, content, downloaded)

		info, err := minioClient.StatObject(ctx, testBucket, key, minio.StatObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", info.ContentType)
	})

	t.Run("same name from the same owner does not collide", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		store, err := NewMinioStore(testConfig)
		require.NoError(t, err)

		ownerID := uuid.New()
		ctx := context.Background()

		first, err := store.UploadFile(ctx, ownerID, uuid.New(), newUpload("a.txt", "text/plain", []byte("one")))
		require.NoError(t, err)
		second, err := store.UploadFile(ctx, ownerID, uuid.New(), newUpload("a.txt", "text/plain", []byte("two")))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("handles upload timeout", func(t *testing.T) {
		cleanup := setupTestBucket(t)
		defer cleanup()

		store, err := NewMinioStore(testConfig)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(10 * time.Millisecond)

		_, err = store.UploadFile(ctx, uuid.New(), uuid.New(), newUpload("a.txt", "text/plain", []byte("late")))
		assert.Error(t, err)
	})
}

func TestPresignedURL(t *testing.T) {
	cleanup := setupTestBucket(t)
	defer cleanup()

	store, err := NewMinioStore(testConfig)
	require.NoError(t, err)

	ctx := context.Background()
	content := []byte("hello")
	key, err := store.UploadFile(ctx, uuid.New(), uuid.New(), newUpload("hello.txt", "text/plain", content))
	require.NoError(t, err)

	link, err := store.PresignedURL(ctx, key, "Greeting.txt")
	require.NoError(t, err)
	assert.Contains(t, link.Query().Get("response-content-disposition"), `filename="Greeting.txt"`)
	assert.NotEmpty(t, link.Query().Get("X-Amz-Signature"))

	resp, err := http.Get(link.String())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, content, body)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment"))
}

func TestDeleteFile(t *testing.T) {
	cleanup := setupTestBucket(t)
	defer cleanup()

	store, err := NewMinioStore(testConfig)
	require.NoError(t, err)

	ctx := context.Background()
	key, err := store.UploadFile(ctx, uuid.New(), uuid.New(), newUpload("gone.txt", "text/plain", []byte("bye")))
	require.NoError(t, err)

	require.NoError(t, store.DeleteFile(ctx, key))

	_, err = minioClient.StatObject(ctx, testBucket, key, minio.StatObjectOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "The specified key does not exist")
}
