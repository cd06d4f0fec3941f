package filestore

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	fileStoreInitBucketTimeout = 10 * time.Second
	fileUploadTimeout          = 60 * time.Second
	fileRequestTimeout         = 10 * time.Second
	defaultPresignTTL          = 15 * time.Minute
	filePathTmpl               = "%s/files/%s/%s"
	fallbackObjectName         = "file"
)

type FileStore interface {
	UploadFile(ctx context.Context, ownerID, fileID uuid.UUID, upload *models.Upload) (string, error)
	PresignedURL(ctx context.Context, objectKey, filename string) (*url.URL, error)
	DeleteFile(ctx context.Context, objectKey string) error
}

type minioStore struct {
	client     *minio.Client
	bucket     string
	presignTTL time.Duration
}

func NewMinioStore(cfg config.Config) (FileStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fileStoreInitBucketTimeout)
	defer cancel()

	client, err := minio.New(cfg.Store.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Store.AccessKey, cfg.Store.SecretKey, ""),
		Secure: cfg.Store.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ttl := cfg.Store.PresignTTL
	if ttl == 0 {
		ttl = defaultPresignTTL
	}

	store := &minioStore{client: client, bucket: cfg.Store.Bucket, presignTTL: ttl}
	err = client.MakeBucket(ctx, cfg.Store.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(ctx, cfg.Store.Bucket)
		if errBucketExists == nil && exists {
			return store, nil
		}

		return nil, err
	}

	return store, nil
}

// UploadFile stores the content under a key unique to the file. The key
// keeps the uploader's id as prefix even after the file changes hands.
func (m *minioStore) UploadFile(ctx context.Context, ownerID, fileID uuid.UUID, upload *models.Upload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fileUploadTimeout)
	defer cancel()

	defer upload.Entry.Close()

	uploadInfo, err := m.client.PutObject(
		ctx, m.bucket,
		ObjectKey(ownerID, fileID, upload.Name),
		upload.Entry, upload.Size, minio.PutObjectOptions{ContentType: upload.ContentType},
	)
	if err != nil {
		return "", err
	}

	return uploadInfo.Key, nil
}

// PresignedURL returns a time limited GET link. Clients saving the content
// are offered filename.
func (m *minioStore) PresignedURL(ctx context.Context, objectKey, filename string) (*url.URL, error) {
	ctx, cancel := context.WithTimeout(ctx, fileRequestTimeout)
	defer cancel()

	params := url.Values{}
	if filename != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	return m.client.PresignedGetObject(ctx, m.bucket, objectKey, m.presignTTL, params)
}

func (m *minioStore) DeleteFile(ctx context.Context, objectKey string) error {
	ctx, cancel := context.WithTimeout(ctx, fileRequestTimeout)
	defer cancel()

	return m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{ForceDelete: true})
}

// ObjectKey builds the storage key for an uploaded file. Only the base of
// filename is used and characters outside a conservative set are replaced.
func ObjectKey(ownerID, fileID uuid.UUID, filename string) string {
	return fmt.Sprintf(filePathTmpl, ownerID, fileID, sanitize(filename))
}

func sanitize(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = ""
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)

	ext := path.Ext(name)
	stem := strings.Trim(strings.TrimSuffix(name, ext), ".")
	if ext == "." {
		ext = ""
	}
	if stem == "" {
		stem = fallbackObjectName
	}
	return stem + ext
}
