package models

import (
	"io"
	"path"
	"strings"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/google/uuid"
)

// File is a registry entry. Owner changes with every transfer or revoke,
// OriginalOwner is fixed at upload.
type File struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ObjectKey     string    `json:"-"`
	Size          int64     `json:"size"`
	ContentType   string    `json:"content_type"`
	Owner         User      `json:"owner"`
	OriginalOwner User      `json:"original_owner"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Model copies the row into f. Only the ids of Owner and OriginalOwner are
// set, the rest is filled in by the store.
func (f *File) Model(file db.File) {
	f.ID = file.ID
	f.Name = file.Name
	f.ObjectKey = file.ObjectKey
	f.Size = file.Size
	f.ContentType = file.ContentType
	f.Owner = User{ID: file.OwnerID}
	f.OriginalOwner = User{ID: file.OriginalOwnerID}
	f.CreatedAt = file.CreatedAt
	f.UpdatedAt = file.UpdatedAt
}

// Extension is taken from the stored object, the display name is free text.
func (f *File) Extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(f.ObjectKey), "."))
}

// DownloadName is the name offered to clients saving the content.
func (f *File) DownloadName() string {
	ext := f.Extension()
	if ext == "" || strings.EqualFold(path.Ext(f.Name), "."+ext) {
		return f.Name
	}
	return f.Name + "." + ext
}

// IsTransferred reports whether the file currently sits with someone other
// than its uploader.
func (f *File) IsTransferred() bool {
	return f.Owner.ID != f.OriginalOwner.ID
}

// Upload is a file body on its way to the object store.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Entry       io.ReadCloser
}
