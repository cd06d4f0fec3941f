package store

import (
	"context"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

// CreateFile registers an uploaded file. file.ID and file.Owner must be set,
// the uploader also becomes the original owner.
func (s *pgStore) CreateFile(ctx context.Context, file *models.File) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.CreateFile(ctx, db.CreateFileParams{
		ID:          file.ID,
		Name:        file.Name,
		ObjectKey:   file.ObjectKey,
		Size:        file.Size,
		ContentType: file.ContentType,
		OwnerID:     file.Owner.ID,
	})
	if err != nil {
		return dbError(err, "file", map[string]any{"file_id": file.ID.String(), "name": file.Name})
	}

	owner := file.Owner
	file.Model(row)
	file.Owner = owner
	file.OriginalOwner = owner

	return nil
}

func (s *pgStore) GetFile(ctx context.Context, id uuid.UUID) (*models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.GetFile(ctx, id)
	if err != nil {
		return nil, dbError(err, "file", map[string]any{"file_id": id.String()})
	}

	return s.hydrateFile(ctx, row)
}

// GetFileForUpdate locks the file row until the surrounding transaction
// ends. Concurrent transfers of the same file queue up behind the lock.
func (s *pgStore) GetFileForUpdate(ctx context.Context, id uuid.UUID) (*models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.GetFileForUpdate(ctx, id)
	if err != nil {
		return nil, dbError(err, "file", map[string]any{"file_id": id.String()})
	}

	return s.hydrateFile(ctx, row)
}

func (s *pgStore) SetFileOwner(ctx context.Context, file *models.File, newOwner models.User) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.SetFileOwner(ctx, db.SetFileOwnerParams{
		ID:      file.ID,
		OwnerID: newOwner.ID,
	})
	if err != nil {
		return dbError(err, "file", map[string]any{"file_id": file.ID.String(), "owner_id": newOwner.ID.String()})
	}

	file.Owner = newOwner
	file.UpdatedAt = row.UpdatedAt

	return nil
}

func (s *pgStore) ListFilesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows := []db.File{}
	offset := int32(0)
	for {
		page, err := s.q.ListFilesByOwner(ctx, db.ListFilesByOwnerParams{
			OwnerID: ownerID,
			Limit:   defaultQueryLimit,
			Offset:  offset,
		})
		if err != nil {
			return nil, dbError(err, "file", map[string]any{"owner_id": ownerID.String(), "offset": offset})
		}
		rows = append(rows, page...)

		if len(page) < defaultQueryLimit {
			break
		}
		offset += defaultQueryLimit
	}

	return s.hydrateFiles(ctx, rows)
}

func (s *pgStore) CountFilesByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	count, err := s.q.CountFilesByOwner(ctx, ownerID)
	if err != nil {
		return 0, dbError(err, "file", map[string]any{"owner_id": ownerID.String()})
	}
	return count, nil
}

func (s *pgStore) ListFiles(ctx context.Context, limit, offset int32) ([]models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.ListFiles(ctx, db.ListFilesParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, dbError(err, "file", map[string]any{"limit": limit, "offset": offset})
	}

	return s.hydrateFiles(ctx, rows)
}

func (s *pgStore) CountFiles(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	count, err := s.q.CountFiles(ctx)
	if err != nil {
		return 0, dbError(err, "file", nil)
	}
	return count, nil
}

func (s *pgStore) hydrateFile(ctx context.Context, row db.File) (*models.File, error) {
	files, err := s.hydrateFiles(ctx, []db.File{row})
	if err != nil {
		return nil, err
	}
	return &files[0], nil
}

// hydrateFiles converts rows and fills in the owner and original owner of
// every file.
func (s *pgStore) hydrateFiles(ctx context.Context, rows []db.File) ([]models.File, error) {
	if len(rows) == 0 {
		return []models.File{}, nil
	}

	users, err := s.loadUsers(ctx, fileUserIDs(rows))
	if err != nil {
		return nil, err
	}

	return buildFiles(rows, users), nil
}

func fileUserIDs(rows []db.File) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows)*2)
	for _, row := range rows {
		ids = append(ids, row.OwnerID, row.OriginalOwnerID)
	}
	return ids
}

func buildFiles(rows []db.File, users map[uuid.UUID]models.User) []models.File {
	files := make([]models.File, len(rows))
	for i, row := range rows {
		files[i].Model(row)
		files[i].Owner = users[row.OwnerID]
		files[i].OriginalOwner = users[row.OriginalOwnerID]
	}
	return files
}
