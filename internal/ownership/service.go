package ownership

import (
	"context"
	"fmt"
	"net/url"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/filestore"
	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/store"
	"github.com/google/uuid"
)

type TransferRequest struct {
	FileID   uuid.UUID
	ToUserID uuid.UUID
	Notes    string
}

type RevokeRequest struct {
	FileID uuid.UUID
	Notes  string
}

// Result is the outcome of a successful transfer or revoke.
type Result struct {
	File    models.File
	Record  models.TransferRecord
	Message string
}

type Service struct {
	store  store.Store
	files  filestore.FileStore
	logger *logging.Logger
}

func NewService(st store.Store, files filestore.FileStore, logger *logging.Logger) *Service {
	return &Service{
		store:  st,
		files:  files,
		logger: logger.WithOwnershipTag(),
	}
}

// Upload stores the content and registers the file with owner as both the
// current and the original owner.
func (s *Service) Upload(ctx context.Context, owner models.User, name string, upload *models.Upload) (*models.File, error) {
	id := uuid.New()

	key, err := s.files.UploadFile(ctx, owner.ID, id, upload)
	if err != nil {
		observe("UPLOAD", err)
		return nil, errlocal.Wrap(err, "failed to store file content", map[string]any{"file_id": id.String()})
	}

	file := &models.File{
		ID:          id,
		Name:        name,
		ObjectKey:   key,
		Size:        upload.Size,
		ContentType: upload.ContentType,
		Owner:       owner,
	}
	if err := s.store.CreateFile(ctx, file); err != nil {
		if delErr := s.files.DeleteFile(ctx, key); delErr != nil {
			s.logger.WithContext(ctx).WithError(delErr).WithField("object_key", key).
				Warn("failed to remove orphaned object")
		}
		observe("UPLOAD", err)
		return nil, err
	}

	observe("UPLOAD", nil)
	uploadedBytes.Add(float64(file.Size))
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"file_id": file.ID.String(),
		"size":    file.Size,
	}).Info("file uploaded")

	return file, nil
}

// Transfer moves file ownership from requester to the requested recipient.
// The file row stays locked from the ownership check until commit so two
// concurrent transfers of one file cannot both pass the check.
func (s *Service) Transfer(ctx context.Context, requester models.User, req TransferRequest) (*Result, error) {
	var res *Result
	err := s.store.ExecTx(ctx, func(tx store.Store) error {
		file, err := lockFile(ctx, tx, req.FileID)
		if err != nil {
			return err
		}

		var recipient *models.User
		if file != nil {
			if recipient, err = lockUser(ctx, tx, req.ToUserID); err != nil {
				return err
			}
		}

		if err := CheckTransfer(requester, file, recipient); err != nil {
			return err
		}

		from := file.Owner
		if err := tx.SetFileOwner(ctx, file, *recipient); err != nil {
			return err
		}

		record := models.TransferRecord{
			File:     *file,
			FromUser: from,
			ToUser:   *recipient,
			Action:   models.ActionTransfer,
			Notes:    req.Notes,
		}
		if err := tx.AppendTransfer(ctx, &record); err != nil {
			return err
		}

		res = &Result{
			File:    *file,
			Record:  record,
			Message: fmt.Sprintf("File %q successfully transferred to %s", file.Name, recipient.Username),
		}
		return nil
	})
	observe(string(models.ActionTransfer), err)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"file_id":      res.File.ID.String(),
		"from_user_id": res.Record.FromUser.ID.String(),
		"to_user_id":   res.Record.ToUser.ID.String(),
	}).Info("file transferred")

	return res, nil
}

// Revoke returns a transferred file to its original owner, whoever holds it
// now.
func (s *Service) Revoke(ctx context.Context, requester models.User, req RevokeRequest) (*Result, error) {
	var res *Result
	err := s.store.ExecTx(ctx, func(tx store.Store) error {
		file, err := lockFile(ctx, tx, req.FileID)
		if err != nil {
			return err
		}

		if err := CheckRevoke(requester, file); err != nil {
			return err
		}

		holder := file.Owner
		if err := tx.SetFileOwner(ctx, file, file.OriginalOwner); err != nil {
			return err
		}

		record := models.TransferRecord{
			File:     *file,
			FromUser: holder,
			ToUser:   file.OriginalOwner,
			Action:   models.ActionRevoke,
			Notes:    req.Notes,
		}
		if err := tx.AppendTransfer(ctx, &record); err != nil {
			return err
		}

		res = &Result{
			File:    *file,
			Record:  record,
			Message: fmt.Sprintf("File %q ownership revoked and returned to %s", file.Name, file.OriginalOwner.Username),
		}
		return nil
	})
	observe(string(models.ActionRevoke), err)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"file_id":      res.File.ID.String(),
		"from_user_id": res.Record.FromUser.ID.String(),
		"to_user_id":   res.Record.ToUser.ID.String(),
	}).Info("file transfer revoked")

	return res, nil
}

func (s *Service) OwnedFiles(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	return s.store.ListFilesByOwner(ctx, ownerID)
}

// OwnedFile returns the file only if requester currently owns it. Files
// held by others are reported as missing.
func (s *Service) OwnedFile(ctx context.Context, requester models.User, fileID uuid.UUID) (*models.File, error) {
	file, err := findFile(ctx, s.store, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil || file.Owner.ID != requester.ID {
		return nil, errlocal.NewErrNotFound("File not found.", "", map[string]any{"file_id": fileID.String()})
	}
	return file, nil
}

func (s *Service) DownloadURL(ctx context.Context, requester models.User, fileID uuid.UUID) (*url.URL, error) {
	file, err := s.OwnedFile(ctx, requester, fileID)
	if err != nil {
		return nil, err
	}

	u, err := s.files.PresignedURL(ctx, file.ObjectKey, file.DownloadName())
	if err != nil {
		return nil, errlocal.Wrap(err, "failed to create download link", map[string]any{"file_id": fileID.String()})
	}
	return u, nil
}

// History lists every ledger entry the user took part in, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]models.TransferRecord, error) {
	history := []models.TransferRecord{}
	for rec, err := range s.store.TransferHistory(ctx, userID) {
		if err != nil {
			return nil, err
		}
		history = append(history, rec)
	}
	return history, nil
}

// FileHistory is the audit trail of one file, oldest first. It is visible
// to the current and the original owner.
func (s *Service) FileHistory(ctx context.Context, requester models.User, fileID uuid.UUID) ([]models.TransferRecord, error) {
	file, err := findFile(ctx, s.store, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil || (file.Owner.ID != requester.ID && file.OriginalOwner.ID != requester.ID) {
		return nil, errlocal.NewErrNotFound("File not found.", "", map[string]any{"file_id": fileID.String()})
	}

	return s.store.ListFileTransfers(ctx, fileID)
}

// Recipients lists the users a file can currently be transferred to.
func (s *Service) Recipients(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return s.store.ListActiveUsers(ctx, userID)
}

func (s *Service) AdminFiles(ctx context.Context, limit, offset int32) ([]models.File, int64, error) {
	files, err := s.store.ListFiles(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountFiles(ctx)
	if err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (s *Service) AdminTransfers(ctx context.Context, limit, offset int32) ([]models.TransferRecord, int64, error) {
	records, err := s.store.ListTransfers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountTransfers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// lockFile reads the file for update. It returns nil without error when the
// file does not exist.
func lockFile(ctx context.Context, tx store.Store, id uuid.UUID) (*models.File, error) {
	file, err := tx.GetFileForUpdate(ctx, id)
	if errlocal.IsNotFound(err) {
		return nil, nil
	}
	return file, err
}

func findFile(ctx context.Context, st store.Store, id uuid.UUID) (*models.File, error) {
	file, err := st.GetFile(ctx, id)
	if errlocal.IsNotFound(err) {
		return nil, nil
	}
	return file, err
}

// lockUser reads the recipient from the database, not the user cache, and
// share-locks the row so a deactivation cannot commit before the transfer.
func lockUser(ctx context.Context, tx store.Store, id uuid.UUID) (*models.User, error) {
	user, err := tx.GetUserForShare(ctx, id)
	if errlocal.IsNotFound(err) {
		return nil, nil
	}
	return user, err
}
