package store

import (
	"context"
	"iter"
	"math"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

// AppendTransfer writes a new ledger entry. ID, Seq and Timestamp of record
// are assigned by the database.
func (s *pgStore) AppendTransfer(ctx context.Context, record *models.TransferRecord) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	var notes *string
	if record.Notes != "" {
		notes = &record.Notes
	}

	row, err := s.q.CreateTransferRecord(ctx, db.CreateTransferRecordParams{
		FileID:     record.File.ID,
		FromUserID: record.FromUser.ID,
		ToUserID:   record.ToUser.ID,
		Action:     string(record.Action),
		Notes:      notes,
	})
	if err != nil {
		return dbError(err, "transfer record", map[string]any{
			"file_id": record.File.ID.String(),
			"action":  string(record.Action),
		})
	}

	record.ID = row.ID
	record.Seq = row.Seq
	record.Timestamp = row.CreatedAt

	return nil
}

// TransferHistory yields every ledger entry the user is the sender or the
// recipient of, newest first. Pages are fetched lazily as the caller
// iterates, keyed by sequence so that entries appended meanwhile do not
// shift later pages.
func (s *pgStore) TransferHistory(ctx context.Context, userID uuid.UUID) iter.Seq2[models.TransferRecord, error] {
	return func(yield func(models.TransferRecord, error) bool) {
		before := int64(math.MaxInt64)
		for {
			page, err := s.transferPage(ctx, userID, before)
			if err != nil {
				yield(models.TransferRecord{}, err)
				return
			}

			for _, rec := range page {
				if !yield(rec, nil) {
					return
				}
			}

			if len(page) < defaultQueryLimit {
				return
			}
			before = page[len(page)-1].Seq
		}
	}
}

func (s *pgStore) transferPage(ctx context.Context, userID uuid.UUID, before int64) ([]models.TransferRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.ListTransfersForUser(ctx, db.ListTransfersForUserParams{
		UserID:    userID,
		BeforeSeq: before,
		PageSize:  defaultQueryLimit,
	})
	if err != nil {
		return nil, dbError(err, "transfer record", map[string]any{"user_id": userID.String(), "before_seq": before})
	}

	return s.hydrateRecords(ctx, rows)
}

func (s *pgStore) ListFileTransfers(ctx context.Context, fileID uuid.UUID) ([]models.TransferRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.ListTransfersForFile(ctx, fileID)
	if err != nil {
		return nil, dbError(err, "transfer record", map[string]any{"file_id": fileID.String()})
	}

	return s.hydrateRecords(ctx, rows)
}

func (s *pgStore) ListTransfers(ctx context.Context, limit, offset int32) ([]models.TransferRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.ListTransfers(ctx, db.ListTransfersParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, dbError(err, "transfer record", map[string]any{"limit": limit, "offset": offset})
	}

	return s.hydrateRecords(ctx, rows)
}

func (s *pgStore) CountTransfers(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	count, err := s.q.CountTransfers(ctx)
	if err != nil {
		return 0, dbError(err, "transfer record", nil)
	}
	return count, nil
}

// hydrateRecords resolves the file and both parties of each record. The
// nested file reflects its current state, not the state at record time.
func (s *pgStore) hydrateRecords(ctx context.Context, rows []db.TransferRecord) ([]models.TransferRecord, error) {
	records := make([]models.TransferRecord, len(rows))
	if len(rows) == 0 {
		return records, nil
	}

	fileIDs := make([]uuid.UUID, 0, len(rows))
	userIDs := make([]uuid.UUID, 0, len(rows)*2)
	for _, row := range rows {
		fileIDs = append(fileIDs, row.FileID)
		userIDs = append(userIDs, row.FromUserID, row.ToUserID)
	}

	fileRows, err := s.q.GetFilesByIDs(ctx, unique(fileIDs))
	if err != nil {
		return nil, dbError(err, "file", nil)
	}

	users, err := s.loadUsers(ctx, append(userIDs, fileUserIDs(fileRows)...))
	if err != nil {
		return nil, err
	}

	filesByID := make(map[uuid.UUID]models.File, len(fileRows))
	for _, f := range buildFiles(fileRows, users) {
		filesByID[f.ID] = f
	}

	for i, row := range rows {
		records[i].Model(row)
		records[i].File = filesByID[row.FileID]
		records[i].FromUser = users[row.FromUserID]
		records[i].ToUser = users[row.ToUserID]
	}

	return records, nil
}
