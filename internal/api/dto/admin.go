package dto

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

type AdminFileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Owner         string    `json:"owner"`
	OriginalOwner string    `json:"original_owner"`
	Transferred   bool      `json:"transferred"`
	Size          int64     `json:"size"`
	HumanSize     string    `json:"human_size"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewAdminFileResponse(f models.File) AdminFileResponse {
	return AdminFileResponse{
		ID:            f.ID,
		Name:          f.Name,
		Owner:         f.Owner.Username,
		OriginalOwner: f.OriginalOwner.Username,
		Transferred:   f.IsTransferred(),
		Size:          f.Size,
		HumanSize:     humanize.Bytes(uint64(max(f.Size, 0))),
		CreatedAt:     f.CreatedAt,
	}
}

type AdminFileListResponse struct {
	TotalCount int64               `json:"total_count"`
	Limit      int32               `json:"limit"`
	Offset     int32               `json:"offset"`
	Files      []AdminFileResponse `json:"files"`
}

func NewAdminFileListResponse(files []models.File, total int64, limit, offset int32) AdminFileListResponse {
	res := AdminFileListResponse{
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		Files:      make([]AdminFileResponse, 0, len(files)),
	}
	for _, f := range files {
		res.Files = append(res.Files, NewAdminFileResponse(f))
	}
	return res
}

type AdminTransferResponse struct {
	ID        uuid.UUID     `json:"id"`
	File      string        `json:"file"`
	FileID    uuid.UUID     `json:"file_id"`
	FromUser  string        `json:"from_user"`
	ToUser    string        `json:"to_user"`
	Action    models.Action `json:"action"`
	Notes     string        `json:"notes,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Age       string        `json:"age"`
}

type AdminTransferListResponse struct {
	TotalCount int64                   `json:"total_count"`
	Limit      int32                   `json:"limit"`
	Offset     int32                   `json:"offset"`
	Transfers  []AdminTransferResponse `json:"transfers"`
}

func NewAdminTransferListResponse(records []models.TransferRecord, total int64, limit, offset int32, now time.Time) AdminTransferListResponse {
	res := AdminTransferListResponse{
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		Transfers:  make([]AdminTransferResponse, 0, len(records)),
	}
	for _, r := range records {
		res.Transfers = append(res.Transfers, AdminTransferResponse{
			ID:        r.ID,
			File:      r.File.Name,
			FileID:    r.File.ID,
			FromUser:  r.FromUser.Username,
			ToUser:    r.ToUser.Username,
			Action:    r.Action,
			Notes:     r.Notes,
			Timestamp: r.Timestamp,
			Age:       humanize.RelTime(r.Timestamp, now, "ago", "from now"),
		})
	}
	return res
}
