package dto

import (
	"github.com/filetransfer/filetransfer_api/internal/ownership"
	"github.com/google/uuid"
)

type TransferRequest struct {
	FileID   string `json:"file_id" validate:"required,uuid"`
	ToUserID string `json:"to_user_id" validate:"required,uuid"`
	Notes    string `json:"notes" validate:"max=500"`
}

// ToModel expects a validated request.
func (r *TransferRequest) ToModel() ownership.TransferRequest {
	return ownership.TransferRequest{
		FileID:   uuid.MustParse(r.FileID),
		ToUserID: uuid.MustParse(r.ToUserID),
		Notes:    r.Notes,
	}
}

type RevokeRequest struct {
	FileID string `json:"file_id" validate:"required,uuid"`
	Notes  string `json:"notes" validate:"max=500"`
}

func (r *RevokeRequest) ToModel() ownership.RevokeRequest {
	return ownership.RevokeRequest{
		FileID: uuid.MustParse(r.FileID),
		Notes:  r.Notes,
	}
}

// TransferResponse is returned by both transfer and revoke.
type TransferResponse struct {
	Success         bool                   `json:"success"`
	Message         string                 `json:"message"`
	File            FileResponse           `json:"file"`
	TransferHistory TransferRecordResponse `json:"transfer_history"`
}

func NewTransferResponse(res *ownership.Result) TransferResponse {
	return TransferResponse{
		Success:         true,
		Message:         res.Message,
		File:            NewFileResponse(res.File),
		TransferHistory: NewTransferRecordResponse(res.Record),
	}
}
