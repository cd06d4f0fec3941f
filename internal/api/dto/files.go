package dto

import (
	"fmt"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

// DownloadPathTmpl is where a file's content can be fetched by its owner.
const DownloadPathTmpl = "/api/v1/files/%s/download"

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

type FileResponse struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	File          string       `json:"file"`
	Owner         UserResponse `json:"owner"`
	OriginalOwner UserResponse `json:"original_owner"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	FileSize      int64        `json:"file_size"`
	FileExtension string       `json:"file_extension"`
	ContentType   string       `json:"content_type"`
}

func NewFileResponse(f models.File) FileResponse {
	return FileResponse{
		ID:            f.ID,
		Name:          f.Name,
		File:          fmt.Sprintf(DownloadPathTmpl, f.ID),
		Owner:         NewUserResponse(f.Owner),
		OriginalOwner: NewUserResponse(f.OriginalOwner),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
		FileSize:      f.Size,
		FileExtension: dottedExt(f.Extension()),
		ContentType:   f.ContentType,
	}
}

func NewFileResponses(files []models.File) []FileResponse {
	res := make([]FileResponse, 0, len(files))
	for _, f := range files {
		res = append(res, NewFileResponse(f))
	}
	return res
}

type TransferRecordResponse struct {
	ID        uuid.UUID     `json:"id"`
	File      FileResponse  `json:"file"`
	FromUser  UserResponse  `json:"from_user"`
	ToUser    UserResponse  `json:"to_user"`
	Action    models.Action `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
	Notes     string        `json:"notes"`
}

func NewTransferRecordResponse(r models.TransferRecord) TransferRecordResponse {
	return TransferRecordResponse{
		ID:        r.ID,
		File:      NewFileResponse(r.File),
		FromUser:  NewUserResponse(r.FromUser),
		ToUser:    NewUserResponse(r.ToUser),
		Action:    r.Action,
		Timestamp: r.Timestamp,
		Notes:     r.Notes,
	}
}

func NewTransferRecordResponses(records []models.TransferRecord) []TransferRecordResponse {
	res := make([]TransferRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, NewTransferRecordResponse(r))
	}
	return res
}

type UploadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	File    FileResponse `json:"file"`
}

func NewUploadResponse(f models.File) UploadResponse {
	return UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		File:    NewFileResponse(f),
	}
}

type MyFilesResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Files   []FileResponse `json:"files"`
	User    string         `json:"user"`
}

func NewMyFilesResponse(user models.User, files []models.File) MyFilesResponse {
	return MyFilesResponse{
		Success: true,
		Count:   len(files),
		Files:   NewFileResponses(files),
		User:    user.Username,
	}
}

type HistoryResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	History []TransferRecordResponse `json:"history"`
	User    string                   `json:"user"`
}

func NewHistoryResponse(user models.User, records []models.TransferRecord) HistoryResponse {
	return HistoryResponse{
		Success: true,
		Count:   len(records),
		History: NewTransferRecordResponses(records),
		User:    user.Username,
	}
}

// FileHistoryResponse is the audit trail of a single file, oldest first.
type FileHistoryResponse struct {
	Success bool                     `json:"success"`
	Count   int                      `json:"count"`
	FileID  uuid.UUID                `json:"file_id"`
	History []TransferRecordResponse `json:"history"`
}

func NewFileHistoryResponse(fileID uuid.UUID, records []models.TransferRecord) FileHistoryResponse {
	return FileHistoryResponse{
		Success: true,
		Count:   len(records),
		FileID:  fileID,
		History: NewTransferRecordResponses(records),
	}
}

type FileListResponse struct {
	Count   int            `json:"count"`
	Limit   int32          `json:"limit"`
	Offset  int32          `json:"offset"`
	Results []FileResponse `json:"results"`
}

// NewFileListResponse pages through files in memory. Count is the total
// before paging.
func NewFileListResponse(files []models.File, limit, offset int32) FileListResponse {
	total := len(files)
	start := min(int(offset), total)
	end := min(start+int(limit), total)

	return FileListResponse{
		Count:   total,
		Limit:   limit,
		Offset:  offset,
		Results: NewFileResponses(files[start:end]),
	}
}

type CurrentUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type RecipientsResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	CurrentUser    CurrentUser    `json:"current_user"`
	AvailableUsers []UserResponse `json:"available_users"`
	Count          int            `json:"count"`
}

func NewRecipientsResponse(current models.User, users []models.User) RecipientsResponse {
	available := make([]UserResponse, 0, len(users))
	for _, u := range users {
		available = append(available, NewUserResponse(u))
	}

	return RecipientsResponse{
		Success:        true,
		Message:        "Available users for file transfer",
		CurrentUser:    CurrentUser{ID: current.ID, Username: current.Username},
		AvailableUsers: available,
		Count:          len(available),
	}
}

func dottedExt(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + ext
}
