package api

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	fileIDTag       = "file_id"
	defaultLimit    = 100
	maxLimit        = 500
	uploadFailedMsg = "File upload failed"
)

// Upload godoc
// @Summary Upload a file
// @Description Registers a new file owned by the caller, who also becomes its original owner
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Display name"
// @Param file formData file true "File content"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upload/ [post]
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	name, upload, err := dto.GetUploadFromMultipartForm(w, r, s.maxUploadSize)
	if err != nil {
		s.writeFailure(w, r, uploadFailedMsg, err)
		return
	}
	defer upload.Entry.Close()

	file, err := s.ownership.Upload(r.Context(), utils.GetUser(r.Context()), name, upload)
	if err != nil {
		s.writeFailure(w, r, uploadFailedMsg, err)
		return
	}

	s.WriteResponse(w, r, http.StatusCreated, dto.NewUploadResponse(*file))
}

type uploadInfoResponse struct {
	Message        string            `json:"message"`
	Description    string            `json:"description"`
	RequiredFields map[string]string `json:"required_fields"`
	Method         string            `json:"method"`
	ContentType    string            `json:"content_type"`
	MaxSize        int64             `json:"max_size"`
}

// UploadInfo godoc
// @Summary Describe the upload endpoint
// @Description Form fields and limits accepted by POST /upload/
// @Tags files
// @Produce json
// @Success 200 {object} uploadInfoResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /upload/ [get]
func (s *Server) uploadInfo(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, uploadInfoResponse{
		Message:     "File upload endpoint",
		Description: "Upload files with ownership tracking",
		RequiredFields: map[string]string{
			"name": "string - Name/description of the file",
			"file": "file - The actual file to upload",
		},
		Method:      http.MethodPost,
		ContentType: "multipart/form-data",
		MaxSize:     s.maxUploadSize,
	})
}

// MyFiles godoc
// @Summary Files owned by the caller
// @Description Files the caller currently owns, newest first
// @Tags files
// @Produce json
// @Success 200 {object} dto.MyFilesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /my-files/ [get]
func (s *Server) myFiles(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUser(r.Context())

	files, err := s.ownership.OwnedFiles(r.Context(), user.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewMyFilesResponse(user, files))
}

// ListFiles godoc
// @Summary List own files
// @Description Paginated list of files the caller currently owns
// @Tags files
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {object} dto.FileListResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/ [get]
func (s *Server) listFiles(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r, defaultLimit, maxLimit)

	files, err := s.ownership.OwnedFiles(r.Context(), utils.GetUser(r.Context()).ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewFileListResponse(files, limit, offset))
}

// GetFile godoc
// @Summary Get own file
// @Description Details of a file the caller currently owns. Other files are reported as missing.
// @Tags files
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} dto.FileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/{file_id}/ [get]
func (s *Server) getFile(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileIDFromPath(w, r)
	if !ok {
		return
	}

	file, err := s.ownership.OwnedFile(r.Context(), utils.GetUser(r.Context()), fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewFileResponse(*file))
}

// DownloadFile godoc
// @Summary Download file content
// @Description Redirects the current owner to a short lived link for the file content
// @Tags files
// @Param file_id path string true "File ID"
// @Success 307 "Redirect to the content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/{file_id}/download [get]
func (s *Server) downloadFile(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileIDFromPath(w, r)
	if !ok {
		return
	}

	link, err := s.ownership.DownloadURL(r.Context(), utils.GetUser(r.Context()), fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	http.Redirect(w, r, link.String(), http.StatusTemporaryRedirect)
}

// FileHistory godoc
// @Summary File audit trail
// @Description Every transfer and revoke of one file, oldest first. Visible to the current and the original owner.
// @Tags files
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} dto.FileHistoryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /files/{file_id}/history [get]
func (s *Server) fileHistory(w http.ResponseWriter, r *http.Request) {
	fileID, ok := s.fileIDFromPath(w, r)
	if !ok {
		return
	}

	records, err := s.ownership.FileHistory(r.Context(), utils.GetUser(r.Context()), fileID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewFileHistoryResponse(fileID, records))
}

// fileIDFromPath answers 404 itself when the id is not a uuid.
func (s *Server) fileIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)[fileIDTag]
	id, err := uuid.Parse(raw)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrNotFound("File not found.", err.Error(),
			map[string]any{fileIDTag: raw}))
		return uuid.Nil, false
	}
	return id, true
}
