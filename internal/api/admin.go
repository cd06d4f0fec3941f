package api

import (
	"net/http"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/utils"
)

// adminFiles godoc
// @Summary      List all files
// @Description  Paginated registry listing with owners and human readable sizes
// @Tags         admin
// @Produce      json
// @Param        offset  query     int  false  "Offset"            default(0)
// @Param        limit   query     int  false  "Limit"             default(100)
// @Success      200     {object}  dto.AdminFileListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/files [get]
func (s *Server) adminFiles(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r, defaultLimit, maxLimit)

	files, total, err := s.ownership.AdminFiles(r.Context(), limit, offset)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewAdminFileListResponse(files, total, limit, offset))
}

// adminTransfers godoc
// @Summary      List the transfer ledger
// @Description  Paginated ledger of every transfer and revoke, newest first
// @Tags         admin
// @Produce      json
// @Param        offset  query     int  false  "Offset"            default(0)
// @Param        limit   query     int  false  "Limit"             default(100)
// @Success      200     {object}  dto.AdminTransferListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/transfers [get]
func (s *Server) adminTransfers(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r, defaultLimit, maxLimit)

	records, total, err := s.ownership.AdminTransfers(r.Context(), limit, offset)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewAdminTransferListResponse(records, total, limit, offset, time.Now()))
}
