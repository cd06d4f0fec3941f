package api

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/utils"
)

const (
	transferFailedMsg = "Transfer failed"
	revokeFailedMsg   = "Revoke failed"
)

// Transfer godoc
// @Summary Transfer file ownership
// @Description Hands a file the caller owns to another active user and records the change
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "File and recipient"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or rejected transfer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transfer/ [post]
func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.TransferRequest](w, r)
	if err != nil {
		s.writeFailure(w, r, transferFailedMsg, errlocal.NewErrValidationFrom(transferFailedMsg, err))
		return
	}

	res, err := s.ownership.Transfer(r.Context(), utils.GetUser(r.Context()), req.ToModel())
	if err != nil {
		s.writeFailure(w, r, transferFailedMsg, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewTransferResponse(res))
}

// Revoke godoc
// @Summary Revoke a transfer
// @Description Returns a transferred file to its original owner. Only the original owner may revoke.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body dto.RevokeRequest true "File"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or rejected revoke"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /revoke/ [post]
func (s *Server) revoke(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.RevokeRequest](w, r)
	if err != nil {
		s.writeFailure(w, r, revokeFailedMsg, errlocal.NewErrValidationFrom(revokeFailedMsg, err))
		return
	}

	res, err := s.ownership.Revoke(r.Context(), utils.GetUser(r.Context()), req.ToModel())
	if err != nil {
		s.writeFailure(w, r, revokeFailedMsg, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewTransferResponse(res))
}

// History godoc
// @Summary Transfer history
// @Description Ledger entries where the caller is sender or recipient, newest first
// @Tags transfers
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /history/ [get]
func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUser(r.Context())

	records, err := s.ownership.History(r.Context(), user.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewHistoryResponse(user, records))
}
