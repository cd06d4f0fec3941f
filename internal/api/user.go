package api

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/utils"
)

// GetMe godoc
// @Summary Get current user
// @Description Profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileResponse "User information"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, dto.NewProfileResponse(utils.GetUser(r.Context())))
}

// DeleteMe godoc
// @Summary Deactivate account
// @Description Deactivates the caller. Files stay registered but the account can no longer sign in or receive transfers.
// @Tags users
// @Success 204 "Account deactivated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/me [delete]
func (s *Server) deleteMe(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUser(r.Context())

	if err := s.store.DeactivateUser(r.Context(), user.ID); err != nil {
		s.WriteError(w, r, err)
		return
	}
	if err := s.authManager.Revoke(r.Context(), user.ID); err != nil {
		s.logger.WithContext(r.Context()).WithError(err).Warn("failed to revoke tokens of deactivated user")
	}

	clearAuthCookies(w)
	s.WriteResponse(w, r, http.StatusNoContent, nil)
}

// Logout godoc
// @Summary Logout
// @Description Revokes refresh tokens and clears auth cookies
// @Tags users
// @Success 204 "Logged out"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/me/logout [post]
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUser(r.Context())

	if err := s.authManager.Revoke(r.Context(), user.ID); err != nil {
		s.WriteError(w, r, err)
		return
	}

	clearAuthCookies(w)
	s.WriteResponse(w, r, http.StatusNoContent, nil)
}

// ListUsers godoc
// @Summary Available recipients
// @Description Active users other than the caller, for picking a transfer recipient
// @Tags users
// @Produce json
// @Success 200 {object} dto.RecipientsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/ [get]
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	user := utils.GetUser(r.Context())

	users, err := s.ownership.Recipients(r.Context(), user.ID)
	if err != nil {
		s.WriteError(w, r, err)
		return
	}

	s.WriteResponse(w, r, http.StatusOK, dto.NewRecipientsResponse(user, users))
}
