package api

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
)

type overviewResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	User      string            `json:"user"`
}

var overviewEndpoints = map[string]string{
	"file_upload":      apiPrefix + "/upload/",
	"transfer":         apiPrefix + "/transfer/",
	"revoke":           apiPrefix + "/revoke/",
	"my_files":         apiPrefix + "/my-files/",
	"transfer_history": apiPrefix + "/history/",
	"users":            apiPrefix + "/users/",
}

// Overview godoc
// @Summary API overview
// @Description Service version and the main endpoints. Works with or without credentials.
// @Tags health
// @Produce json
// @Success 200 {object} overviewResponse
// @Router / [get]
func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	username := "Anonymous"
	if user := utils.GetUser(r.Context()); user.Role != models.RoleAnonymous {
		username = user.Username
	}

	s.WriteResponse(w, r, http.StatusOK, overviewResponse{
		Message:   "File Transfer API is running",
		Version:   apiVersion,
		Endpoints: overviewEndpoints,
		User:      username,
	})
}

// optionalAuth runs authMiddleware only when the request carries
// credentials, so anonymous callers still get through.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	authed := s.authMiddleware(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if bearerToken(r) == "" {
			next.ServeHTTP(w, r)
			return
		}
		authed.ServeHTTP(w, r)
	})
}
