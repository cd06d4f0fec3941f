package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	_ "github.com/filetransfer/filetransfer_api/docs"
	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/auth"
	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/ownership"
	"github.com/filetransfer/filetransfer_api/internal/store"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	defaultTimeout = time.Second * 10
	uploadTimeout  = time.Minute * 2
	apiPrefix      = "/api/v1"
	apiVersion     = "1.0.0"
)

type Server struct {
	s             *http.Server
	router        *mux.Router
	store         store.Store
	ownership     ownershipService
	authManager   auth.AuthManager
	maxUploadSize int64
	logger        *logging.Logger
	healthy       bool
}

type ownershipService interface {
	Upload(ctx context.Context, owner models.User, name string, upload *models.Upload) (*models.File, error)
	Transfer(ctx context.Context, requester models.User, req ownership.TransferRequest) (*ownership.Result, error)
	Revoke(ctx context.Context, requester models.User, req ownership.RevokeRequest) (*ownership.Result, error)
	OwnedFiles(ctx context.Context, ownerID uuid.UUID) ([]models.File, error)
	OwnedFile(ctx context.Context, requester models.User, fileID uuid.UUID) (*models.File, error)
	DownloadURL(ctx context.Context, requester models.User, fileID uuid.UUID) (*url.URL, error)
	History(ctx context.Context, userID uuid.UUID) ([]models.TransferRecord, error)
	FileHistory(ctx context.Context, requester models.User, fileID uuid.UUID) ([]models.TransferRecord, error)
	Recipients(ctx context.Context, userID uuid.UUID) ([]models.User, error)
	AdminFiles(ctx context.Context, limit, offset int32) ([]models.File, int64, error)
	AdminTransfers(ctx context.Context, limit, offset int32) ([]models.TransferRecord, int64, error)
}

// @title FileTransfer API
// @version 1.0
// @description File registry with ownership transfer, revoke and an append-only transfer ledger.

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 0.0.0.0:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func NewServer(
	cfg config.Config,
	store store.Store,
	ownership ownershipService,
	authManager auth.AuthManager,
	logger *logging.Logger,
) *Server {
	r := mux.NewRouter()

	return &Server{
		s: &http.Server{
			Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:      r,
			WriteTimeout: uploadTimeout,
			ReadTimeout:  uploadTimeout,
			IdleTimeout:  defaultTimeout,
		},
		router:        r,
		store:         store,
		ownership:     ownership,
		authManager:   authManager,
		maxUploadSize: cfg.Upload.MaxSize,
		logger:        logger.WithApiTag(),
	}
}

func (s *Server) Start() error {
	s.logger.Infof("starting server at %s", s.s.Addr)
	s.InitRouter()

	return s.s.ListenAndServe()
}

// InitRouter registers every route and returns the resulting handler. Call it
// once per Server.
func (s *Server) InitRouter() http.Handler {
	s.initRouter()
	s.healthy = true

	return s.router
}

func (s *Server) Shutdown() error {
	s.logger.Infof("shutting down server at %s", s.s.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.healthy = false

	if err := s.s.Shutdown(ctx); err != nil {
		s.logger.Warnf("graceful shutdown failed, forcing close: %v", err)
		return s.s.Close()
	}

	return nil
}

func (s *Server) WriteResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		data = map[string]string{"status": http.StatusText(status)}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		s.logger.WithContext(r.Context()).WithError(err).Error("failed to encode response")
		return
	}

	s.logger.WithContext(r.Context()).WithField("status", status).Info("request processed")
}

// WriteError reports err to the client. Internal failures keep their
// system message in the log only.
func (s *Server) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeFailure(w, r, "", err)
}

// writeFailure is WriteError with the client side message replaced by
// headline, e.g. "Transfer failed". Server faults keep their own message.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, headline string, err error) {
	status := http.StatusInternalServerError
	body := dto.ErrorResponse{Error: "internal server error"}

	var errLocal errlocal.LocalError
	if errors.As(err, &errLocal) {
		status = errLocal.Code()
		body.Error = errLocal.Message()
		if status < http.StatusInternalServerError {
			body.Details = errLocal.Details()
			if headline != "" {
				body.Error = headline
			}
		}
	}

	var kinded interface{ ErrorKind() string }
	if errors.As(err, &kinded) {
		body.Kind = kinded.ErrorKind()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if encodeErr := encoder.Encode(body); encodeErr != nil {
		s.logger.WithContext(r.Context()).WithError(encodeErr).Error("failed to encode error response")
		return
	}

	l := s.logger.WithContext(r.Context()).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		l.Error("request processed with error")
		return
	}
	l.Warn("request rejected")
}

// HealthCheck godoc
// @Summary Health check
// @Description Check server health
// @Tags health
// @Produce json
// @Success 200 {object} bool "Is server healthy"
// @Router /health [get]
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.WriteResponse(w, r, http.StatusOK, s.healthy)
}
