package api

import (
	"fmt"
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/rbac"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

func (s *Server) initRouter() {
	s.router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	root := s.router.PathPrefix(apiPrefix).Subrouter().StrictSlash(true)
	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.WriteError(w, r, errlocal.NewErrNotFound("endpoint not found", r.URL.Path, nil))
	})
	root.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			s.setCORSHeaders(w, r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		s.WriteResponse(w, r, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
	})
	root.Use(mux.CORSMethodMiddleware(root), metricsMiddleware, s.commonMiddleware)

	public := root.PathPrefix("").Subrouter()
	public.Use(s.optionalAuth)
	public.HandleFunc("/", s.overview).Methods(http.MethodGet)

	root.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)
	root.HandleFunc("/register", s.register).Methods(http.MethodPost)
	root.HandleFunc("/login", s.login).Methods(http.MethodPost)
	root.HandleFunc("/refresh", s.refresh).Methods(http.MethodPost)

	userRouter := root.PathPrefix("/users").Subrouter()
	userRouter.Use(s.authMiddleware)
	userRouter.HandleFunc("/", s.listUsers).Methods(http.MethodGet)
	userRouter.HandleFunc("/me", s.getMe).Methods(http.MethodGet)
	userRouter.HandleFunc("/me", s.deleteMe).Methods(http.MethodDelete)
	userRouter.HandleFunc("/me/logout", s.logout).Methods(http.MethodPost)

	fileRouter := root.PathPrefix("").Subrouter()
	fileRouter.Use(s.authMiddleware)
	fileRouter.HandleFunc("/upload/", s.upload).Methods(http.MethodPost)
	fileRouter.HandleFunc("/upload/", s.uploadInfo).Methods(http.MethodGet)
	fileRouter.HandleFunc("/transfer/", s.transfer).Methods(http.MethodPost)
	fileRouter.HandleFunc("/revoke/", s.revoke).Methods(http.MethodPost)
	fileRouter.HandleFunc("/my-files/", s.myFiles).Methods(http.MethodGet)
	fileRouter.HandleFunc("/history/", s.history).Methods(http.MethodGet)
	fileRouter.HandleFunc("/files/", s.listFiles).Methods(http.MethodGet)
	fileRouter.HandleFunc(fmt.Sprintf("/files/{%s}/", fileIDTag), s.getFile).Methods(http.MethodGet)
	fileRouter.HandleFunc(fmt.Sprintf("/files/{%s}/download", fileIDTag), s.downloadFile).Methods(http.MethodGet)
	fileRouter.HandleFunc(fmt.Sprintf("/files/{%s}/history", fileIDTag), s.fileHistory).Methods(http.MethodGet)

	adminRouter := root.PathPrefix("/admin").Subrouter()
	adminRouter.Use(s.authMiddleware, rbac.RequireRole(s.WriteError, models.RoleAdmin))
	adminRouter.HandleFunc("/files", s.adminFiles).Methods(http.MethodGet)
	adminRouter.HandleFunc("/transfers", s.adminTransfers).Methods(http.MethodGet)
}
