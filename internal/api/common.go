package api

import (
	"context"
	"net/http"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	requestIDHeader  = "X-Request-ID"
	corsAllowMethods = "GET, POST, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Request-ID"
)

// commonMiddleware tags the request context with the request id and, for
// routes under /files/{file_id}, the file being acted on. Every log line
// written through Logger.WithContext further down the chain carries both.
func (s *Server) commonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORSHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := requestContext(r, requestID)
		r = r.WithContext(ctx)

		s.logger.WithContext(ctx).Debug("handling request")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logFinished(s.logger.WithContext(ctx), ctx, rec.status)
	})
}

func requestContext(r *http.Request, requestID string) context.Context {
	ctx := r.Context()
	ctx = context.WithValue(ctx, utils.TimeKey, time.Now())
	ctx = context.WithValue(ctx, utils.PathKey, r.URL.Path)
	ctx = context.WithValue(ctx, utils.MethodKey, r.Method)
	ctx = utils.SetRequestID(ctx, requestID)
	if fileID, ok := mux.Vars(r)[fileIDTag]; ok {
		ctx = utils.SetFileID(ctx, fileID)
	}
	return ctx
}

func logFinished(l *logging.Logger, ctx context.Context, status int) {
	l = l.WithField("status", status)
	if elapsed, ok := utils.ElapsedTime(ctx); ok {
		l = l.WithField("elapsed_ms", elapsed.Milliseconds())
	}

	switch {
	case status >= http.StatusInternalServerError:
		l.Error("finished handling request")
	case status >= http.StatusBadRequest:
		l.Warn("finished handling request")
	default:
		l.Info("finished handling request")
	}
}

func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Vary", "Origin")
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
	w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
	w.Header().Set("Access-Control-Max-Age", "3600")
}
