package utils

import (
	"context"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/models"
)

type ContextKey string

const (
	UserCtxKey     ContextKey = "user"
	RequestBodyKey ContextKey = "request_body"
	RequestIDKey   ContextKey = "request_id"
	TimeKey        ContextKey = "time"
	PathKey        ContextKey = "path"
	MethodKey      ContextKey = "method"
	FileIDKey      ContextKey = "file_id"
)

var ContextKeys = map[ContextKey]struct{}{
	UserCtxKey:     {},
	RequestBodyKey: {},
	RequestIDKey:   {},
	TimeKey:        {},
	PathKey:        {},
	MethodKey:      {},
	FileIDKey:      {},
}

func SetUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUser returns the authenticated user. Requests that passed no auth
// middleware get an anonymous user.
func GetUser(ctx context.Context) models.User {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	if !ok {
		return models.User{Role: models.RoleAnonymous}
	}
	return user
}

func SetRequestBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, RequestBodyKey, body)
}

func GetRequestBody(ctx context.Context) any {
	return ctx.Value(RequestBodyKey)
}

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

func GetPath(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(PathKey).(string)
	return path, ok
}

func GetMethod(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(MethodKey).(string)
	return method, ok
}

// SetFileID records the file a request acts on so every log line of the
// request carries it.
func SetFileID(ctx context.Context, fileID string) context.Context {
	return context.WithValue(ctx, FileIDKey, fileID)
}

func GetFileID(ctx context.Context) (string, bool) {
	fileID, ok := ctx.Value(FileIDKey).(string)
	return fileID, ok && fileID != ""
}

func GetContextValue(ctx context.Context, key ContextKey) (any, bool) {
	val := ctx.Value(key)
	return val, val != nil
}

func ElapsedTime(ctx context.Context) (time.Duration, bool) {
	start, ok := ctx.Value(TimeKey).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}

func Ptr[T any](v T) *T {
	return &v
}
