package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Component string

const (
	MainComponent      Component = "MAIN"
	ApiComponent       Component = "API"
	OwnershipComponent Component = "OWNERSHIP"
	StoreComponent     Component = "STORE"
	FileStoreComponent Component = "FILESTORE"
)

const timestampFormat = "2006-01-02 15:04:05"

type Logger struct {
	*logrus.Entry
}

func NewLogger(cfg config.Config) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		})
	}

	log.SetOutput(os.Stdout)
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stdout, file))
	}

	return &Logger{
		Entry: logrus.NewEntry(log).WithField("component", MainComponent),
	}, nil
}

// Discard returns a logger that writes nowhere. Used by tests and tools that
// do not configure logging.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Entry: logrus.NewEntry(log)}
}

func (l *Logger) WithComponent(component Component) *Logger {
	return &Logger{
		Entry: l.Entry.WithField("component", component),
	}
}

func (l *Logger) WithApiTag() *Logger {
	return l.WithComponent(ApiComponent)
}

func (l *Logger) WithOwnershipTag() *Logger {
	return l.WithComponent(OwnershipComponent)
}

func (l *Logger) WithFileStoreTag() *Logger {
	return l.WithComponent(FileStoreComponent)
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}

// WithContext lifts request scoped values into log fields.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{}

	for key := range utils.ContextKeys {
		val, ok := utils.GetContextValue(ctx, key)
		if !ok {
			continue
		}

		switch key {
		case utils.UserCtxKey:
			if user, ok := val.(models.User); ok && user.ID != uuid.Nil {
				fields["user_id"] = user.ID.String()
				fields["username"] = user.Username
				if user.Role != "" {
					fields["role"] = string(user.Role)
				}
			}
		case utils.RequestIDKey:
			if reqID, ok := val.(string); ok && reqID != "" {
				fields["request_id"] = reqID
			}
		case utils.PathKey:
			if path, ok := val.(string); ok && path != "" {
				fields["path"] = path
			}
		case utils.MethodKey:
			if method, ok := val.(string); ok && method != "" {
				fields["method"] = method
			}
		case utils.FileIDKey:
			if fileID, ok := val.(string); ok && fileID != "" {
				fields["file_id"] = fileID
			}
		}
	}

	if len(fields) == 0 {
		return l
	}

	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
