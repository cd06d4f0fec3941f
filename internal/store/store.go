package store

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connTimeout       = time.Second * 5
	defaultQueryLimit = 100
)

type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserForShare reads the user bypassing the cache and share-locks the
	// row for the rest of the enclosing transaction.
	GetUserForShare(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListActiveUsers(ctx context.Context, excludeID uuid.UUID) ([]models.User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error

	InsertRefreshToken(ctx context.Context, refreshToken *models.RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error

	CreateFile(ctx context.Context, file *models.File) error
	GetFile(ctx context.Context, id uuid.UUID) (*models.File, error)
	GetFileForUpdate(ctx context.Context, id uuid.UUID) (*models.File, error)
	SetFileOwner(ctx context.Context, file *models.File, newOwner models.User) error
	ListFilesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.File, error)
	CountFilesByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ListFiles(ctx context.Context, limit, offset int32) ([]models.File, error)
	CountFiles(ctx context.Context) (int64, error)

	AppendTransfer(ctx context.Context, record *models.TransferRecord) error
	TransferHistory(ctx context.Context, userID uuid.UUID) iter.Seq2[models.TransferRecord, error]
	ListFileTransfers(ctx context.Context, fileID uuid.UUID) ([]models.TransferRecord, error)
	ListTransfers(ctx context.Context, limit, offset int32) ([]models.TransferRecord, error)
	CountTransfers(ctx context.Context) (int64, error)

	Close()
	Conn() *pgxpool.Pool
	WithTx(tx pgx.Tx) Store
	BeginTx(ctx context.Context) (pgx.Tx, error)
	ExecTx(ctx context.Context, fn func(Store) error) error
}

type Connection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type QuerierFactory func(tx db.DBTX) db.Querier

type pgStore struct {
	q     db.Querier
	qf    QuerierFactory
	pool  Connection
	tx    pgx.Tx
	users *userCache
}

func NewPGStore(conf config.Config) (Store, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%s", conf.DB.Host, conf.DB.Port),
		User:     url.UserPassword(conf.DB.User, conf.DB.Password),
		Path:     "/" + conf.DB.Name,
		RawQuery: url.Values{"sslmode": []string{conf.DB.SSLMode}}.Encode(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	conn, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return &pgStore{
		pool: conn,
		q:    db.New(conn),
		qf: func(tx db.DBTX) db.Querier {
			return db.New(tx)
		},
		users: newUserCache(conf.Cache.UsersSize, conf.Cache.UsersTTL),
	}, nil
}

// NewPgStore builds a store over already constructed parts. The user cache
// is disabled.
func NewPgStore(q db.Querier, qf QuerierFactory, conn Connection) Store {
	return &pgStore{q: q, qf: qf, pool: conn}
}

func (s *pgStore) Close() {
	s.pool.Close()
}

// WithTx returns a store whose queries all run inside tx.
func (s *pgStore) WithTx(tx pgx.Tx) Store {
	return &pgStore{
		q:     s.qf(tx),
		qf:    s.qf,
		pool:  s.pool,
		tx:    tx,
		users: s.users,
	}
}

// BeginTx opens a savepoint when the store is already bound to a
// transaction.
func (s *pgStore) BeginTx(ctx context.Context) (pgx.Tx, error) {
	if s.tx != nil {
		return s.tx.Begin(ctx)
	}
	return s.pool.Begin(ctx)
}

func (s *pgStore) Conn() *pgxpool.Pool {
	pool, _ := s.pool.(*pgxpool.Pool)
	return pool
}

func (s *pgStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
