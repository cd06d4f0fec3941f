package store

import (
	"context"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

func (s *pgStore) InsertRefreshToken(ctx context.Context, refreshToken *models.RefreshToken) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	id, err := s.q.CreateRefreshToken(ctx, db.CreateRefreshTokenParams{
		UserID:    refreshToken.UserID,
		TokenHash: refreshToken.TokenHash,
		ExpiresAt: refreshToken.ExpiresAt,
	})
	refreshToken.ID = id

	return err
}

func (s *pgStore) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rt, err := s.q.GetRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		return nil, err
	}
	model := models.RefreshToken(rt)

	return &model, nil
}

func (s *pgStore) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	return s.q.RevokeAllUserTokens(ctx, userID)
}
