package store

import (
	"context"
	"testing"
	"time"

	dbMock "github.com/filetransfer/filetransfer_api/internal/database/mocks"
	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/testdata"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInsertRefreshToken(t *testing.T) {
	expiresAt := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)

	t.Run("Insert refresh token successfully", func(t *testing.T) {
		ctx := context.Background()
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}

		newToken := models.RefreshToken{
			UserID:    testdata.AliceID,
			TokenHash: "new_token_hash",
			ExpiresAt: expiresAt,
		}
		expectedID := uuid.New()

		mockQ.EXPECT().CreateRefreshToken(mock.Anything, db.CreateRefreshTokenParams{
			UserID:    testdata.AliceID,
			TokenHash: "new_token_hash",
			ExpiresAt: expiresAt,
		}).Return(expectedID, nil).Once()

		err := store.InsertRefreshToken(ctx, &newToken)

		assert.NoError(t, err)
		assert.Equal(t, expectedID, newToken.ID)
	})

	t.Run("Insert refresh token fails on database error", func(t *testing.T) {
		ctx := context.Background()
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}

		mockQ.EXPECT().CreateRefreshToken(mock.Anything, mock.Anything).
			Return(uuid.Nil, assert.AnError).Once()

		err := store.InsertRefreshToken(ctx, &models.RefreshToken{UserID: testdata.AliceID})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetRefreshTokenByHash(t *testing.T) {
	t.Run("Get refresh token by hash successfully", func(t *testing.T) {
		ctx := context.Background()
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}

		row := db.RefreshToken{
			ID:        uuid.New(),
			UserID:    testdata.BobID,
			TokenHash: "hash",
			ExpiresAt: testdata.CreatedAt.Add(time.Hour),
			CreatedAt: testdata.CreatedAt,
		}
		mockQ.EXPECT().GetRefreshTokenByHash(mock.Anything, "hash").Return(row, nil).Once()

		token, err := store.GetRefreshTokenByHash(ctx, "hash")

		require.NoError(t, err)
		assert.Equal(t, row.ID, token.ID)
		assert.Equal(t, testdata.BobID, token.UserID)
		assert.False(t, token.Revoked)
	})

	t.Run("Token not found", func(t *testing.T) {
		ctx := context.Background()
		mockQ := dbMock.NewQuerier(t)
		store := &pgStore{q: mockQ}

		mockQ.EXPECT().GetRefreshTokenByHash(mock.Anything, "missing").
			Return(db.RefreshToken{}, pgx.ErrNoRows).Once()

		token, err := store.GetRefreshTokenByHash(ctx, "missing")

		assert.Nil(t, token)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestRevokeAllUserTokens(t *testing.T) {
	ctx := context.Background()
	mockQ := dbMock.NewQuerier(t)
	store := &pgStore{q: mockQ}

	mockQ.EXPECT().RevokeAllUserTokens(mock.Anything, testdata.CarolID).Return(nil).Once()

	assert.NoError(t, store.RevokeAllUserTokens(ctx, testdata.CarolID))
}
