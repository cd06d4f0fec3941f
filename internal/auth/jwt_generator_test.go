package auth

import (
	"testing"
	"time"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, accessTTL, refreshTTL time.Duration) config.Config {
	t.Helper()

	privateKey, publicKey, err := utils.GenerateEdDSAKeys()
	require.NoError(t, err)

	return config.Config{
		Auth: config.AuthManagerConfig{
			Algorithm:        "EdDSA",
			AccessTokenTTL:   accessTTL,
			RefreshTokenTTL:  refreshTTL,
			SecretPrivateKey: privateKey,
			PublicKey:        publicKey,
		},
	}
}

func TestNewJWTGenerator(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg := testConfig(t, 15*time.Minute, 7*24*time.Hour)

		generator, err := newJWTGenerator(cfg)

		require.NoError(t, err)
		assert.NotNil(t, generator)
		assert.NotNil(t, generator.privateKey)
		assert.NotNil(t, generator.publicKey)
		assert.Equal(t, 15*time.Minute, generator.ttlAccess)
		assert.Equal(t, 7*24*time.Hour, generator.ttlRefresh)
	})

	t.Run("missing_keys", func(t *testing.T) {
		cfg := config.Config{
			Auth: config.AuthManagerConfig{
				Algorithm: "EdDSA",
			},
		}

		_, err := newJWTGenerator(cfg)

		require.Error(t, err)
	})

	t.Run("keys_from_different_pairs", func(t *testing.T) {
		cfg := testConfig(t, time.Minute, time.Hour)
		other := testConfig(t, time.Minute, time.Hour)
		cfg.Auth.PublicKey = other.Auth.PublicKey

		generator, err := newJWTGenerator(cfg)
		require.NoError(t, err)

		tokens, err := generator.newPair(models.User{ID: uuid.New(), Username: "mismatch"})
		require.NoError(t, err)

		_, err = generator.parseAccess(tokens.Access)
		require.Error(t, err)
	})
}

func TestJWTGenerator_NewPair(t *testing.T) {
	cfg := testConfig(t, 15*time.Minute, 7*24*time.Hour)
	generator, err := newJWTGenerator(cfg)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Username: "testuser",
	}

	t.Run("success", func(t *testing.T) {
		tokens, err := generator.newPair(user)

		require.NoError(t, err)
		assert.NotEmpty(t, tokens.Access)
		assert.NotEmpty(t, tokens.Refresh)
	})

	t.Run("different_tokens", func(t *testing.T) {
		tokens, err := generator.newPair(user)

		require.NoError(t, err)
		assert.NotEqual(t, tokens.Access, tokens.Refresh)
	})

	t.Run("unique_tokens_each_call", func(t *testing.T) {
		tokens1, err := generator.newPair(user)
		require.NoError(t, err)

		tokens2, err := generator.newPair(user)
		require.NoError(t, err)

		assert.NotEqual(t, tokens1.Access, tokens2.Access)
		assert.NotEqual(t, tokens1.Refresh, tokens2.Refresh)
	})
}

func TestJWTGenerator_ParseAccess(t *testing.T) {
	cfg := testConfig(t, 15*time.Minute, 7*24*time.Hour)
	generator, err := newJWTGenerator(cfg)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Username: "testuser",
		Role:     models.RoleUser,
		IsActive: true,
	}

	t.Run("valid_token", func(t *testing.T) {
		tokens, err := generator.newPair(user)
		require.NoError(t, err)

		claims, err := generator.parseAccess(tokens.Access)

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, user.Username, claims.Username)
		assert.Equal(t, models.RoleUser, claims.Role)
		assert.True(t, claims.Active)
		assert.Equal(t, tokenIssuer, claims.Issuer)
		assert.Equal(t, accessTokenType, claims.TokenType)
	})

	t.Run("carries_account_state", func(t *testing.T) {
		admin := models.User{ID: uuid.New(), Username: "root", Role: models.RoleAdmin}

		tokens, err := generator.newPair(admin)
		require.NoError(t, err)

		claims, err := generator.parseAccess(tokens.Access)

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, claims.Role)
		assert.False(t, claims.Active)
	})

	t.Run("foreign_issuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(generator.signingMethod, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone_else",
				Subject:   user.ID.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			UserID:    user.ID.String(),
			TokenType: accessTokenType,
		}).SignedString(generator.privateKey)
		require.NoError(t, err)

		_, err = generator.parseAccess(foreign)

		require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("subject_mismatch", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(generator.signingMethod, Claims{
			RegisteredClaims: generator.registered(user, time.Now(), time.Minute),
			UserID:           uuid.New().String(),
			TokenType:        accessTokenType,
		}).SignedString(generator.privateKey)
		require.NoError(t, err)

		_, err = generator.parseAccess(forged)

		require.ErrorIs(t, err, jwt.ErrTokenInvalidSubject)
	})

	t.Run("missing_expiry", func(t *testing.T) {
		registered := generator.registered(user, time.Now(), time.Minute)
		registered.ExpiresAt = nil
		endless, err := jwt.NewWithClaims(generator.signingMethod, Claims{
			RegisteredClaims: registered,
			UserID:           user.ID.String(),
			TokenType:        accessTokenType,
		}).SignedString(generator.privateKey)
		require.NoError(t, err)

		_, err = generator.parseAccess(endless)

		require.Error(t, err)
	})

	t.Run("reject_refresh_token", func(t *testing.T) {
		tokens, err := generator.newPair(user)
		require.NoError(t, err)

		_, err = generator.parseAccess(tokens.Refresh)

		require.Error(t, err)
	})

	t.Run("invalid_token", func(t *testing.T) {
		_, err := generator.parseAccess("invalid.token.here")

		require.Error(t, err)
	})

	t.Run("empty_token", func(t *testing.T) {
		_, err := generator.parseAccess("")

		require.Error(t, err)
	})

	t.Run("wrong_signature", func(t *testing.T) {
		wrongGenerator, err := newJWTGenerator(testConfig(t, 15*time.Minute, 7*24*time.Hour))
		require.NoError(t, err)

		tokens, err := wrongGenerator.newPair(user)
		require.NoError(t, err)

		_, err = generator.parseAccess(tokens.Access)

		require.Error(t, err)
	})

	t.Run("expired_token", func(t *testing.T) {
		shortCfg := testConfig(t, time.Millisecond, time.Second)
		shortGenerator, err := newJWTGenerator(shortCfg)
		require.NoError(t, err)

		tokens, err := shortGenerator.newPair(user)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		_, err = shortGenerator.parseAccess(tokens.Access)

		require.Error(t, err)
	})
}

func TestJWTGenerator_ParseRefresh(t *testing.T) {
	cfg := testConfig(t, 15*time.Minute, 7*24*time.Hour)
	generator, err := newJWTGenerator(cfg)
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Username: "testuser",
	}

	t.Run("valid_token", func(t *testing.T) {
		tokens, err := generator.newPair(user)
		require.NoError(t, err)

		token, err := generator.parseRefresh(tokens.Refresh)

		require.NoError(t, err)
		assert.NotNil(t, token)
		assert.Equal(t, user.ID, token.UserID)
		assert.NotEmpty(t, token.TokenHash)
	})

	t.Run("reject_access_token", func(t *testing.T) {
		tokens, err := generator.newPair(user)
		require.NoError(t, err)

		_, err = generator.parseRefresh(tokens.Access)

		require.Error(t, err)
	})

	t.Run("invalid_token", func(t *testing.T) {
		_, err := generator.parseRefresh("invalid.token.here")

		require.Error(t, err)
	})

	t.Run("empty_token", func(t *testing.T) {
		_, err := generator.parseRefresh("")

		require.Error(t, err)
	})

	t.Run("wrong_signature", func(t *testing.T) {
		wrongGenerator, err := newJWTGenerator(testConfig(t, 15*time.Minute, 7*24*time.Hour))
		require.NoError(t, err)

		tokens, err := wrongGenerator.newPair(user)
		require.NoError(t, err)

		_, err = generator.parseRefresh(tokens.Refresh)

		require.Error(t, err)
	})

	t.Run("expired_token", func(t *testing.T) {
		shortCfg := testConfig(t, time.Second, time.Millisecond)
		shortGenerator, err := newJWTGenerator(shortCfg)
		require.NoError(t, err)

		tokens, err := shortGenerator.newPair(user)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		_, err = shortGenerator.parseRefresh(tokens.Refresh)

		require.Error(t, err)
	})

	t.Run("token_hash_consistency", func(t *testing.T) {
		tokens, err := generator.newPair(user)
		require.NoError(t, err)

		token1, err := generator.parseRefresh(tokens.Refresh)
		require.NoError(t, err)

		token2, err := generator.parseRefresh(tokens.Refresh)
		require.NoError(t, err)

		assert.Equal(t, token1.TokenHash, token2.TokenHash)
	})
}
