package auth

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer      = "filetransfer_api"
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

type jwtGenerator struct {
	signingMethod         jwt.SigningMethod
	privateKey, publicKey interface{}
	ttlAccess, ttlRefresh time.Duration
	parser                *jwt.Parser
}

func newJWTGenerator(cfg config.Config) (*jwtGenerator, error) {
	privateKey, publicKey, err := utils.ParseEdDSAKeys(cfg.Auth.SecretPrivateKey, cfg.Auth.PublicKey)
	if err != nil {
		return nil, err
	}
	method := jwt.GetSigningMethod(cfg.Auth.Algorithm)
	return &jwtGenerator{
		signingMethod: method,
		privateKey:    privateKey,
		publicKey:     publicKey,
		ttlAccess:     cfg.Auth.AccessTokenTTL,
		ttlRefresh:    cfg.Auth.RefreshTokenTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{cfg.Auth.Algorithm}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Claims is the access token payload. Role and Active are taken when the
// token is signed; the auth middleware still checks the stored account.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string      `json:"user_id" validate:"required,uuid"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	Active    bool        `json:"active"`
	TokenType string      `json:"token_type"`
}

type refreshClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

func (m *jwtGenerator) registered(user models.User, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}
}

func (m *jwtGenerator) newPair(user models.User) (*TokenPair, error) {
	now := time.Now()

	access, err := jwt.NewWithClaims(m.signingMethod, Claims{
		RegisteredClaims: m.registered(user, now, m.ttlAccess),
		UserID:           user.ID.String(),
		Username:         user.Username,
		Role:             user.Role,
		Active:           user.IsActive,
		TokenType:        accessTokenType,
	}).SignedString(m.privateKey)
	if err != nil {
		return nil, err
	}

	refresh, err := jwt.NewWithClaims(m.signingMethod, refreshClaims{
		RegisteredClaims: m.registered(user, now, m.ttlRefresh),
		TokenType:        refreshTokenType,
	}).SignedString(m.privateKey)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *jwtGenerator) key(*jwt.Token) (interface{}, error) {
	return m.publicKey, nil
}

func (m *jwtGenerator) parseAccess(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := m.parser.ParseWithClaims(tokenStr, claims, m.key)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != accessTokenType {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject != claims.UserID {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return claims, nil
}

func (m *jwtGenerator) parseRefresh(tokenStr string) (*models.RefreshToken, error) {
	claims := &refreshClaims{}
	token, err := m.parser.ParseWithClaims(tokenStr, claims, m.key)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.TokenType != refreshTokenType {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return models.NewRefreshFromClaims(utils.HashToken(tokenStr), claims.RegisteredClaims), nil
}
