package models

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) Model(user db.User) {
	u.ID = user.ID
	u.Username = user.Username
	u.Email = user.Email
	u.FirstName = user.FirstName
	u.LastName = user.LastName
	u.HashedPassword = user.HashedPassword
	u.Role = Role(user.Role)
	u.IsActive = user.IsActive
	u.CreatedAt = user.CreatedAt
	u.UpdatedAt = user.UpdatedAt
}

type RefreshToken db.RefreshToken

func NewRefreshFromClaims(hash string, claims jwt.RegisteredClaims) *RefreshToken {
	return &RefreshToken{
		UserID:    uuid.MustParse(claims.Subject),
		ExpiresAt: claims.ExpiresAt.Time,
		TokenHash: hash,
	}
}
