package dto

import (
	"time"

	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
)

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Password  string `json:"password" validate:"required,min=8,max=64"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

func (r *RegisterRequest) ToModel() (*models.User, error) {
	hp, err := utils.HashPass(r.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Username:       r.Username,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		HashedPassword: hp,
		Role:           models.RoleUser,
	}, nil
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens Tokens       `json:"tokens"`
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewAuthResponse(user models.User, access, refresh string) AuthResponse {
	return AuthResponse{
		User: NewUserResponse(user),
		Tokens: Tokens{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}
}

// ProfileResponse is the caller's own account, including role and status.
type ProfileResponse struct {
	UserResponse
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewProfileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		UserResponse: NewUserResponse(user),
		Role:         user.Role,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}
