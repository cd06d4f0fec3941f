package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/filetransfer/filetransfer_api/internal/api/dto"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const authHeaderPrefix = "Bearer "

// authMiddleware resolves the caller from a bearer token or the access
// cookie. Tokens signed for an inactive account stop here; the rest load the
// account so a deactivation after signing shuts the user out at once.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("authentication credentials were not provided", "", nil))
			return
		}

		claims, err := s.authManager.Parse(token)
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid token", err.Error(), nil))
			return
		}
		if !claims.Active {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("account is deactivated", "",
				map[string]any{"user_id": claims.UserID}))
			return
		}

		user, err := s.store.GetUser(r.Context(), userID)
		if err != nil {
			if errlocal.IsNotFound(err) {
				s.WriteError(w, r, errlocal.NewErrUnauthorized("user not found", "", nil))
				return
			}
			s.WriteError(w, r, err)
			return
		}
		if !user.IsActive {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("account is deactivated", "",
				map[string]any{"user_id": user.ID.String()}))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetUser(r.Context(), *user)))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, authHeaderPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, authHeaderPrefix))
	}
	token, err := getAccessCookie(r)
	if err != nil {
		return ""
	}
	return token
}

// Register godoc
// @Summary User registration
// @Description Create an account and return JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.AuthResponse "User registered and tokens returned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.RegisterRequest](w, r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrValidationFrom("Registration failed", err))
		return
	}

	user, err := req.ToModel()
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to hash password", err.Error(), nil))
		return
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		s.WriteError(w, r, err)
		return
	}

	tokens, err := s.authManager.CreateNewPair(r.Context(), *user)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to create tokens", err.Error(), nil))
		return
	}

	setAuthCookies(w, tokens)
	s.WriteResponse(w, r, http.StatusCreated, dto.NewAuthResponse(*user, tokens.Access, tokens.Refresh))
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Tokens for existing user"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req, err := dto.GetRequestBody[dto.LoginRequest](w, r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrValidationFrom("Login failed", err))
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errlocal.IsNotFound(err) {
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid credentials", "", nil))
			return
		}
		s.WriteError(w, r, err)
		return
	}

	if err := utils.CompareHashPass(user.HashedPassword, req.Password); err != nil || !user.IsActive {
		s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid credentials", "", nil))
		return
	}

	tokens, err := s.authManager.CreateNewPair(r.Context(), *user)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrInternal("failed to create tokens", err.Error(),
			map[string]any{"user_id": user.ID.String()}))
		return
	}

	setAuthCookies(w, tokens)
	s.WriteResponse(w, r, http.StatusOK, dto.NewAuthResponse(*user, tokens.Access, tokens.Refresh))
}

// Refresh godoc
// @Summary Refresh access token
// @Description Get a new token pair using the refresh token cookie
// @Tags auth
// @Produce json
// @Success 202 "New tokens set in HttpOnly cookies"
// @Failure 400 {object} dto.ErrorResponse "Missing refresh token"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /refresh [post]
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := getRefreshFromCookie(r)
	if err != nil {
		s.WriteError(w, r, errlocal.NewErrBadRequest("missing refresh token cookie", err.Error(), nil))
		return
	}

	tokens, err := s.authManager.Refresh(r.Context(), refreshToken)
	if err != nil {
		var local errlocal.LocalError
		switch {
		case errlocal.IsNotFound(err):
			s.WriteError(w, r, errlocal.NewErrUnauthorized("token not found", "", nil))
		case errors.Is(err, jwt.ErrTokenExpired):
			s.WriteError(w, r, errlocal.NewErrUnauthorized("token expired", "", nil))
		case errors.As(err, &local):
			s.WriteError(w, r, err)
		default:
			s.WriteError(w, r, errlocal.NewErrUnauthorized("invalid refresh token", err.Error(), nil))
		}
		return
	}

	setAuthCookies(w, tokens)
	s.WriteResponse(w, r, http.StatusAccepted, nil)
}
