package store

import (
	"context"

	"github.com/filetransfer/filetransfer_api/internal/database/sqlc/db"
	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/google/uuid"
)

func (s *pgStore) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	row, err := s.q.CreateUser(ctx, db.CreateUserParams{
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		HashedPassword: user.HashedPassword,
		Role:           string(role),
	})
	if err != nil {
		return dbError(err, "user", map[string]any{"username": user.Username})
	}
	user.Model(row)
	s.users.add(*user)

	return nil
}

func (s *pgStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.users.get(id); ok {
		return &user, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		return nil, dbError(err, "user", map[string]any{"user_id": id.String()})
	}

	var user models.User
	user.Model(row)
	s.users.add(user)

	return &user, nil
}

func (s *pgStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, dbError(err, "user", map[string]any{"username": username})
	}

	var user models.User
	user.Model(row)
	s.users.add(user)

	return &user, nil
}

func (s *pgStore) GetUserForShare(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	row, err := s.q.GetUserForShare(ctx, id)
	if err != nil {
		return nil, dbError(err, "user", map[string]any{"user_id": id.String()})
	}

	var user models.User
	user.Model(row)
	s.users.add(user)

	return &user, nil
}

func (s *pgStore) ListActiveUsers(ctx context.Context, excludeID uuid.UUID) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.ListActiveUsersExcept(ctx, excludeID)
	if err != nil {
		return nil, dbError(err, "user", nil)
	}

	users := make([]models.User, len(rows))
	for i := range rows {
		users[i].Model(rows[i])
		s.users.add(users[i])
	}

	return users, nil
}

func (s *pgStore) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if err := s.q.DeactivateUser(ctx, id); err != nil {
		return dbError(err, "user", map[string]any{"user_id": id.String()})
	}
	// evict only once the row is inactive
	s.users.remove(id)

	return nil
}

// loadUsers resolves ids to users, going to the database only for the ones
// the cache does not hold.
func (s *pgStore) loadUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	res := make(map[uuid.UUID]models.User, len(ids))
	missing := make([]uuid.UUID, 0, len(ids))
	for _, id := range unique(ids) {
		if user, ok := s.users.get(id); ok {
			res[id] = user
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return res, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.q.GetUsersByIDs(ctx, missing)
	if err != nil {
		return nil, dbError(err, "user", nil)
	}
	for _, row := range rows {
		var user models.User
		user.Model(row)
		s.users.add(user)
		res[user.ID] = user
	}

	for _, id := range missing {
		if _, ok := res[id]; !ok {
			return nil, errlocal.NewErrInternal("referenced user is missing", "", map[string]any{"user_id": id.String()})
		}
	}

	return res, nil
}

// unique drops repeated ids keeping the first occurrence order.
func unique(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
