// Package rbac provides role-based access control middleware.
package rbac

import (
	"net/http"

	"github.com/filetransfer/filetransfer_api/internal/errlocal"
	"github.com/filetransfer/filetransfer_api/internal/models"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/gorilla/mux"
)

// RequireRole returns middleware that allows only active users with one of
// the given roles. Anonymous requests get 401, everything else 403.
func RequireRole(writeError func(http.ResponseWriter, *http.Request, error), roles ...models.Role) mux.MiddlewareFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := utils.GetUser(r.Context())
			if user.Role == models.RoleAnonymous {
				writeError(w, r, errlocal.NewErrUnauthorized("authentication required", "no user in context", nil))
				return
			}
			if _, ok := allowed[user.Role]; !ok || !user.IsActive {
				writeError(w, r, errlocal.NewErrForbidden("access denied", "insufficient role",
					map[string]any{"role": string(user.Role)}))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
