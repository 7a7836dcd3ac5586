package httpapi

import (
	"context"
	"net/http"
	"strings"

	"eats-backend/internal/domain"
	"eats-backend/internal/service"
)

type contextKey string

const userKey contextKey = "user"

type AuthMiddleware struct {
	Tokens service.TokenIssuer
	Users  service.UserRepository
}

func NewAuthMiddleware(tokens service.TokenIssuer, users service.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{Tokens: tokens, Users: users}
}

// Authenticate resolves the Bearer token into a full user record and
// stores it in the request context. Requests without a valid token do
// not reach the guarded routes.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization format", http.StatusUnauthorized)
			return
		}

		userID, err := m.Tokens.Verify(parts[1])
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		user, err := m.Users.GetUserByID(userID)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(r *http.Request) (domain.User, bool) {
	user, ok := r.Context().Value(userKey).(domain.User)
	return user, ok
}

// WithUser returns a request carrying the given authenticated user;
// tests use it to bypass token verification.
func WithUser(r *http.Request, user domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, user))
}

func requireRole(next http.HandlerFunc, roles ...domain.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if len(roles) == 0 {
			next(w, r)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				next(w, r)
				return
			}
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	}
}
