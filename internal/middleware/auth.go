package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"productivity-service/internal/logging"
	"productivity-service/pkg/jwt"

	"github.com/google/uuid"
)

type contextKey string

const UserIDKey contextKey = "userID"

// TokenValidator validates bearer access tokens
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// SessionChecker reports whether an auth session is still live
type SessionChecker interface {
	IsActive(ctx context.Context, sessionID, userID uuid.UUID) (bool, error)
}

// AuthMiddleware validates access tokens against the shared session store
type AuthMiddleware struct {
	tokens   TokenValidator
	sessions SessionChecker
	logger   logging.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens TokenValidator, sessions SessionChecker, logger logging.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Auth validates JWT token from Authorization header
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(w)
			return
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			unauthorized(w)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		active, err := m.sessions.IsActive(ctx, claims.SessionID, claims.UserID)
		if err != nil {
			m.logger.Error(r.Context(), "failed to check session", "session_id", claims.SessionID, "error", err)
			internalError(w)
			return
		}
		if !active {
			unauthorized(w)
			return
		}

		reqCtx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// GetUserID extracts user ID from request context
func GetUserID(r *http.Request) uuid.UUID {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

func internalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
}
