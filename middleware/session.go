package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/s7eamy/learn2-api/auth"
	"github.com/s7eamy/learn2-api/models"
	"gorm.io/gorm"
)

type contextKey string

const (
	userKey    contextKey = "user"
	sessionKey contextKey = "session"
)

// SessionCookieName is the cookie holding the signed session token.
const SessionCookieName = "session_token"

// WithSession resolves the session cookie to a user and attaches both the
// session row and the user to the request context. Requests without a valid
// session pass through unauthenticated; handlers decide whether that is a 401.
func WithSession(db *gorm.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		sid, err := auth.ParseSessionToken(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		var session models.Session
		if err := db.Where("id = ?", sid).First(&session).Error; err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if session.ExpiresAt.Before(time.Now()) {
			db.Delete(&session)
			next.ServeHTTP(w, r)
			return
		}

		var user models.User
		if err := db.Where("id = ?", session.UserID).First(&user).Error; err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, &session)
		ctx = context.WithValue(ctx, userKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// UserFrom returns the authenticated user attached by WithSession, if any.
func UserFrom(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}

// SessionFrom returns the session row attached by WithSession, if any.
func SessionFrom(r *http.Request) (*models.Session, bool) {
	session, ok := r.Context().Value(sessionKey).(*models.Session)
	return session, ok
}
