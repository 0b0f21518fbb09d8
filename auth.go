// auth.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"learning_journal/pkg/httputil"
	"learning_journal/pkg/logger"

	"github.com/google/uuid"
)

// Rate limiting constants
const (
	maxLoginAttempts     = 3
	cooldownDuration     = 30 * time.Second
	maxLoginAttemptsHard = 6
	hardCooldownDuration = 5 * time.Minute
)

const sessionLifetime = 30 * time.Minute

// Define a custom type for context keys to avoid collisions
type contextKey string

const userContextKey contextKey = "user"

// getUserFromContext is a helper function to extract the user from the request context
func getUserFromContext(r *http.Request) (*User, bool) {
	user, ok := r.Context().Value(userContextKey).(*User)
	return user, ok
}

// setUserContext attaches the authenticated user to the request context
func setUserContext(r *http.Request, user *User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, user))
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for proxies)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// recordLoginAttempt records a login attempt in the database
func recordLoginAttempt(email, ipAddress string, successful bool) error {
	_, err := db.Exec(
		"INSERT INTO login_attempts (email, ip_address, successful, attempted_at) VALUES (?, ?, ?, ?)",
		email, ipAddress, successful, time.Now(),
	)
	return err
}

// checkRateLimitByEmail checks if an email is rate limited after repeated
// failed logins. Two tiers: 3 fails in 30s, 6 fails in 5m.
func checkRateLimitByEmail(email string) (bool, time.Duration, error) {
	now := time.Now()

	windows := []struct {
		window  time.Duration
		maximum int
	}{
		{hardCooldownDuration, maxLoginAttemptsHard},
		{cooldownDuration, maxLoginAttempts},
	}

	for _, limit := range windows {
		var failedAttempts int
		err := db.QueryRow(`
			SELECT COUNT(*) FROM login_attempts
			WHERE email = ? COLLATE NOCASE
			AND successful = 0
			AND attempted_at > ?
		`, email, now.Add(-limit.window)).Scan(&failedAttempts)
		if err != nil {
			return false, 0, err
		}

		if failedAttempts < limit.maximum {
			continue
		}

		var lastAttempt time.Time
		err = db.QueryRow(`
			SELECT attempted_at FROM login_attempts
			WHERE email = ? COLLATE NOCASE
			AND successful = 0
			ORDER BY attempted_at DESC LIMIT 1
		`, email).Scan(&lastAttempt)
		if err != nil {
			return false, 0, err
		}

		timeLeft := limit.window - now.Sub(lastAttempt)
		if timeLeft > 0 {
			return true, timeLeft, nil
		}
	}

	return false, 0, nil
}

// createSession creates a new session for a user in the database
func createSession(w http.ResponseWriter, user *User) error {
	sessionToken := uuid.NewString()
	expiresAt := time.Now().Add(sessionLifetime)

	_, err := db.Exec(
		"INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)",
		sessionToken, user.ID, expiresAt,
	)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		Expires:  expiresAt,
		HttpOnly: true,  // Prevent XSS
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	return nil
}

// clearSession removes a user's session from database and cookie
func clearSession(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("session_token")
	if err != nil {
		// If the cookie is not found, there's nothing to clear.
		return
	}

	_, err = db.Exec("DELETE FROM sessions WHERE id = ?", c.Value)
	if err != nil {
		logger.Error("Error deleting session from database", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// validateSession checks if a session exists and is valid in the database.
// A valid session has its expiration refreshed (sliding window).
func validateSession(sessionToken string) (*User, error) {
	var userID int
	var expiresAt time.Time

	err := db.QueryRow(`
		SELECT user_id, expires_at FROM sessions
		WHERE id = ? AND expires_at > ?
	`, sessionToken, time.Now()).Scan(&userID, &expiresAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session not found or expired")
		}
		return nil, err
	}

	newExpiresAt := time.Now().Add(sessionLifetime)
	if _, err := db.Exec("UPDATE sessions SET expires_at = ? WHERE id = ?", newExpiresAt, sessionToken); err != nil {
		logger.Error("Error updating session expiration", err)
	}

	return getUserByID(userID)
}

// cleanupExpiredSessions removes expired sessions from the database
func cleanupExpiredSessions() {
	_, err := db.Exec("DELETE FROM sessions WHERE expires_at <= ?", time.Now())
	if err != nil {
		logger.Error("Error cleaning up expired sessions", err)
	}
}

// cleanupOldLoginAttempts removes old login attempts (older than 24 hours)
func cleanupOldLoginAttempts() {
	cutoff := time.Now().Add(-24 * time.Hour)
	_, err := db.Exec("DELETE FROM login_attempts WHERE attempted_at <= ?", cutoff)
	if err != nil {
		logger.Error("Error cleaning up old login attempts", err)
	}
}

// securityHeaders adds security headers to all responses
func securityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	}
}

// isAPIRequest reports whether the request should get a JSON error rather
// than a redirect to the login page.
func isAPIRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// authMiddleware protects routes that require authentication using database sessions
func authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return securityHeaders(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_token")
		if err != nil {
			if err == http.ErrNoCookie {
				if isAPIRequest(r) {
					httputil.Unauthorized(w, "Authentication required")
				} else {
					http.Redirect(w, r, "/login", http.StatusFound)
				}
				return
			}
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		user, err := validateSession(c.Value)
		if err != nil {
			clearSession(w, r)
			if isAPIRequest(r) {
				httputil.Unauthorized(w, "Session expired")
			} else {
				http.Redirect(w, r, "/login?reason=session_expired", http.StatusFound)
			}
			return
		}

		// Update cookie expiration to match the refreshed session
		http.SetCookie(w, &http.Cookie{
			Name:     "session_token",
			Value:    c.Value,
			Expires:  time.Now().Add(sessionLifetime),
			HttpOnly: true,
			Secure:   false,
			SameSite: http.SameSiteLaxMode,
			Path:     "/",
		})

		next.ServeHTTP(w, setUserContext(r, user))
	})
}

// optionalUser returns the logged-in user when a valid session cookie is
// present. Public pages use it to adjust the menu without requiring auth.
func optionalUser(r *http.Request) *User {
	if user, ok := getUserFromContext(r); ok {
		return user
	}
	c, err := r.Cookie("session_token")
	if err != nil {
		return nil
	}
	user, err := validateSession(c.Value)
	if err != nil {
		return nil
	}
	return user
}
