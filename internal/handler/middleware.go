package handler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/obazhan/sportclub/internal/domain"
	"github.com/obazhan/sportclub/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// authCookieName is the cookie the session token travels in. The token is
// never accepted from a header or body.
const authCookieName = "jwt"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.PublicUser {
	user, _ := ctx.Value(userContextKey).(*domain.PublicUser)
	return user
}

// RequireAuth is middleware that protects routes requiring authentication.
// Per request it reads the jwt cookie, verifies it, loads the user from the
// store, and injects the public view into the request context. Nothing is
// cached across requests; a protected request always reflects the current
// stored profile.
func RequireAuth(tokens *service.TokenService, auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(authCookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
			return
		}

		userID, err := tokens.Verify(cookie.Value)
		if err != nil {
			// One message for malformed, forged, and expired tokens.
			writeError(w, http.StatusUnauthorized, "Unauthorized - Invalid Token")
			return
		}

		user, err := auth.GetUserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Valid token for an identity that no longer exists.
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			slog.Error("load user for session", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		identity := user.Public()
		ctx := context.WithValue(r.Context(), userContextKey, &identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS allows the configured dashboard origins to call the API with
// credentials, so the auth cookie crosses origins.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
				h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the caller's address for rate-limit keying, preferring the
// first X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
