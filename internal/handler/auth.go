package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/obazhan/sportclub/internal/domain"
	"github.com/obazhan/sportclub/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, limiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, cookieSecure: cookieSecure}
}

// setAuthCookie attaches the session token as the jwt cookie. The token is
// returned only this way, never in the response body.
func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(service.TokenLifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookieSecure,
	})
}

// clearAuthCookie overwrites the jwt cookie with an immediately-expired one.
func (h *AuthHandler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cookieSecure,
	})
}

// HandleSignup processes a JSON signup request.
// POST /api/auth/signup
// Request:  {"fullName":"...","email":"...","password":"..."}
// Response: 201 with the public user; the session cookie is set.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many attempts, try again later")
		return
	}

	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.auth.Signup(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "All fields are required")
		default:
			slog.Error("signup", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, toUserDTO(user.Public()))
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: 200 with the public user; the session cookie is set.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many attempts, try again later")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		slog.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, toUserDTO(user.Public()))
}

// HandleLogout clears the session cookie. There is no server-side session to
// invalidate, so this always succeeds.
// POST /api/auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleUpdateProfile uploads a new profile picture and persists its URL.
// PUT /api/auth/update-profile (protected)
// Request:  {"profilePic":"data:image/png;base64,..."}
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := UserFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
		return
	}

	var req struct {
		ProfilePic string `json:"profilePic"`
	}
	if err := readJSON(r, &req); err != nil || req.ProfilePic == "" {
		writeError(w, http.StatusBadRequest, "ProfilePic is required")
		return
	}

	user, err := h.auth.UpdateProfilePic(r.Context(), identity.ID, req.ProfilePic)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid image data")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("update profile", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user.Public()))
}

// HandleCheckAuth echoes the identity attached by the session middleware.
// Clients call it to learn whether their stored cookie is still valid.
// GET /api/auth/check (protected)
func (h *AuthHandler) HandleCheckAuth(w http.ResponseWriter, r *http.Request) {
	identity := UserFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(*identity))
}
