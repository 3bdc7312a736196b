package api

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridoy/smartstock/internal/auth"
)

// AuthHandler handles the single-credential login flow. There is no
// user store: one configured email and bcrypt password hash gate the
// whole application.
type AuthHandler struct {
	Email        string
	PasswordHash string
	JWTSecret    string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if email != h.Email ||
		bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)) != nil {
		slog.Warn("login failed", "email", email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	slog.Info("user logged in", "email", email)
	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearAuthCookie(w)
	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session handles GET /api/auth/session. It reports whether the caller
// holds a valid session without failing the request.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(authCookie); err == nil && cookie.Value != "" {
		if _, err := auth.ValidateToken(h.JWTSecret, cookie.Value); err == nil {
			authenticated = true
		}
	}
	jsonResponse(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}
