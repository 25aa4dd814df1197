package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/founditapp/foundit/internal/auth"
	"github.com/founditapp/foundit/internal/store"
)

// AuthHandler handles the admin login endpoint.
type AuthHandler struct {
	Store     store.Store
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. On success the response carries a
// bearer token for the admin endpoints.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	creds, err := h.Store.Credentials().Get(r.Context())
	if err != nil {
		slog.Error("failed to load admin credentials", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if creds == nil || creds.Username != req.Username ||
		bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)) != nil {
		slog.Warn("admin login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonResponse(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "Invalid credentials",
		})
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, creds.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("admin logged in", "username", creds.Username)
	jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}
