package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sofienekhiari/midlandproject/internal/httputil"
)

// Handler authenticates the single site administrator. There are no
// accounts: one bcrypt hash from the environment guards the admin API.
type Handler struct {
	jwtSecret    string
	passwordHash string
}

func NewHandler(jwtSecret, passwordHash string) *Handler {
	return &Handler{jwtSecret: jwtSecret, passwordHash: passwordHash}
}

type loginRequest struct {
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login handles POST /api/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.passwordHash == "" {
		httputil.WriteError(w, http.StatusServiceUnavailable, "admin access is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Password == "" {
		httputil.WriteError(w, http.StatusBadRequest, "password is required")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		httputil.WriteError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token, err := GenerateToken(h.jwtSecret)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

// Middleware rejects requests that do not carry a valid admin token.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := ValidateToken(h.jwtSecret, tokenStr)
		if err != nil {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		if claims.Role != "admin" {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token role")
			return
		}

		next.ServeHTTP(w, r)
	})
}
