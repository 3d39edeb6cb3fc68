package http

import (
	"encoding/json"
	"net/http"

	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
	"github.com/smicho01/todos-rest-api/pkg/slogx"
)

// AuthHandler covers the unauthenticated entry points: registration and
// login.
type AuthHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

type registerRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleRegister handles POST /v1/users/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	u, err := h.UserService.Register(ctx, req.Username, req.Email, req.Password, req.Roles)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID, "username", u.Username)
	httpx.WriteJSON(w, http.StatusCreated, u.Redact())
}

// HandleLogin handles POST /v1/users/login. On success the token is returned
// both in the body and as an Authorization header so thin clients can echo
// the header back verbatim.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	u, err := h.UserService.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", u.ID, "username", u.Username)

	w.Header().Set("Authorization", "Bearer "+token)
	httpx.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}
