package http

import (
	"encoding/json"
	"net/http"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
)

// UsersHandler covers the authenticated user directory and the admin
// maintenance endpoints.
type UsersHandler struct {
	UserService *service.UserService
	Guard       *service.GuardService
}

type findUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// HandleList handles GET /v1/users. Admin-only by route policy.
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// HandleGet handles GET /v1/users/{id}. A user may fetch their own record;
// admins may fetch anyone's.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.Guard.AuthorizeOwner(ctx, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.GetUser(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Redact())
}

// HandleFind handles POST /v1/users/find, looking a user up by username
// and/or email.
func (h *UsersHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	var req findUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	u, err := h.UserService.FindPublicProfile(r.Context(), req.Username, req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// HandlePatch handles PATCH /v1/users/{id}. Admin-only by route policy.
// Unknown fields in the body are rejected rather than silently dropped.
func (h *UsersHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var patch domain.UserPatch
	if err := dec.Decode(&patch); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	u, err := h.UserService.AdminPatch(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u.Redact())
}

// HandleDelete handles DELETE /v1/users/{id}. Admin-only by route policy;
// removes the user along with all their categories and todos.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "User deleted")
}
