package http

import (
	"errors"
	"net/http"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/internal/todos/store"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
	"github.com/smicho01/todos-rest-api/pkg/slogx"
)

// writeServiceError maps a service-layer error onto the HTTP status taxonomy
// and the `{"message": ...}` envelope. Anything unmapped is a 500 with a
// generic message; the real error only goes to the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		httpx.WriteMessage(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, service.ErrUserUnknown):
		httpx.WriteMessage(w, http.StatusBadRequest, "User does not exist")
	case errors.Is(err, service.ErrAccountInactive):
		httpx.WriteMessage(w, http.StatusUnauthorized, "User account inactive")
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteMessage(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrCategoryNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteMessage(w, http.StatusConflict, "Username is taken")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteMessage(w, http.StatusConflict, "Email is taken")
	case errors.Is(err, service.ErrAccountTaken):
		httpx.WriteMessage(w, http.StatusConflict, "Account details already taken")
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusConflict, "Invalid password")
	case errors.Is(err, service.ErrDuplicateCategory):
		httpx.WriteMessage(w, http.StatusConflict, "Category already exists")
	case errors.Is(err, service.ErrCategoryInUse):
		httpx.WriteMessage(w, http.StatusConflict, "Category still has todos")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
