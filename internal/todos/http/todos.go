package http

import (
	"encoding/json"
	"net/http"

	"github.com/smicho01/todos-rest-api/internal/todos/domain"
	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
)

// TodosHandler covers the per-user todo collection. All routes are
// authenticated; reads and writes on a single todo run through the
// ownership guard after the record is loaded.
type TodosHandler struct {
	TodoService     *service.TodoService
	CategoryService *service.CategoryService
	Guard           *service.GuardService
}

type createTodoRequest struct {
	CategoryID  string `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgent      bool   `json:"urgent"`
}

// HandleCreate handles POST /v1/todos.
func (h *TodosHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	td, err := h.TodoService.CreateTodo(ctx, claims.UserID, req.CategoryID, req.Title, req.Description, req.Urgent)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, td)
}

// HandleList handles GET /v1/todos, returning the caller's own todos.
func (h *TodosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Access denied")
		return
	}

	todos, err := h.TodoService.ListTodosByOwner(ctx, claims.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, todos)
}

// HandleGet handles GET /v1/todos/{id}. Owner or admin only.
func (h *TodosHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	td, err := h.TodoService.GetTodo(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Guard.AuthorizeOwner(ctx, td.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, td)
}

// HandleListByCategory handles GET /v1/todos/category/{id}. The category's
// owner (or an admin) gets its todos; anyone else is denied before any todo
// is loaded.
func (h *TodosHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, err := h.CategoryService.GetCategory(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Guard.AuthorizeOwner(ctx, c.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	todos, err := h.TodoService.ListTodosByCategory(ctx, c.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, todos)
}

// HandlePatch handles PATCH /v1/todos/{id}. Owner or admin only. Unknown
// fields in the body are rejected rather than silently dropped.
func (h *TodosHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	td, err := h.TodoService.GetTodo(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Guard.AuthorizeOwner(ctx, td.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var patch domain.TodoPatch
	if err := dec.Decode(&patch); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updated, err := h.TodoService.UpdateTodo(ctx, td.ID, patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /v1/todos/{id}. Owner or admin only.
func (h *TodosHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	td, err := h.TodoService.GetTodo(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Guard.AuthorizeOwner(ctx, td.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.TodoService.DeleteTodo(ctx, td.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Todo deleted")
}
