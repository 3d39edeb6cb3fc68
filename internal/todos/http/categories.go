package http

import (
	"encoding/json"
	"net/http"

	"github.com/smicho01/todos-rest-api/internal/todos/service"
	"github.com/smicho01/todos-rest-api/pkg/httpx"
)

// CategoriesHandler covers the per-user category collection. All routes are
// authenticated; the acting user comes from the verified claims, never from
// the body.
type CategoriesHandler struct {
	CategoryService *service.CategoryService
	Guard           *service.GuardService
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// HandleCreate handles POST /v1/categories.
func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Access denied")
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	c, err := h.CategoryService.CreateCategory(ctx, claims.UserID, req.Name, req.Color)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleList handles GET /v1/categories, returning the caller's own
// categories.
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteMessage(w, http.StatusUnauthorized, "Access denied")
		return
	}

	categories, err := h.CategoryService.ListCategoriesByOwner(ctx, claims.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

// HandleDelete handles DELETE /v1/categories/{id}. Owner or admin only;
// rejected while todos still reference the category.
func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	c, err := h.CategoryService.GetCategory(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Guard.AuthorizeOwner(ctx, c.OwnerID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.CategoryService.DeleteCategory(ctx, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Category deleted")
}
