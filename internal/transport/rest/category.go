package rest

import (
	"errors"
	"fmt"
	"net/http"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/andrerobles/backoffice/internal/service"
	"github.com/andrerobles/backoffice/pkg/web"
)

// ListCategories returns all categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.categories.FindAll(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving category list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindCategoryByID retrieves a category by its ID.
func (h *Handler) FindCategoryByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	found, err := h.categories.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, berrors.ErrCategoryNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving category", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve category with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateCategory handles the creation of a new category.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	dto, ok := decodeValid[service.CategoryCreateDto](h, w, r, mLogger)
	if !ok {
		return
	}
	created, err := h.categories.Create(r.Context(), dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating category", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create category")
		return
	}
	mLogger.InfoContext(r.Context(), "Category created successfully", "ID", created.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateCategory merges the supplied fields into an existing category.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	dto, ok := decodeValid[service.CategoryUpdateDto](h, w, r, mLogger)
	if !ok {
		return
	}
	updated, err := h.categories.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, berrors.ErrCategoryNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating category", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update category with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Category updated successfully", "ID", updated.ID)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteCategory removes a category. Referencing products are left untouched.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, berrors.ErrCategoryNotFound) {
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Category with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting category", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete category with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Category deleted successfully", "ID", id)
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}
