package handlers

import (
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils/response"
	"github.com/Chimelu/hafak-surgicals-backend/internal/validation"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validation.Validator
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, validator: validation.New()}
}

func (h *CategoryHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, categories, len(categories), nil)
	}
}

func (h *CategoryHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Category")
		if err != nil {
			writeError(w, r, err)
			return
		}

		category, err := h.categoryService.GetCategory(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

func (h *CategoryHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := validate(r.Context(), h.validator, &req, false); err != nil {
			writeError(w, r, err)
			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusCreated, category)
	}
}

func (h *CategoryHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Category")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.UpdateCategoryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := validate(r.Context(), h.validator, &req, false); err != nil {
			writeError(w, r, err)
			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

func (h *CategoryHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Category")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		response.Message(w, http.StatusOK, "Category deleted successfully")
	}
}

// for eg: GET /api/categories/{id}/equipment?page=2&limit=10
func (h *CategoryHandler) Equipment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Category")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var params query.PageParams
		if err := decodeQuery(r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		page, err := h.categoryService.ListCategoryEquipment(r.Context(), id, params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, page)
	}
}

func (h *CategoryHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.categoryService.CategoryStats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, stats, len(stats), nil)
	}
}
