package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/Chimelu/hafak-surgicals-backend/internal/query"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils/response"
	"github.com/Chimelu/hafak-surgicals-backend/internal/validation"
)

type EquipmentHandler struct {
	equipmentService service.EquipmentService
	validator        *validation.Validator
}

func NewEquipmentHandler(equipmentService service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentService: equipmentService, validator: validation.New()}
}

// for eg: GET /api/equipment/public?page=1&limit=12&search=scalpel&category=Surgical%20Instruments
func (h *EquipmentHandler) ListPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var params query.PublicParams
		if err := decodeQuery(r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		items, pagination, err := h.equipmentService.ListPublicEquipment(r.Context(), params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, items, len(items), &pagination)
	}
}

func (h *EquipmentHandler) Featured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var params query.FeaturedParams
		if err := decodeQuery(r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		items, err := h.equipmentService.FeaturedEquipment(r.Context(), params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, items, len(items), nil)
	}
}

func (h *EquipmentHandler) GetPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Equipment")
		if err != nil {
			writeError(w, r, err)
			return
		}

		equipment, err := h.equipmentService.GetPublicEquipment(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, equipment)
	}
}

// for eg: GET /api/equipment/search?q=stethoscope&limit=20
func (h *EquipmentHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var params query.SearchParams
		if err := decodeQuery(r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		items, err := h.equipmentService.SearchEquipment(r.Context(), params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, items, len(items), nil)
	}
}

func (h *EquipmentHandler) PublicCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.equipmentService.PublicCategories(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// for eg: GET /api/equipment?page=1&limit=10&categoryId=<uuid>&availability=In%20Stock
func (h *EquipmentHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var params query.AdminParams
		if err := decodeQuery(r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		items, pagination, err := h.equipmentService.ListEquipment(r.Context(), params)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.List(w, items, len(items), &pagination)
	}
}

func (h *EquipmentHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Equipment")
		if err != nil {
			writeError(w, r, err)
			return
		}

		equipment, err := h.equipmentService.GetEquipment(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, equipment)
	}
}

// Create accepts JSON, or a multipart form whose file parts are images.
func (h *EquipmentHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.CreateEquipmentRequest

		files, err := decodePayload(r, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := validate(r.Context(), h.validator, &req, true); err != nil {
			writeError(w, r, err)
			return
		}

		equipment, err := h.equipmentService.CreateEquipment(r.Context(), &req, files)
		if err != nil {
			writeError(w, r, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Equipment created successfully", slog.String("equipmentId", equipment.ID.String()))
		response.Success(w, http.StatusCreated, equipment)
	}
}

// Update takes the replacement image from the "image" part only.
func (h *EquipmentHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Equipment")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req models.UpdateEquipmentRequest

		files, err := decodePayload(r, &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := validate(r.Context(), h.validator, &req, false); err != nil {
			writeError(w, r, err)
			return
		}

		equipment, err := h.equipmentService.UpdateEquipment(r.Context(), id, &req, imagePart(files))
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, equipment)
	}
}

func (h *EquipmentHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := pathID(r, "Equipment")
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := h.equipmentService.DeleteEquipment(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		response.Message(w, http.StatusOK, "Equipment deleted successfully")
	}
}

func (h *EquipmentHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.equipmentService.EquipmentStats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

func (h *EquipmentHandler) TestUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !isMultipart(r) {
			writeError(w, r, uploadMissing())
			return
		}

		var discard struct{}

		files, err := decodePayload(r, &discard)
		if err != nil {
			writeError(w, r, err)
			return
		}

		image, err := h.equipmentService.TestUpload(r.Context(), files)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.SuccessWithMessage(w, http.StatusOK, "Image uploaded successfully", image)
	}
}

func uploadMissing() error {
	return appErrors.BadRequestError(service.MessageNoImage)
}

func imagePart(files []*media.File) *media.File {
	for _, file := range files {
		if file.FieldName == "image" {
			return file
		}
	}

	return nil
}
