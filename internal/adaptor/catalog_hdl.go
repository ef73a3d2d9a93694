package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"venue-reservation/internal/dto/request"
	"venue-reservation/internal/usecase"
	"venue-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== ROOMS ====================

// CreateRoom handles POST /api/admin/rooms (admin)
func (h *CatalogHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// GetRooms handles GET /api/admin/rooms (admin)
func (h *CatalogHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	rooms, err := h.service.GetRooms(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoom handles GET /api/admin/rooms/{id} (admin)
func (h *CatalogHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin)
func (h *CatalogHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin)
func (h *CatalogHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== AREAS ====================

// CreateArea handles POST /api/admin/areas (admin)
func (h *CatalogHandler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req request.AreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	area, err := h.service.CreateArea(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create area")
		return
	}

	utils.ResponseCreated(w, "success", area)
}

// GetAreas handles GET /api/admin/areas (admin)
func (h *CatalogHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	areas, err := h.service.GetAreas(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get areas")
		return
	}

	utils.ResponseSuccess(w, "success", areas)
}

// GetArea handles GET /api/admin/areas/{id} (admin)
func (h *CatalogHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")

	area, err := h.service.GetAreaByID(r.Context(), areaID)
	if err != nil {
		h.handleServiceError(w, err, "get area")
		return
	}

	utils.ResponseSuccess(w, "success", area)
}

// UpdateArea handles PUT /api/admin/areas/{id} (admin)
func (h *CatalogHandler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")

	var req request.AreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	area, err := h.service.UpdateArea(r.Context(), areaID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update area")
		return
	}

	utils.ResponseSuccess(w, "success", area)
}

// DeleteArea handles DELETE /api/admin/areas/{id} (admin)
func (h *CatalogHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	areaID := chi.URLParam(r, "id")

	if err := h.service.DeleteArea(r.Context(), areaID); err != nil {
		h.handleServiceError(w, err, "delete area")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// handleServiceError handles errors untuk catalog operations
func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Failed to "+operation)
	}
}
