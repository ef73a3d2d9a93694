package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"venue-reservation/internal/dto/request"
	"venue-reservation/internal/lifecycle"
	"venue-reservation/internal/usecase"
	"venue-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/admin/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookings handles GET /api/admin/bookings (protected)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)
	status := r.URL.Query().Get("status")

	bookings, err := h.service.GetBookings(r.Context(), status, req)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/admin/bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetBookingActions handles GET /api/admin/bookings/{id}/actions (protected)
func (h *BookingHandler) GetBookingActions(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	actions, err := h.service.GetBookingActions(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking actions")
		return
	}

	utils.ResponseSuccess(w, "success", actions)
}

// GetBookingPayments handles GET /api/admin/bookings/{id}/payments (protected)
func (h *BookingHandler) GetBookingPayments(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	payments, err := h.service.GetBookingPayments(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// Lifecycle action endpoints (protected):
//
//	POST /api/admin/bookings/{id}/reserve
//	POST /api/admin/bookings/{id}/check-in
//	POST /api/admin/bookings/{id}/check-out
//	POST /api/admin/bookings/{id}/cancel
//	POST /api/admin/bookings/{id}/reject
//	POST /api/admin/bookings/{id}/no-show
//	POST /api/admin/bookings/{id}/payments

func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionReserve)
}

func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionCheckIn)
}

func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionCheckOut)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionCancel)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionReject)
}

func (h *BookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionMarkNoShow)
}

func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	h.applyAction(w, r, lifecycle.ActionRecordPayment)
}

func (h *BookingHandler) applyAction(w http.ResponseWriter, r *http.Request, action lifecycle.Action) {
	operatorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")

	// Some actions need no input, an empty body is fine.
	var req request.BookingActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, decision, err := h.service.ApplyAction(r.Context(), operatorID.String(), bookingID, action, &req)
	if err != nil {
		h.handleServiceError(w, err, string(action))
		return
	}

	// Engine rejection: the transition is refused, nothing was written.
	if decision != nil {
		utils.ResponseJSON(w, http.StatusUnprocessableEntity, false, decision.Message, nil, map[string]string{
			"code": string(decision.Code),
		})
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// handleServiceError handles errors untuk booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - dates unavailable",
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
