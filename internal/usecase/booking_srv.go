package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"venue-reservation/internal/data/entity"
	"venue-reservation/internal/data/repository"
	"venue-reservation/internal/dto/request"
	"venue-reservation/internal/dto/response"
	"venue-reservation/internal/lifecycle"
	"venue-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	GetBookingActions(ctx context.Context, bookingID string) (*response.BookingActionsResponse, error)
	GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)

	// ApplyAction runs one lifecycle action through the rules engine and,
	// when authorized, persists the transition. A non-nil Decision return
	// is an engine rejection: expected, operator-correctable, not an error.
	ApplyAction(ctx context.Context, operatorID, bookingID string, action lifecycle.Action, req *request.BookingActionRequest) (*response.TransitionResponse, *lifecycle.Decision, error)
}

type bookingService struct {
	repo      *repository.Repository
	validator *lifecycle.Validator
	log       *zap.Logger
	now       func() time.Time // injectable for tests
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	validator := lifecycle.NewValidator()
	if config != nil && config.Booking.CheckInHour > 0 {
		validator.CheckInHour = config.Booking.CheckInHour
	}

	return &bookingService{
		repo:      repo,
		validator: validator,
		log:       log.With(zap.String("service", "booking")),
		now:       time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if (req.RoomID == nil) == (req.AreaID == nil) {
		return nil, fmt.Errorf("validation failed: exactly one of room_id or area_id is required")
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %s: %w", req.CheckInDate, err)
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %s: %w", req.CheckOutDate, err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("invalid dates: check-out must be after check-in")
	}

	days := int(math.Round(checkOut.Sub(checkIn).Hours() / 24))

	var roomID, areaID *uuid.UUID
	var rate float64
	var discountedRate *float64

	if req.RoomID != nil {
		id, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room ID format %s: %w", *req.RoomID, err)
		}
		room, err := s.repo.Room.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find room: %w", err)
		}
		if room == nil || !room.IsActive {
			return nil, fmt.Errorf("room %s not found", *req.RoomID)
		}
		roomID = &id
		rate = room.NightlyRate
		discountedRate = room.DiscountedRate
	} else {
		id, err := uuid.Parse(*req.AreaID)
		if err != nil {
			return nil, fmt.Errorf("invalid area ID format %s: %w", *req.AreaID, err)
		}
		area, err := s.repo.Area.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("find area: %w", err)
		}
		if area == nil || !area.IsActive {
			return nil, fmt.Errorf("area %s not found", *req.AreaID)
		}
		areaID = &id
		rate = area.DailyRate
		discountedRate = area.DiscountedRate
	}

	// Check date availability
	overlapping, err := s.repo.Booking.CountOverlapping(ctx, roomID, areaID, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to check availability", zap.Error(err))
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if overlapping > 0 {
		return nil, fmt.Errorf("already booked for the selected dates")
	}

	totalPrice := rate * float64(days)

	// Snapshot the active discounted rate so later rate edits do not
	// retroactively change this booking's price.
	var discountedTotal *float64
	if discountedRate != nil {
		total := *discountedRate * float64(days)
		discountedTotal = &total
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:         utils.GenerateOrderID(),
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		RoomID:          roomID,
		AreaID:          areaID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalPrice:      totalPrice,
		DiscountedTotal: discountedTotal,
		Status:          lifecycle.StatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("guest_name", req.GuestName),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("guest_name", booking.GuestName),
		zap.Bool("venue_booking", booking.IsVenueBooking()),
		zap.Float64("total_price", totalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	var statusFilter *lifecycle.Status
	if status != "" {
		parsed, err := lifecycle.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("invalid status filter %s: %w", status, err)
		}
		statusFilter = &parsed
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.List(ctx, statusFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingActions(ctx context.Context, bookingID string) (*response.BookingActionsResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	snapshot := booking.Snapshot()
	actions := s.validator.AvailableActions(snapshot)
	actionNames := make([]string, len(actions))
	for i, a := range actions {
		actionNames[i] = string(a)
	}

	return &response.BookingActionsResponse{
		BookingID: booking.ID.String(),
		Status:    string(booking.Status),
		Actions:   actionNames,
		Money:     lifecycle.Resolve(snapshot),
	}, nil
}

func (s *bookingService) GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		paymentResponses[i] = response.PaymentToResponse(p)
	}
	return paymentResponses, nil
}

func (s *bookingService) ApplyAction(ctx context.Context, operatorID, bookingID string, action lifecycle.Action, req *request.BookingActionRequest) (*response.TransitionResponse, *lifecycle.Decision, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking action validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	operatorUUID, err := uuid.Parse(operatorID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid operator ID format %s: %w", operatorID, err)
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}

	decision := s.validator.Validate(booking.Snapshot(), lifecycle.TransitionRequest{
		Action: action,
		Amount: req.Amount,
		Reason: req.Reason,
		Now:    s.now(),
	})

	if !decision.Authorized {
		s.log.Warn("Booking action rejected",
			zap.String("booking_id", booking.ID.String()),
			zap.String("action", string(action)),
			zap.String("code", string(decision.Code)),
		)
		return nil, &decision, nil
	}

	if err := s.persistDecision(ctx, booking, action, &decision, req, operatorUUID); err != nil {
		return nil, nil, err
	}

	// Re-read so the response reflects the committed state.
	updated, err := s.repo.Booking.FindByID(ctx, booking.ID)
	if err != nil || updated == nil {
		s.log.Error("Failed to reload booking after action",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, nil, fmt.Errorf("reload booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking action applied",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("action", string(action)),
		zap.String("status", string(updated.Status)),
		zap.Float64("amount", decision.Amount),
	)

	return &response.TransitionResponse{
		Booking:             response.BookingToResponse(updated),
		AmountSubmitted:     decision.Amount,
		WillCompletePayment: decision.WillCompletePayment,
	}, nil, nil
}

// persistDecision commits an authorized decision: the status move, the
// money fields, and a payment row when money changed hands.
func (s *bookingService) persistDecision(ctx context.Context, booking *entity.Booking, action lifecycle.Action, decision *lifecycle.Decision, req *request.BookingActionRequest, operatorID uuid.UUID) error {
	if decision.NextStatus != booking.Status {
		var reason *string
		if action == lifecycle.ActionCancel || action == lifecycle.ActionReject {
			reason = &req.Reason
		}
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status, decision.NextStatus, reason); err != nil {
			s.log.Error("Failed to update booking status",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("action", string(action)),
			)
			return fmt.Errorf("apply %s to booking %s: %w", string(action), booking.ID.String(), err)
		}
	}

	if decision.Amount <= 0 {
		return nil
	}

	kind := entity.PaymentKindBalance
	switch action {
	case lifecycle.ActionReserve:
		kind = entity.PaymentKindDownPayment
		if err := s.repo.Booking.UpdateDownPayment(ctx, booking.ID, decision.Amount); err != nil {
			return fmt.Errorf("record down payment for booking %s: %w", booking.ID.String(), err)
		}
	case lifecycle.ActionCheckIn, lifecycle.ActionRecordPayment:
		increment := decision.Amount
		// amount_paid is the reconciled cumulative figure. While it is
		// still zero the deposit stands in for it, so the first payment
		// folds the deposit in to keep the running total accurate.
		if booking.AmountPaid <= 0 && booking.DownPayment != nil && *booking.DownPayment > 0 {
			increment += *booking.DownPayment
		}
		if err := s.repo.Booking.AddToAmountPaid(ctx, booking.ID, increment); err != nil {
			return fmt.Errorf("record payment for booking %s: %w", booking.ID.String(), err)
		}
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		BookingID:  booking.ID,
		Amount:     decision.Amount,
		Kind:       kind,
		Method:     req.Method,
		RecordedBy: operatorID,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		// The booking totals are already updated; the detailed payment
		// row is an audit record, so log and continue.
		s.log.Error("Failed to create payment record",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	}

	return nil
}

func (s *bookingService) loadBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, nil
}
