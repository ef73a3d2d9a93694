package repository

import (
	"context"
	"fmt"
	"time"

	"venue-reservation/internal/data/entity"
	"venue-reservation/internal/lifecycle"
	"venue-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	List(ctx context.Context, status *lifecycle.Status, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status *lifecycle.Status) (int64, error)

	// Business queries
	CountOverlapping(ctx context.Context, roomID, areaID *uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to lifecycle.Status, reason *string) error
	UpdateDownPayment(ctx context.Context, bookingID uuid.UUID, amount float64) error
	AddToAmountPaid(ctx context.Context, bookingID uuid.UUID, amount float64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, guest_name, guest_phone, room_id, area_id,
		check_in_date, check_out_date, total_price, discounted_total,
		down_payment, amount_paid, status, status_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.GuestName,
		&booking.GuestPhone,
		&booking.RoomID,
		&booking.AreaID,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.TotalPrice,
		&booking.DiscountedTotal,
		&booking.DownPayment,
		&booking.AmountPaid,
		&booking.Status,
		&booking.StatusReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_id, guest_name, guest_phone, room_id, area_id,
		                      check_in_date, check_out_date, total_price, discounted_total,
		                      down_payment, amount_paid, status, status_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.GuestName,
		booking.GuestPhone,
		booking.RoomID,
		booking.AreaID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.TotalPrice,
		booking.DiscountedTotal,
		booking.DownPayment,
		booking.AmountPaid,
		booking.Status,
		booking.StatusReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("guest_name", booking.GuestName),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE order_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, status *lifecycle.Status, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, status *lifecycle.Status) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// CountOverlapping counts non-terminal bookings for the same room or area
// whose date range intersects [checkIn, checkOut).
func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID, areaID *uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE status IN ('pending', 'reserved', 'checked_in')
		  AND (($1::uuid IS NOT NULL AND room_id = $1) OR ($2::uuid IS NOT NULL AND area_id = $2))
		  AND check_in_date < $4
		  AND check_out_date > $3
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID, areaID, checkIn, checkOut).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return 0, fmt.Errorf("count overlapping bookings: %w", err)
	}

	return count, nil
}

// UpdateStatus moves a booking between statuses. The expected current
// status guards the UPDATE so two admins racing on the same booking
// cannot both win.
func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to lifecycle.Status, reason *string) error {
	query := `
		UPDATE bookings
		SET status = $3, status_reason = COALESCE($4, status_reason), updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, bookingID, from, to, reason)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(to)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(to), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is no longer %s", bookingID.String(), string(from))
	}

	return nil
}

func (r *bookingRepository) UpdateDownPayment(ctx context.Context, bookingID uuid.UUID, amount float64) error {
	query := `UPDATE bookings SET down_payment = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, amount)
	if err != nil {
		r.log.Error("Failed to update down payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("update booking %s down payment: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

// AddToAmountPaid accumulates a recorded payment into the booking's
// cumulative paid amount. Amounts only ever move upward.
func (r *bookingRepository) AddToAmountPaid(ctx context.Context, bookingID uuid.UUID, amount float64) error {
	query := `UPDATE bookings SET amount_paid = amount_paid + $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, amount)
	if err != nil {
		r.log.Error("Failed to add to amount paid",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("add payment to booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
