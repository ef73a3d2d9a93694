package wire

import (
	"venue-reservation/internal/adaptor"
	"venue-reservation/internal/data/repository"
	"venue-reservation/pkg/middleware"
	"venue-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Booking management is operator-facing; every route needs a session.
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/admin/bookings - Register a walk-in or phone booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/admin/bookings - List bookings, optional ?status= filter
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/admin/bookings/{id} - Booking details with money state
		r.Get("/{id}", bookingHandler.GetBooking)

		// GET /api/admin/bookings/{id}/actions - Actions the lifecycle permits
		r.Get("/{id}/actions", bookingHandler.GetBookingActions)

		// GET /api/admin/bookings/{id}/payments - Payment history
		r.Get("/{id}/payments", bookingHandler.GetBookingPayments)

		// Lifecycle transitions
		r.Post("/{id}/reserve", bookingHandler.Reserve)
		r.Post("/{id}/check-in", bookingHandler.CheckIn)
		r.Post("/{id}/check-out", bookingHandler.CheckOut)
		r.Post("/{id}/cancel", bookingHandler.Cancel)
		r.Post("/{id}/reject", bookingHandler.Reject)
		r.Post("/{id}/no-show", bookingHandler.MarkNoShow)

		// POST /api/admin/bookings/{id}/payments - Record a payment
		r.Post("/{id}/payments", bookingHandler.RecordPayment)
	})
}
