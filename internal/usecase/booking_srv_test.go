package usecase

import (
	"context"
	"testing"
	"time"

	"venue-reservation/internal/data/entity"
	"venue-reservation/internal/data/repository"
	"venue-reservation/internal/dto/request"
	"venue-reservation/internal/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repository fakes. They keep entities in maps and apply the
// same status guard the SQL layer uses.

type fakeBookingRepo struct {
	bookings    map[uuid.UUID]*entity.Booking
	overlapping int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByOrderID(_ context.Context, orderID string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.OrderID == orderID {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) List(_ context.Context, status *lifecycle.Status, _, _ int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(_ context.Context, status *lifecycle.Status) (int64, error) {
	list, _ := f.List(context.Background(), status, 0, 0)
	return int64(len(list)), nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, _, _ *uuid.UUID, _, _ time.Time) (int64, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to lifecycle.Status, reason *string) error {
	b := f.bookings[id]
	if b == nil || b.Status != from {
		return nil
	}
	b.Status = to
	if reason != nil {
		b.StatusReason = reason
	}
	return nil
}

func (f *fakeBookingRepo) UpdateDownPayment(_ context.Context, id uuid.UUID, amount float64) error {
	if b := f.bookings[id]; b != nil {
		b.DownPayment = &amount
	}
	return nil
}

func (f *fakeBookingRepo) AddToAmountPaid(_ context.Context, id uuid.UUID, amount float64) error {
	if b := f.bookings[id]; b != nil {
		b.AmountPaid += amount
	}
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) SumByBookingID(_ context.Context, bookingID uuid.UUID) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			sum += p.Amount
		}
	}
	return sum, nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func (f *fakeRoomRepo) Create(_ context.Context, r *entity.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) Update(_ context.Context, r *entity.Room) error {
	f.rooms[r.ID] = r
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

type fakeAreaRepo struct {
	areas map[uuid.UUID]*entity.Area
}

func (f *fakeAreaRepo) Create(_ context.Context, a *entity.Area) error {
	f.areas[a.ID] = a
	return nil
}

func (f *fakeAreaRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Area, error) {
	return f.areas[id], nil
}

func (f *fakeAreaRepo) FindAll(_ context.Context, _, _ int) ([]*entity.Area, error) {
	var out []*entity.Area
	for _, a := range f.areas {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAreaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.areas)), nil
}

func (f *fakeAreaRepo) Update(_ context.Context, a *entity.Area) error {
	f.areas[a.ID] = a
	return nil
}

func (f *fakeAreaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.areas, id)
	return nil
}

type bookingFixture struct {
	svc      *bookingService
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
	rooms    *fakeRoomRepo
	areas    *fakeAreaRepo
}

func newBookingFixture(now time.Time) *bookingFixture {
	bookings := newFakeBookingRepo()
	payments := &fakePaymentRepo{}
	rooms := &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
	areas := &fakeAreaRepo{areas: make(map[uuid.UUID]*entity.Area)}

	repo := &repository.Repository{
		Room:    rooms,
		Area:    areas,
		Booking: bookings,
		Payment: payments,
	}

	return &bookingFixture{
		svc: &bookingService{
			repo:      repo,
			validator: lifecycle.NewValidator(),
			log:       zap.NewNop(),
			now:       func() time.Time { return now },
		},
		bookings: bookings,
		payments: payments,
		rooms:    rooms,
		areas:    areas,
	}
}

func (fx *bookingFixture) addRoom(rate float64, discounted *float64) uuid.UUID {
	id := uuid.New()
	fx.rooms.rooms[id] = &entity.Room{
		Base:           entity.Base{ID: id},
		Name:           "Deluxe 101",
		Capacity:       2,
		NightlyRate:    rate,
		DiscountedRate: discounted,
		IsActive:       true,
	}
	return id
}

func (fx *bookingFixture) addBooking(status lifecycle.Status, checkIn time.Time, total float64) *entity.Booking {
	b := &entity.Booking{
		Base:         entity.Base{ID: uuid.New()},
		OrderID:      "RSV-TEST",
		GuestName:    "Ana Silva",
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDate(0, 0, 2),
		TotalPrice:   total,
		Status:       status,
	}
	fx.bookings.bookings[b.ID] = b
	return b
}

func ptr(v float64) *float64 { return &v }

func TestCreateBooking(t *testing.T) {
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	t.Run("room booking prices by nights", func(t *testing.T) {
		fx := newBookingFixture(now)
		roomID := fx.addRoom(500, nil)
		roomStr := roomID.String()

		resp, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			RoomID:       &roomStr,
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-13",
		})
		require.NoError(t, err)
		assert.Equal(t, 1500.0, resp.TotalPrice)
		assert.Equal(t, string(lifecycle.StatusPending), resp.Status)
		assert.False(t, resp.VenueBooking)
		assert.Nil(t, resp.DiscountedTotal)
	})

	t.Run("discounted rate is snapshotted", func(t *testing.T) {
		fx := newBookingFixture(now)
		roomID := fx.addRoom(500, ptr(400))
		roomStr := roomID.String()

		resp, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			RoomID:       &roomStr,
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-12",
		})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, resp.TotalPrice)
		require.NotNil(t, resp.DiscountedTotal)
		assert.Equal(t, 800.0, *resp.DiscountedTotal)
		assert.Equal(t, 800.0, resp.Money.EffectiveTotal)
	})

	t.Run("rejects overlapping dates", func(t *testing.T) {
		fx := newBookingFixture(now)
		fx.bookings.overlapping = 1
		roomID := fx.addRoom(500, nil)
		roomStr := roomID.String()

		_, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			RoomID:       &roomStr,
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-12",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already booked")
	})

	t.Run("requires exactly one of room or area", func(t *testing.T) {
		fx := newBookingFixture(now)

		_, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-12",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "room_id or area_id")
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		fx := newBookingFixture(now)
		roomID := fx.addRoom(500, nil)
		roomStr := roomID.String()

		_, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			RoomID:       &roomStr,
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-10",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "check-out must be after check-in")
	})

	t.Run("unknown room", func(t *testing.T) {
		fx := newBookingFixture(now)
		missing := uuid.New().String()

		_, err := fx.svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
			GuestName:    "Ana Silva",
			RoomID:       &missing,
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-12",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyAction(t *testing.T) {
	operator := uuid.New().String()
	checkIn := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("reserve records down payment", func(t *testing.T) {
		now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusPending, checkIn, 1000)

		resp, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionReserve, &request.BookingActionRequest{
			Amount: ptr(600),
		})
		require.NoError(t, err)
		require.Nil(t, decision)
		require.NotNil(t, resp)

		assert.Equal(t, string(lifecycle.StatusReserved), resp.Booking.Status)
		assert.Equal(t, 600.0, resp.AmountSubmitted)
		require.NotNil(t, b.DownPayment)
		assert.Equal(t, 600.0, *b.DownPayment)

		require.Len(t, fx.payments.payments, 1)
		assert.Equal(t, entity.PaymentKindDownPayment, fx.payments.payments[0].Kind)
		assert.Equal(t, 600.0, fx.payments.payments[0].Amount)
	})

	t.Run("reserve below half is rejected without writes", func(t *testing.T) {
		now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusPending, checkIn, 1000)

		resp, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionReserve, &request.BookingActionRequest{
			Amount: ptr(499),
		})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Nil(t, resp)
		assert.Equal(t, lifecycle.ReasonAmountTooLow, decision.Code)

		assert.Equal(t, lifecycle.StatusPending, b.Status)
		assert.Nil(t, b.DownPayment)
		assert.Empty(t, fx.payments.payments)
	})

	t.Run("check-in settles remaining balance", func(t *testing.T) {
		now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusReserved, checkIn, 1000)
		b.DownPayment = ptr(600)

		resp, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionCheckIn, &request.BookingActionRequest{
			Amount: ptr(400),
		})
		require.NoError(t, err)
		require.Nil(t, decision)

		assert.Equal(t, string(lifecycle.StatusCheckedIn), resp.Booking.Status)
		assert.True(t, resp.WillCompletePayment)
		// The deposit is folded into amount_paid on the first payment.
		assert.Equal(t, 1000.0, b.AmountPaid)
		assert.True(t, resp.Booking.Money.FullyPaid)

		require.Len(t, fx.payments.payments, 1)
		assert.Equal(t, entity.PaymentKindBalance, fx.payments.payments[0].Kind)
	})

	t.Run("check-in before the date is rejected", func(t *testing.T) {
		now := time.Date(2024, time.June, 9, 15, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusReserved, checkIn, 1000)
		b.DownPayment = ptr(600)

		_, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionCheckIn, &request.BookingActionRequest{
			Amount: ptr(400),
		})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, lifecycle.ReasonNotYetCheckInDate, decision.Code)
		assert.Equal(t, lifecycle.StatusReserved, b.Status)
	})

	t.Run("cancel requires a reason and stores it", func(t *testing.T) {
		now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusReserved, checkIn, 1000)

		_, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionCancel, &request.BookingActionRequest{})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, lifecycle.ReasonReasonRequired, decision.Code)

		resp, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionCancel, &request.BookingActionRequest{
			Reason: "guest requested",
		})
		require.NoError(t, err)
		require.Nil(t, decision)
		assert.Equal(t, string(lifecycle.StatusCancelled), resp.Booking.Status)
		require.NotNil(t, b.StatusReason)
		assert.Equal(t, "guest requested", *b.StatusReason)
	})

	t.Run("record payment keeps the status", func(t *testing.T) {
		now := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusReserved, checkIn, 1000)
		b.DownPayment = ptr(500)

		resp, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionRecordPayment, &request.BookingActionRequest{
			Amount: ptr(200),
		})
		require.NoError(t, err)
		require.Nil(t, decision)
		assert.Equal(t, string(lifecycle.StatusReserved), resp.Booking.Status)
		assert.False(t, resp.WillCompletePayment)
		assert.Equal(t, 700.0, b.AmountPaid)
		assert.Equal(t, 300.0, resp.Booking.Money.RemainingBalance)
	})

	t.Run("action on terminal booking is an invalid transition", func(t *testing.T) {
		now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)
		b := fx.addBooking(lifecycle.StatusCancelled, checkIn, 1000)

		_, decision, err := fx.svc.ApplyAction(context.Background(), operator, b.ID.String(), lifecycle.ActionCheckIn, &request.BookingActionRequest{})
		require.NoError(t, err)
		require.NotNil(t, decision)
		assert.Equal(t, lifecycle.ReasonInvalidTransition, decision.Code)
		assert.Equal(t, lifecycle.StatusCancelled, b.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
		fx := newBookingFixture(now)

		_, _, err := fx.svc.ApplyAction(context.Background(), operator, uuid.New().String(), lifecycle.ActionCancel, &request.BookingActionRequest{
			Reason: "whatever",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestGetBookingActions(t *testing.T) {
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	fx := newBookingFixture(now)
	b := fx.addBooking(lifecycle.StatusReserved, checkIn, 1000)
	b.DownPayment = ptr(600)

	resp, err := fx.svc.GetBookingActions(context.Background(), b.ID.String())
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusReserved), resp.Status)
	assert.ElementsMatch(t, []string{
		string(lifecycle.ActionCheckIn),
		string(lifecycle.ActionCancel),
		string(lifecycle.ActionMarkNoShow),
		string(lifecycle.ActionRecordPayment),
	}, resp.Actions)
	assert.Equal(t, 400.0, resp.Money.RemainingBalance)
}
