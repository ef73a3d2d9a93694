package response

import (
	"time"

	"venue-reservation/internal/data/entity"
)

type RoomResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Capacity       int       `json:"capacity"`
	NightlyRate    float64   `json:"nightly_rate"`
	DiscountedRate *float64  `json:"discounted_rate,omitempty"`
	Amenities      []string  `json:"amenities"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		Description:    r.Description,
		Capacity:       r.Capacity,
		NightlyRate:    r.NightlyRate,
		DiscountedRate: r.DiscountedRate,
		Amenities:      r.Amenities,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
	}
}

type AreaResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Capacity       int       `json:"capacity"`
	DailyRate      float64   `json:"daily_rate"`
	DiscountedRate *float64  `json:"discounted_rate,omitempty"`
	Amenities      []string  `json:"amenities"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func AreaToResponse(a *entity.Area) AreaResponse {
	return AreaResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Description:    a.Description,
		Capacity:       a.Capacity,
		DailyRate:      a.DailyRate,
		DiscountedRate: a.DiscountedRate,
		Amenities:      a.Amenities,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
	}
}
