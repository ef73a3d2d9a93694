package request

type RoomRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Capacity       int      `json:"capacity" validate:"required,min=1"`
	NightlyRate    float64  `json:"nightly_rate" validate:"required,min=0"`
	DiscountedRate *float64 `json:"discounted_rate,omitempty" validate:"omitempty,min=0"`
	Amenities      []string `json:"amenities,omitempty" validate:"omitempty,dive,min=1,max=50"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

type AreaRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Capacity       int      `json:"capacity" validate:"required,min=1"`
	DailyRate      float64  `json:"daily_rate" validate:"required,min=0"`
	DiscountedRate *float64 `json:"discounted_rate,omitempty" validate:"omitempty,min=0"`
	Amenities      []string `json:"amenities,omitempty" validate:"omitempty,dive,min=1,max=50"`
	IsActive       *bool    `json:"is_active,omitempty"`
}
