package entity

type Room struct {
	Base
	Name           string   `db:"name"`
	Description    *string  `db:"description"`
	Capacity       int      `db:"capacity"`
	NightlyRate    float64  `db:"nightly_rate"`
	DiscountedRate *float64 `db:"discounted_rate"`
	Amenities      []string `db:"amenities"`
	IsActive       bool     `db:"is_active"`
}
