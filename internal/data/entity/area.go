package entity

// Area is a bookable event space (function hall, garden, pavilion).
// Rates are per day rather than per night.
type Area struct {
	Base
	Name           string   `db:"name"`
	Description    *string  `db:"description"`
	Capacity       int      `db:"capacity"`
	DailyRate      float64  `db:"daily_rate"`
	DiscountedRate *float64 `db:"discounted_rate"`
	Amenities      []string `db:"amenities"`
	IsActive       bool     `db:"is_active"`
}
