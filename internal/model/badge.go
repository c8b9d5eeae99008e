package model

// BadgeID uniquely identifies an achievement badge
type BadgeID string

// Badge describes an achievement. The unlock rules live in the badges
// service catalog; badges themselves are irrevocable once granted.
type Badge struct {
	ID          BadgeID `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Criteria    string  `json:"criteria,omitempty"`
}
