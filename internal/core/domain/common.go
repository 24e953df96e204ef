package domain

import "time"

// Timestamps holds the creation and update times maintained for stored entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
