package domain

import "time"

// Timestamps carries the creation/update instants common to every persisted row.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}
