package models

import "time"

// Timestamps holds the standard creation/update columns shared by most tables.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
