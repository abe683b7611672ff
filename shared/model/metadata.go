package model

import "time"

// Metadata holds the server-assigned timestamps. Both columns are filled by
// database defaults, so they are never part of an insert.
type Metadata struct {
	CreatedAt time.Time `db:"created_at" readonly:"true" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" readonly:"true" json:"updated_at"`
}
