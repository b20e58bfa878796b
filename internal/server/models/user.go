// Package models defines the persisted entities of the posting service.
package models

import "time"

// User is a registered identity. Password holds the bcrypt digest, never the
// raw secret. ID and CreatedAt are assigned by the database on insert.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}
