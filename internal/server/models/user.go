// Package models defines the persistent entities of the NoteKeeper server
// and the validation rules that run on every write.
package models

import "time"

// User is an account that owns notes.
//
// The password hash is deliberately not a field here: it travels through the
// users repository as an explicit separate value, so no serialization of a
// User can ever include it and no getter exists to read it back. Accidental
// exposure is a compile error, not a runtime check.
type User struct {
	ID        int64
	Username  string
	ImageURL  string
	Bio       string
	CreatedAt time.Time
}
