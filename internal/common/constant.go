// Package common contains shared constants and sentinel errors used across
// NoteKeeper components.
package common

// SessionKeyPrefix is the redis key prefix under which session tokens are
// stored (session:<token> -> user id).
const SessionKeyPrefix = "session:"
