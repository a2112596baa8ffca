// Package session maps opaque client-held tokens to authenticated user ids.
// Tokens are random and carry no information themselves; the mapping lives
// server-side with a TTL.
package session

import "context"

// Manager is the session lifecycle: create on signup/login, read on every
// authenticated request, destroy on logout. A missing or expired token is
// reported as common.ErrorUnauthorized.
type Manager interface {
	Create(ctx context.Context, userID int64) (string, error)
	Get(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
	Close() error
}
