package users

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// Repository persists user accounts. The password hash is never a field on
// models.User: it enters through Create and leaves only through the second
// return value of GetByUsername, on the login path.
type Repository interface {
	Create(ctx context.Context, user *models.User, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
