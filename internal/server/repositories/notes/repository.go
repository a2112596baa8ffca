package notes

import (
	"context"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// Repository persists notes and serves the ownership-filtered listing.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Note, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
