package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

const (
	// DefaultPerPage is the page size used when the caller does not ask
	// for one.
	DefaultPerPage = 10
	// MaxPerPage caps the page size; larger requests are clamped, not
	// rejected.
	MaxPerPage = 50
)

// Page is one slice of a user's notes plus the pagination bookkeeping the
// listing endpoint returns.
type Page struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int64
	Items      []*models.Note
}

// NoteService provides the ownership-filtered note operations: paginated
// listing, creation, and the owner check.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService using repositories.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// clampPerPage silently forces perPage into [1, MaxPerPage]; zero and
// negative values raise to 1, oversized values cap at MaxPerPage.
func clampPerPage(perPage int) int {
	if perPage < 1 {
		return 1
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// List returns the requested page of the user's notes, newest first.
// Out-of-range pagination input is clamped, never an error.
func (s *NoteService) List(ctx context.Context, userID int64, page, perPage int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	perPage = clampPerPage(perPage)

	repo := s.repomanager.Notes(s.db)

	total, err := repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting notes: %w", err)
	}

	items, err := repo.ListByUser(ctx, userID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	return &Page{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + int64(perPage) - 1) / int64(perPage),
		Items:      items,
	}, nil
}

// Create validates and trims the input, then persists a note owned by
// userID inside a transaction. Validation failures persist nothing.
func (s *NoteService) Create(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	title, content, err := models.ValidateNote(title, content)
	if err != nil {
		return nil, err
	}

	var note *models.Note
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)
		var createErr error
		note, createErr = repo.Create(ctx, &models.Note{UserID: userID, Title: title, Content: content})
		return createErr
	}); err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	return note, nil
}

// RequireOwner verifies that the note belongs to userID. A note owned by
// someone else yields common.ErrorForbidden, while ErrorUnauthorized is
// reserved for requests with no identity at all.
func (s *NoteService) RequireOwner(ctx context.Context, noteID, userID int64) error {
	repo := s.repomanager.Notes(s.db)

	note, err := repo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	if note.UserID != userID {
		return common.ErrorForbidden
	}
	return nil
}
