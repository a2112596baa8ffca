package httpapi

import (
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
)

// credentialsRequest is the body of POST /signup and POST /login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// noteRequest is the body of POST /notes.
type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// userJSON is the public user representation. The password hash has no
// field here and none exists on models.User either, so it cannot leak.
type userJSON struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type noteJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      userJSON  `json:"user"`
}

type pageJSON struct {
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	Total      int64      `json:"total"`
	TotalPages int64      `json:"total_pages"`
	Items      []noteJSON `json:"items"`
}

func newUserJSON(u *models.User) userJSON {
	return userJSON{ID: u.ID, Username: u.Username, ImageURL: u.ImageURL, Bio: u.Bio}
}

func newNoteJSON(n *models.Note, owner *models.User) noteJSON {
	return noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		User:      newUserJSON(owner),
	}
}

func newPageJSON(p *services.Page, owner *models.User) pageJSON {
	items := make([]noteJSON, 0, len(p.Items))
	for _, n := range p.Items {
		items = append(items, newNoteJSON(n, owner))
	}
	return pageJSON{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Items:      items,
	}
}
