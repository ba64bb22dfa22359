package communication

import (
	"time"

	"github.com/condo/backend/internal/domain/communication"
)

// CreateAvisoRequest drafts a new notice
type CreateAvisoRequest struct {
	AuthorID string `json:"author_id" binding:"required,uuid"`
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=5000"`
	Priority string `json:"priority" binding:"omitempty,oneof=NORMAL URGENT"`
}

// PublishAvisoRequest publishes a drafted notice
type PublishAvisoRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}

// AvisoResponse is the API representation of a notice
type AvisoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AvisoListFilter filters notice listings
type AvisoListFilter struct {
	Status      string
	VisibleOnly bool
	Page        int
	PageSize    int
}

// ToAvisoResponse converts a domain notice
func ToAvisoResponse(a *communication.Aviso) *AvisoResponse {
	return &AvisoResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Body:        a.Body,
		Priority:    string(a.Priority),
		Status:      string(a.Status),
		PublishedAt: a.PublishedAt,
		ExpiresAt:   a.ExpiresAt,
		ArchivedAt:  a.ArchivedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// CreateEnqueteRequest opens a new poll
type CreateEnqueteRequest struct {
	AuthorID string    `json:"author_id" binding:"required,uuid"`
	Question string    `json:"question" binding:"required,max=500"`
	Options  []string  `json:"options" binding:"required,min=2"`
	OpensAt  time.Time `json:"opens_at" binding:"required"`
	ClosesAt time.Time `json:"closes_at" binding:"required"`
}

// CastVoteRequest records a unit's vote
type CastVoteRequest struct {
	UnitID   string `json:"unit_id" binding:"required,uuid"`
	UserID   string `json:"user_id" binding:"required,uuid"`
	OptionID int    `json:"option_id" binding:"required,min=1"`
}

// EnqueteOptionResponse is a poll option with its tally
type EnqueteOptionResponse struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

// EnqueteResponse is the API representation of a poll
type EnqueteResponse struct {
	ID         string                  `json:"id"`
	Question   string                  `json:"question"`
	Options    []EnqueteOptionResponse `json:"options"`
	Status     string                  `json:"status"`
	TotalVotes int                     `json:"total_votes"`
	OpensAt    time.Time               `json:"opens_at"`
	ClosesAt   time.Time               `json:"closes_at"`
	ClosedAt   *time.Time              `json:"closed_at,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

// EnqueteListFilter filters poll listings
type EnqueteListFilter struct {
	Status   string
	Page     int
	PageSize int
}

// ToEnqueteResponse converts a domain poll with per-option tallies
func ToEnqueteResponse(e *communication.Enquete) *EnqueteResponse {
	results := e.Results()
	options := make([]EnqueteOptionResponse, len(e.Options))
	total := 0
	for i, opt := range e.Options {
		count := results[opt.ID]
		options[i] = EnqueteOptionResponse{ID: opt.ID, Label: opt.Label, Votes: count}
		total += count
	}

	return &EnqueteResponse{
		ID:         e.ID.String(),
		Question:   e.Question,
		Options:    options,
		Status:     string(e.Status),
		TotalVotes: total,
		OpensAt:    e.OpensAt,
		ClosesAt:   e.ClosesAt,
		ClosedAt:   e.ClosedAt,
		CreatedAt:  e.CreatedAt,
	}
}
