package ticket

import (
	"time"

	"github.com/condo/backend/internal/domain/ticket"
)

// OpenOcorrenciaRequest opens a new occurrence ticket
type OpenOcorrenciaRequest struct {
	UnitID      string `json:"unit_id" binding:"omitempty,uuid"`
	OpenedBy    string `json:"opened_by" binding:"required,uuid"`
	Category    string `json:"category" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=2000"`
}

// ResolveOcorrenciaRequest records how a ticket was resolved
type ResolveOcorrenciaRequest struct {
	Resolution string `json:"resolution" binding:"required,max=2000"`
}

// AddCommentRequest appends a comment to a ticket
type AddCommentRequest struct {
	AuthorID string `json:"author_id" binding:"required,uuid"`
	Body     string `json:"body" binding:"required,max=2000"`
	Internal bool   `json:"internal"`
}

// ComentarioResponse is the API representation of a ticket comment
type ComentarioResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	Internal  bool      `json:"internal"`
	CreatedAt time.Time `json:"created_at"`
}

// OcorrenciaResponse is the API representation of an occurrence ticket
type OcorrenciaResponse struct {
	ID          string               `json:"id"`
	UnitID      *string              `json:"unit_id,omitempty"`
	OpenedBy    string               `json:"opened_by"`
	Category    string               `json:"category"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	AssignedTo  *string              `json:"assigned_to,omitempty"`
	Comments    []ComentarioResponse `json:"comments"`
	ResolvedAt  *time.Time           `json:"resolved_at,omitempty"`
	Resolution  string               `json:"resolution,omitempty"`
	ClosedAt    *time.Time           `json:"closed_at,omitempty"`
	ReopenCount int                  `json:"reopen_count"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OcorrenciaListFilter filters ticket listings
type OcorrenciaListFilter struct {
	UnitID     string
	Status     string
	Category   string
	AssignedTo string
	Page       int
	PageSize   int
}

func toComentarioResponses(comments []ticket.Comentario) []ComentarioResponse {
	out := make([]ComentarioResponse, len(comments))
	for i, c := range comments {
		out[i] = ComentarioResponse{
			ID:        c.ID.String(),
			AuthorID:  c.AuthorID.String(),
			Body:      c.Body,
			Internal:  c.Internal,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}

// ToOcorrenciaResponse converts a domain ticket. When staffView is
// false, internal comments are stripped.
func ToOcorrenciaResponse(o *ticket.Ocorrencia, staffView bool) *OcorrenciaResponse {
	comments := o.Comments
	if !staffView {
		comments = o.VisibleComments()
	}

	resp := &OcorrenciaResponse{
		ID:          o.ID.String(),
		OpenedBy:    o.OpenedBy.String(),
		Category:    string(o.Category),
		Title:       o.Title,
		Description: o.Description,
		Status:      string(o.Status),
		Comments:    toComentarioResponses(comments),
		ResolvedAt:  o.ResolvedAt,
		Resolution:  o.Resolution,
		ClosedAt:    o.ClosedAt,
		ReopenCount: o.ReopenCount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.UnitID != nil {
		id := o.UnitID.String()
		resp.UnitID = &id
	}
	if o.AssignedTo != nil {
		id := o.AssignedTo.String()
		resp.AssignedTo = &id
	}
	return resp
}
