package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OcorrenciaStatus represents the status of an occurrence ticket
type OcorrenciaStatus string

const (
	OcorrenciaStatusOpen       OcorrenciaStatus = "OPEN"
	OcorrenciaStatusInProgress OcorrenciaStatus = "IN_PROGRESS"
	OcorrenciaStatusResolved   OcorrenciaStatus = "RESOLVED"
	OcorrenciaStatusClosed     OcorrenciaStatus = "CLOSED"
)

// IsValid checks if the status is valid
func (s OcorrenciaStatus) IsValid() bool {
	switch s {
	case OcorrenciaStatusOpen, OcorrenciaStatusInProgress, OcorrenciaStatusResolved, OcorrenciaStatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether the ticket accepts no further transition
func (s OcorrenciaStatus) IsTerminal() bool {
	return s == OcorrenciaStatusClosed
}

// OcorrenciaCategory classifies the occurrence
type OcorrenciaCategory string

const (
	CategoryMaintenance OcorrenciaCategory = "MAINTENANCE"
	CategoryNoise       OcorrenciaCategory = "NOISE"
	CategorySecurity    OcorrenciaCategory = "SECURITY"
	CategoryCleaning    OcorrenciaCategory = "CLEANING"
	CategoryOther       OcorrenciaCategory = "OTHER"
)

// IsValid checks if the category is valid
func (c OcorrenciaCategory) IsValid() bool {
	switch c {
	case CategoryMaintenance, CategoryNoise, CategorySecurity, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

// Comentario is a follow-up comment on an occurrence
type Comentario struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	Internal  bool      `json:"internal"` // visible only to the sindico and staff
	CreatedAt time.Time `json:"created_at"`
}

// Ocorrencia is an occurrence ticket opened by a resident: a
// maintenance request, a noise complaint, and so on. The sindico works
// the ticket through open, in progress, resolved and closed.
type Ocorrencia struct {
	shared.CondoAggregateRoot
	UnitID      *uuid.UUID         `json:"unit_id"` // nil for common-area reports by staff
	OpenedBy    uuid.UUID          `json:"opened_by"`
	Category    OcorrenciaCategory `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      OcorrenciaStatus   `json:"status"`
	AssignedTo  *uuid.UUID         `json:"assigned_to"`
	Comments    []Comentario       `json:"comments"`
	ResolvedAt  *time.Time         `json:"resolved_at"`
	Resolution  string             `json:"resolution"`
	ClosedAt    *time.Time         `json:"closed_at"`
	ReopenCount int                `json:"reopen_count"`
}

// NewOcorrencia opens a new occurrence ticket
func NewOcorrencia(condominiumID uuid.UUID, unitID *uuid.UUID, openedBy uuid.UUID, category OcorrenciaCategory, title, description string) (*Ocorrencia, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Occurrence title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Occurrence title cannot exceed 200 characters")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown occurrence category")
	}

	ocorrencia := &Ocorrencia{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(condominiumID, openedBy),
		UnitID:             unitID,
		OpenedBy:           openedBy,
		Category:           category,
		Title:              strings.TrimSpace(title),
		Description:        strings.TrimSpace(description),
		Status:             OcorrenciaStatusOpen,
		Comments:           make([]Comentario, 0),
	}

	ocorrencia.AddDomainEvent(NewOcorrenciaOpenedEvent(ocorrencia))
	return ocorrencia, nil
}

// Assign puts the ticket in progress under the given staff member
func (o *Ocorrencia) Assign(assigneeID uuid.UUID) error {
	if o.Status != OcorrenciaStatusOpen && o.Status != OcorrenciaStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Occurrence cannot be assigned from status %s", o.Status))
	}

	o.AssignedTo = &assigneeID
	o.Status = OcorrenciaStatusInProgress
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Resolve marks the ticket resolved with a resolution note
func (o *Ocorrencia) Resolve(resolution string, now time.Time) error {
	if o.Status != OcorrenciaStatusOpen && o.Status != OcorrenciaStatusInProgress {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Occurrence cannot be resolved from status %s", o.Status))
	}
	if strings.TrimSpace(resolution) == "" {
		return shared.NewDomainError("INVALID_RESOLUTION", "Resolution note is required")
	}

	o.Status = OcorrenciaStatusResolved
	o.Resolution = strings.TrimSpace(resolution)
	o.ResolvedAt = &now
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOcorrenciaResolvedEvent(o))
	return nil
}

// Close confirms the resolution and closes the ticket
func (o *Ocorrencia) Close(now time.Time) error {
	if o.Status != OcorrenciaStatusResolved {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Only resolved occurrences can be closed, current status is %s", o.Status))
	}

	o.Status = OcorrenciaStatusClosed
	o.ClosedAt = &now
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// Reopen puts a resolved ticket back in progress when the resident
// disputes the resolution
func (o *Ocorrencia) Reopen() error {
	if o.Status != OcorrenciaStatusResolved {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Only resolved occurrences can be reopened, current status is %s", o.Status))
	}

	o.Status = OcorrenciaStatusInProgress
	o.ResolvedAt = nil
	o.Resolution = ""
	o.ReopenCount++
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

// AddComment appends a follow-up comment
func (o *Ocorrencia) AddComment(authorID uuid.UUID, body string, internal bool) (*Comentario, error) {
	if o.Status.IsTerminal() {
		return nil, shared.NewDomainError("INVALID_STATE", "Closed occurrences do not accept comments")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment body cannot be empty")
	}

	comment := Comentario{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Body:      strings.TrimSpace(body),
		Internal:  internal,
		CreatedAt: time.Now(),
	}
	o.Comments = append(o.Comments, comment)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return &comment, nil
}

// VisibleComments returns the comments a resident may see
func (o *Ocorrencia) VisibleComments() []Comentario {
	visible := make([]Comentario, 0, len(o.Comments))
	for _, c := range o.Comments {
		if !c.Internal {
			visible = append(visible, c)
		}
	}
	return visible
}
