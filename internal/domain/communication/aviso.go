package communication

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AvisoStatus represents the status of a notice
type AvisoStatus string

const (
	AvisoStatusDraft     AvisoStatus = "DRAFT"
	AvisoStatusPublished AvisoStatus = "PUBLISHED"
	AvisoStatusArchived  AvisoStatus = "ARCHIVED"
)

// IsValid checks if the status is valid
func (s AvisoStatus) IsValid() bool {
	switch s {
	case AvisoStatusDraft, AvisoStatusPublished, AvisoStatusArchived:
		return true
	}
	return false
}

// AvisoPriority indicates how prominently a notice should be shown
type AvisoPriority string

const (
	PriorityNormal AvisoPriority = "NORMAL"
	PriorityUrgent AvisoPriority = "URGENT"
)

// Aviso is a notice posted by the sindico to the condominium board:
// maintenance announcements, assembly calls, general communications.
type Aviso struct {
	shared.CondoAggregateRoot
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Priority    AvisoPriority `json:"priority"`
	Status      AvisoStatus   `json:"status"`
	PublishedAt *time.Time    `json:"published_at"`
	ExpiresAt   *time.Time    `json:"expires_at"`
	ArchivedAt  *time.Time    `json:"archived_at"`
}

// NewAviso creates a notice in draft
func NewAviso(condominiumID, authorID uuid.UUID, title, body string, priority AvisoPriority) (*Aviso, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Notice title cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, shared.NewDomainError("INVALID_BODY", "Notice body cannot be empty")
	}
	if priority == "" {
		priority = PriorityNormal
	}
	if priority != PriorityNormal && priority != PriorityUrgent {
		return nil, shared.NewDomainError("INVALID_PRIORITY", "Unknown notice priority")
	}

	return &Aviso{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(condominiumID, authorID),
		Title:              strings.TrimSpace(title),
		Body:               body,
		Priority:           priority,
		Status:             AvisoStatusDraft,
	}, nil
}

// Publish makes the notice visible to residents
func (a *Aviso) Publish(now time.Time, expiresAt *time.Time) error {
	if a.Status != AvisoStatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Notice cannot be published from status %s", a.Status))
	}
	if expiresAt != nil && !expiresAt.After(now) {
		return shared.NewDomainError("INVALID_EXPIRY", "Expiry must be in the future")
	}

	a.Status = AvisoStatusPublished
	a.PublishedAt = &now
	a.ExpiresAt = expiresAt
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAvisoPublishedEvent(a))
	return nil
}

// Archive removes the notice from the board
func (a *Aviso) Archive(now time.Time) error {
	if a.Status != AvisoStatusPublished {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(
			"Notice cannot be archived from status %s", a.Status))
	}

	a.Status = AvisoStatusArchived
	a.ArchivedAt = &now
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}

// IsVisible reports whether the notice should appear on the board
func (a *Aviso) IsVisible(now time.Time) bool {
	if a.Status != AvisoStatusPublished {
		return false
	}
	return a.ExpiresAt == nil || now.Before(*a.ExpiresAt)
}
