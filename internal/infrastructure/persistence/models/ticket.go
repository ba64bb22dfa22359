package models

import (
	"time"

	"github.com/condo/backend/internal/domain/ticket"
	"github.com/google/uuid"
)

// OcorrenciaModel is the persistence model for occurrence tickets
type OcorrenciaModel struct {
	CondoAggregateModel
	UnitID      *uuid.UUID                `gorm:"type:uuid;index"`
	OpenedBy    uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Category    ticket.OcorrenciaCategory `gorm:"type:varchar(20);not null;index"`
	Title       string                    `gorm:"type:varchar(200);not null"`
	Description string                    `gorm:"type:text"`
	Status      ticket.OcorrenciaStatus   `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	AssignedTo  *uuid.UUID                `gorm:"type:uuid;index"`
	ResolvedAt  *time.Time
	Resolution  string `gorm:"type:text"`
	ClosedAt    *time.Time
	ReopenCount int `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OcorrenciaModel) TableName() string {
	return "ocorrencias"
}

// ToDomain converts the persistence model to a domain Ocorrencia entity.
// Comments are loaded separately by the repository.
func (m *OcorrenciaModel) ToDomain(comments []ComentarioModel) *ticket.Ocorrencia {
	o := &ticket.Ocorrencia{
		UnitID:      m.UnitID,
		OpenedBy:    m.OpenedBy,
		Category:    m.Category,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		AssignedTo:  m.AssignedTo,
		Comments:    make([]ticket.Comentario, len(comments)),
		ResolvedAt:  m.ResolvedAt,
		Resolution:  m.Resolution,
		ClosedAt:    m.ClosedAt,
		ReopenCount: m.ReopenCount,
	}
	for i := range comments {
		o.Comments[i] = *comments[i].ToDomain()
	}
	m.PopulateCondoAggregateRoot(&o.CondoAggregateRoot)
	return o
}

// FromDomain populates the persistence model from a domain Ocorrencia entity.
func (m *OcorrenciaModel) FromDomain(o *ticket.Ocorrencia) {
	m.FromDomainCondoAggregateRoot(o.CondoAggregateRoot)
	m.UnitID = o.UnitID
	m.OpenedBy = o.OpenedBy
	m.Category = o.Category
	m.Title = o.Title
	m.Description = o.Description
	m.Status = o.Status
	m.AssignedTo = o.AssignedTo
	m.ResolvedAt = o.ResolvedAt
	m.Resolution = o.Resolution
	m.ClosedAt = o.ClosedAt
	m.ReopenCount = o.ReopenCount
}

// OcorrenciaModelFromDomain creates a new persistence model from a domain Ocorrencia entity.
func OcorrenciaModelFromDomain(o *ticket.Ocorrencia) *OcorrenciaModel {
	m := &OcorrenciaModel{}
	m.FromDomain(o)
	return m
}

// ComentarioModel is the persistence model for ticket comments
type ComentarioModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OcorrenciaID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null"`
	Body         string    `gorm:"type:text;not null"`
	Internal     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ComentarioModel) TableName() string {
	return "ocorrencia_comentarios"
}

// ToDomain converts the persistence model to a domain Comentario.
func (m *ComentarioModel) ToDomain() *ticket.Comentario {
	return &ticket.Comentario{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		Internal:  m.Internal,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain populates the persistence model from a domain Comentario.
func (m *ComentarioModel) FromDomain(ocorrenciaID uuid.UUID, c *ticket.Comentario) {
	m.ID = c.ID
	m.OcorrenciaID = ocorrenciaID
	m.AuthorID = c.AuthorID
	m.Body = c.Body
	m.Internal = c.Internal
	m.CreatedAt = c.CreatedAt
}
