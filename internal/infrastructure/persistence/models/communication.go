package models

import (
	"encoding/json"
	"time"

	"github.com/condo/backend/internal/domain/communication"
	"github.com/google/uuid"
)

// AvisoModel is the persistence model for notices
type AvisoModel struct {
	CondoAggregateModel
	Title       string                      `gorm:"type:varchar(200);not null"`
	Body        string                      `gorm:"type:text;not null"`
	Priority    communication.AvisoPriority `gorm:"type:varchar(20);not null;default:'NORMAL'"`
	Status      communication.AvisoStatus   `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	PublishedAt *time.Time                  `gorm:"index"`
	ExpiresAt   *time.Time
	ArchivedAt  *time.Time
}

// TableName returns the table name for GORM
func (AvisoModel) TableName() string {
	return "avisos"
}

// ToDomain converts the persistence model to a domain Aviso entity.
func (m *AvisoModel) ToDomain() *communication.Aviso {
	a := &communication.Aviso{
		Title:       m.Title,
		Body:        m.Body,
		Priority:    m.Priority,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
		ExpiresAt:   m.ExpiresAt,
		ArchivedAt:  m.ArchivedAt,
	}
	m.PopulateCondoAggregateRoot(&a.CondoAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Aviso entity.
func (m *AvisoModel) FromDomain(a *communication.Aviso) {
	m.FromDomainCondoAggregateRoot(a.CondoAggregateRoot)
	m.Title = a.Title
	m.Body = a.Body
	m.Priority = a.Priority
	m.Status = a.Status
	m.PublishedAt = a.PublishedAt
	m.ExpiresAt = a.ExpiresAt
	m.ArchivedAt = a.ArchivedAt
}

// AvisoModelFromDomain creates a new persistence model from a domain Aviso entity.
func AvisoModelFromDomain(a *communication.Aviso) *AvisoModel {
	m := &AvisoModel{}
	m.FromDomain(a)
	return m
}

// EnqueteModel is the persistence model for polls. The option list is small
// and immutable once the poll opens, so it is stored as a JSON column; votes
// get their own table to enforce the one-vote-per-unit constraint.
type EnqueteModel struct {
	CondoAggregateModel
	Question string                      `gorm:"type:varchar(500);not null"`
	Options  string                      `gorm:"type:jsonb;not null"`
	Status   communication.EnqueteStatus `gorm:"type:varchar(20);not null;default:'OPEN';index"`
	OpensAt  time.Time                   `gorm:"not null"`
	ClosesAt time.Time                   `gorm:"not null"`
	ClosedAt *time.Time
}

// TableName returns the table name for GORM
func (EnqueteModel) TableName() string {
	return "enquetes"
}

// ToDomain converts the persistence model to a domain Enquete entity.
// Votes are loaded separately by the repository.
func (m *EnqueteModel) ToDomain(votes []VotoModel) (*communication.Enquete, error) {
	var options []communication.EnqueteOption
	if err := json.Unmarshal([]byte(m.Options), &options); err != nil {
		return nil, err
	}

	e := &communication.Enquete{
		Question: m.Question,
		Options:  options,
		Status:   m.Status,
		Votes:    make([]communication.Voto, len(votes)),
		OpensAt:  m.OpensAt,
		ClosesAt: m.ClosesAt,
		ClosedAt: m.ClosedAt,
	}
	for i := range votes {
		e.Votes[i] = *votes[i].ToDomain()
	}
	m.PopulateCondoAggregateRoot(&e.CondoAggregateRoot)
	return e, nil
}

// FromDomain populates the persistence model from a domain Enquete entity.
func (m *EnqueteModel) FromDomain(e *communication.Enquete) error {
	options, err := json.Marshal(e.Options)
	if err != nil {
		return err
	}

	m.FromDomainCondoAggregateRoot(e.CondoAggregateRoot)
	m.Question = e.Question
	m.Options = string(options)
	m.Status = e.Status
	m.OpensAt = e.OpensAt
	m.ClosesAt = e.ClosesAt
	m.ClosedAt = e.ClosedAt
	return nil
}

// EnqueteModelFromDomain creates a new persistence model from a domain Enquete entity.
func EnqueteModelFromDomain(e *communication.Enquete) (*EnqueteModel, error) {
	m := &EnqueteModel{}
	if err := m.FromDomain(e); err != nil {
		return nil, err
	}
	return m, nil
}

// VotoModel is the persistence model for poll votes
type VotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	EnqueteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_voto_enquete_unit,priority:1"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_voto_enquete_unit,priority:2"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	OptionID  int       `gorm:"not null"`
	CastAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VotoModel) TableName() string {
	return "enquete_votos"
}

// ToDomain converts the persistence model to a domain Voto.
func (m *VotoModel) ToDomain() *communication.Voto {
	return &communication.Voto{
		UnitID:   m.UnitID,
		UserID:   m.UserID,
		OptionID: m.OptionID,
		CastAt:   m.CastAt,
	}
}

// FromDomain populates the persistence model from a domain Voto.
func (m *VotoModel) FromDomain(enqueteID uuid.UUID, v *communication.Voto) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.EnqueteID = enqueteID
	m.UnitID = v.UnitID
	m.UserID = v.UserID
	m.OptionID = v.OptionID
	m.CastAt = v.CastAt
}
