package models

import (
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/google/uuid"
)

// VisitaModel is the persistence model for visits
type VisitaModel struct {
	CondoAggregateModel
	UnitID       uuid.UUID              `gorm:"type:uuid;not null;index"`
	VisitorName  string                 `gorm:"type:varchar(200);not null"`
	VisitorDoc   string                 `gorm:"type:varchar(50)"`
	Status       frontdesk.VisitaStatus `gorm:"type:varchar(20);not null;default:'EXPECTED';index"`
	AuthorizedBy *uuid.UUID             `gorm:"type:uuid"`
	ExpectedAt   *time.Time             `gorm:"index"`
	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	RegisteredBy *uuid.UUID `gorm:"type:uuid"`
	Notes        string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VisitaModel) TableName() string {
	return "visitas"
}

// ToDomain converts the persistence model to a domain Visita entity.
func (m *VisitaModel) ToDomain() *frontdesk.Visita {
	v := &frontdesk.Visita{
		UnitID:       m.UnitID,
		VisitorName:  m.VisitorName,
		VisitorDoc:   m.VisitorDoc,
		Status:       m.Status,
		AuthorizedBy: m.AuthorizedBy,
		ExpectedAt:   m.ExpectedAt,
		CheckedInAt:  m.CheckedInAt,
		CheckedOutAt: m.CheckedOutAt,
		RegisteredBy: m.RegisteredBy,
		Notes:        m.Notes,
	}
	m.PopulateCondoAggregateRoot(&v.CondoAggregateRoot)
	return v
}

// FromDomain populates the persistence model from a domain Visita entity.
func (m *VisitaModel) FromDomain(v *frontdesk.Visita) {
	m.FromDomainCondoAggregateRoot(v.CondoAggregateRoot)
	m.UnitID = v.UnitID
	m.VisitorName = v.VisitorName
	m.VisitorDoc = v.VisitorDoc
	m.Status = v.Status
	m.AuthorizedBy = v.AuthorizedBy
	m.ExpectedAt = v.ExpectedAt
	m.CheckedInAt = v.CheckedInAt
	m.CheckedOutAt = v.CheckedOutAt
	m.RegisteredBy = v.RegisteredBy
	m.Notes = v.Notes
}

// VisitaModelFromDomain creates a new persistence model from a domain Visita entity.
func VisitaModelFromDomain(v *frontdesk.Visita) *VisitaModel {
	m := &VisitaModel{}
	m.FromDomain(v)
	return m
}

// EncomendaModel is the persistence model for packages
type EncomendaModel struct {
	CondoAggregateModel
	UnitID       uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Description  string                    `gorm:"type:varchar(500)"`
	Carrier      string                    `gorm:"type:varchar(100)"`
	TrackingCode string                    `gorm:"type:varchar(100);index"`
	Status       frontdesk.EncomendaStatus `gorm:"type:varchar(20);not null;default:'RECEIVED';index"`
	ReceivedBy   uuid.UUID                 `gorm:"type:uuid;not null"`
	ReceivedAt   time.Time                 `gorm:"not null;index"`
	DeliveredAt  *time.Time
	DeliveredTo  string `gorm:"type:varchar(200)"`
	ReturnedAt   *time.Time
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (EncomendaModel) TableName() string {
	return "encomendas"
}

// ToDomain converts the persistence model to a domain Encomenda entity.
func (m *EncomendaModel) ToDomain() *frontdesk.Encomenda {
	e := &frontdesk.Encomenda{
		UnitID:       m.UnitID,
		Description:  m.Description,
		Carrier:      m.Carrier,
		TrackingCode: m.TrackingCode,
		Status:       m.Status,
		ReceivedBy:   m.ReceivedBy,
		ReceivedAt:   m.ReceivedAt,
		DeliveredAt:  m.DeliveredAt,
		DeliveredTo:  m.DeliveredTo,
		ReturnedAt:   m.ReturnedAt,
		Notes:        m.Notes,
	}
	m.PopulateCondoAggregateRoot(&e.CondoAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain Encomenda entity.
func (m *EncomendaModel) FromDomain(e *frontdesk.Encomenda) {
	m.FromDomainCondoAggregateRoot(e.CondoAggregateRoot)
	m.UnitID = e.UnitID
	m.Description = e.Description
	m.Carrier = e.Carrier
	m.TrackingCode = e.TrackingCode
	m.Status = e.Status
	m.ReceivedBy = e.ReceivedBy
	m.ReceivedAt = e.ReceivedAt
	m.DeliveredAt = e.DeliveredAt
	m.DeliveredTo = e.DeliveredTo
	m.ReturnedAt = e.ReturnedAt
	m.Notes = e.Notes
}

// EncomendaModelFromDomain creates a new persistence model from a domain Encomenda entity.
func EncomendaModelFromDomain(e *frontdesk.Encomenda) *EncomendaModel {
	m := &EncomendaModel{}
	m.FromDomain(e)
	return m
}
