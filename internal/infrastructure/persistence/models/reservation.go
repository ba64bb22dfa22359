package models

import (
	"time"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EspacoComumModel is the persistence model for common areas
type EspacoComumModel struct {
	CondoAggregateModel
	Name                  string `gorm:"type:varchar(200);not null"`
	Description           string `gorm:"type:text"`
	Capacity              int    `gorm:"not null;default:0"`
	Active                bool   `gorm:"not null;default:true"`
	MinReservationMinutes *int
	MaxReservationMinutes *int
	OperatingStartMinute  *int
	OperatingEndMinute    *int
	MaxAdvanceDays        *int
	MinCancelNoticeHours  *int
	MaxMonthlyPerUnit     *int
	RequiresApproval      bool             `gorm:"not null;default:false"`
	Fee                   *decimal.Decimal `gorm:"type:decimal(18,2)"`
}

// TableName returns the table name for GORM
func (EspacoComumModel) TableName() string {
	return "espacos_comuns"
}

// ToDomain converts the persistence model to a domain EspacoComum entity.
func (m *EspacoComumModel) ToDomain() *reservation.EspacoComum {
	e := &reservation.EspacoComum{
		Name:                  m.Name,
		Description:           m.Description,
		Capacity:              m.Capacity,
		Active:                m.Active,
		MinReservationMinutes: m.MinReservationMinutes,
		MaxReservationMinutes: m.MaxReservationMinutes,
		OperatingStartMinute:  m.OperatingStartMinute,
		OperatingEndMinute:    m.OperatingEndMinute,
		MaxAdvanceDays:        m.MaxAdvanceDays,
		MinCancelNoticeHours:  m.MinCancelNoticeHours,
		MaxMonthlyPerUnit:     m.MaxMonthlyPerUnit,
		RequiresApproval:      m.RequiresApproval,
		Fee:                   m.Fee,
	}
	m.PopulateCondoAggregateRoot(&e.CondoAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain EspacoComum entity.
func (m *EspacoComumModel) FromDomain(e *reservation.EspacoComum) {
	m.FromDomainCondoAggregateRoot(e.CondoAggregateRoot)
	m.Name = e.Name
	m.Description = e.Description
	m.Capacity = e.Capacity
	m.Active = e.Active
	m.MinReservationMinutes = e.MinReservationMinutes
	m.MaxReservationMinutes = e.MaxReservationMinutes
	m.OperatingStartMinute = e.OperatingStartMinute
	m.OperatingEndMinute = e.OperatingEndMinute
	m.MaxAdvanceDays = e.MaxAdvanceDays
	m.MinCancelNoticeHours = e.MinCancelNoticeHours
	m.MaxMonthlyPerUnit = e.MaxMonthlyPerUnit
	m.RequiresApproval = e.RequiresApproval
	m.Fee = e.Fee
}

// EspacoComumModelFromDomain creates a new persistence model from a domain EspacoComum entity.
func EspacoComumModelFromDomain(e *reservation.EspacoComum) *EspacoComumModel {
	m := &EspacoComumModel{}
	m.FromDomain(e)
	return m
}

// ReservaModel is the persistence model for reservations
type ReservaModel struct {
	CondoAggregateModel
	EspacoID          uuid.UUID                 `gorm:"type:uuid;not null;index:idx_reserva_espaco_window,priority:1"`
	UnitID            uuid.UUID                 `gorm:"type:uuid;not null;index"`
	RequestedBy       uuid.UUID                 `gorm:"type:uuid;not null"`
	StartsAt          time.Time                 `gorm:"not null;index:idx_reserva_espaco_window,priority:2"`
	EndsAt            time.Time                 `gorm:"not null"`
	Status            reservation.ReservaStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Fee               decimal.Decimal           `gorm:"type:decimal(18,2);not null;default:0"`
	CancelNoticeHours *int
	Notes             string     `gorm:"type:text"`
	DecidedBy         *uuid.UUID `gorm:"type:uuid"`
	DecidedAt         *time.Time
	RejectionReason   string `gorm:"type:varchar(500)"`
	CancelledAt       *time.Time
}

// TableName returns the table name for GORM
func (ReservaModel) TableName() string {
	return "reservas"
}

// ToDomain converts the persistence model to a domain Reserva entity.
func (m *ReservaModel) ToDomain() *reservation.Reserva {
	r := &reservation.Reserva{
		EspacoID:          m.EspacoID,
		UnitID:            m.UnitID,
		RequestedBy:       m.RequestedBy,
		StartsAt:          m.StartsAt,
		EndsAt:            m.EndsAt,
		Status:            m.Status,
		Fee:               m.Fee,
		CancelNoticeHours: m.CancelNoticeHours,
		Notes:             m.Notes,
		DecidedBy:         m.DecidedBy,
		DecidedAt:         m.DecidedAt,
		RejectionReason:   m.RejectionReason,
		CancelledAt:       m.CancelledAt,
	}
	m.PopulateCondoAggregateRoot(&r.CondoAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain Reserva entity.
func (m *ReservaModel) FromDomain(r *reservation.Reserva) {
	m.FromDomainCondoAggregateRoot(r.CondoAggregateRoot)
	m.EspacoID = r.EspacoID
	m.UnitID = r.UnitID
	m.RequestedBy = r.RequestedBy
	m.StartsAt = r.StartsAt
	m.EndsAt = r.EndsAt
	m.Status = r.Status
	m.Fee = r.Fee
	m.CancelNoticeHours = r.CancelNoticeHours
	m.Notes = r.Notes
	m.DecidedBy = r.DecidedBy
	m.DecidedAt = r.DecidedAt
	m.RejectionReason = r.RejectionReason
	m.CancelledAt = r.CancelledAt
}

// ReservaModelFromDomain creates a new persistence model from a domain Reserva entity.
func ReservaModelFromDomain(r *reservation.Reserva) *ReservaModel {
	m := &ReservaModel{}
	m.FromDomain(r)
	return m
}
