package models

import (
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BoletoModel is the persistence model for boletos
type BoletoModel struct {
	CondoAggregateModel
	BoletoNumber   string               `gorm:"type:varchar(50);not null;index"`
	UnitID         uuid.UUID            `gorm:"type:uuid;not null;index"`
	Description    string               `gorm:"type:varchar(500)"`
	Amount         decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	DueDate        time.Time            `gorm:"not null;index"`
	Status         billing.BoletoStatus `gorm:"type:varchar(20);not null;default:'GENERATED';index"`
	NossoNumero    string               `gorm:"type:varchar(50)"`
	LinhaDigitavel string               `gorm:"type:varchar(60)"`
	CodigoBanco    string               `gorm:"type:varchar(10)"`
	RegisteredAt   *time.Time
	SentAt         *time.Time
	PaidAt         *time.Time
	AmountPaid     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CancelledAt    *time.Time
}

// TableName returns the table name for GORM
func (BoletoModel) TableName() string {
	return "boletos"
}

// ToDomain converts the persistence model to a domain Boleto entity.
func (m *BoletoModel) ToDomain() *billing.Boleto {
	b := &billing.Boleto{
		BoletoNumber:   m.BoletoNumber,
		UnitID:         m.UnitID,
		Description:    m.Description,
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		Status:         m.Status,
		NossoNumero:    m.NossoNumero,
		LinhaDigitavel: m.LinhaDigitavel,
		CodigoBanco:    m.CodigoBanco,
		RegisteredAt:   m.RegisteredAt,
		SentAt:         m.SentAt,
		PaidAt:         m.PaidAt,
		AmountPaid:     m.AmountPaid,
		CancelledAt:    m.CancelledAt,
	}
	m.PopulateCondoAggregateRoot(&b.CondoAggregateRoot)
	return b
}

// FromDomain populates the persistence model from a domain Boleto entity.
func (m *BoletoModel) FromDomain(b *billing.Boleto) {
	m.FromDomainCondoAggregateRoot(b.CondoAggregateRoot)
	m.BoletoNumber = b.BoletoNumber
	m.UnitID = b.UnitID
	m.Description = b.Description
	m.Amount = b.Amount
	m.DueDate = b.DueDate
	m.Status = b.Status
	m.NossoNumero = b.NossoNumero
	m.LinhaDigitavel = b.LinhaDigitavel
	m.CodigoBanco = b.CodigoBanco
	m.RegisteredAt = b.RegisteredAt
	m.SentAt = b.SentAt
	m.PaidAt = b.PaidAt
	m.AmountPaid = b.AmountPaid
	m.CancelledAt = b.CancelledAt
}

// BoletoModelFromDomain creates a new persistence model from a domain Boleto entity.
func BoletoModelFromDomain(b *billing.Boleto) *BoletoModel {
	m := &BoletoModel{}
	m.FromDomain(b)
	return m
}

// AcordoModel is the persistence model for installment agreements
type AcordoModel struct {
	CondoAggregateModel
	AcordoNumber string               `gorm:"type:varchar(50);not null;index"`
	UnitID       uuid.UUID            `gorm:"type:uuid;not null;index"`
	TotalAmount  decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	DownPayment  decimal.Decimal      `gorm:"type:decimal(18,2);not null"`
	Installments int                  `gorm:"not null"`
	Status       billing.AcordoStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (AcordoModel) TableName() string {
	return "acordos"
}

// ToDomain converts the persistence model to a domain Acordo entity.
// Installments are loaded separately by the repository.
func (m *AcordoModel) ToDomain(parcelas []ParcelaModel) *billing.Acordo {
	a := &billing.Acordo{
		AcordoNumber: m.AcordoNumber,
		UnitID:       m.UnitID,
		TotalAmount:  m.TotalAmount,
		DownPayment:  m.DownPayment,
		Installments: m.Installments,
		Status:       m.Status,
		Parcelas:     make([]billing.Parcela, len(parcelas)),
	}
	for i := range parcelas {
		a.Parcelas[i] = *parcelas[i].ToDomain()
	}
	m.PopulateCondoAggregateRoot(&a.CondoAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Acordo entity.
func (m *AcordoModel) FromDomain(a *billing.Acordo) {
	m.FromDomainCondoAggregateRoot(a.CondoAggregateRoot)
	m.AcordoNumber = a.AcordoNumber
	m.UnitID = a.UnitID
	m.TotalAmount = a.TotalAmount
	m.DownPayment = a.DownPayment
	m.Installments = a.Installments
	m.Status = a.Status
}

// AcordoModelFromDomain creates a new persistence model from a domain Acordo entity.
func AcordoModelFromDomain(a *billing.Acordo) *AcordoModel {
	m := &AcordoModel{}
	m.FromDomain(a)
	return m
}

// ParcelaModel is the persistence model for agreement installments
type ParcelaModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key"`
	AcordoID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_parcela_acordo_seq,priority:1"`
	Sequence int             `gorm:"not null;uniqueIndex:idx_parcela_acordo_seq,priority:2"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DueDate  time.Time       `gorm:"not null"`
	Paid     bool            `gorm:"not null;default:false"`
	PaidAt   *time.Time
	BoletoID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ParcelaModel) TableName() string {
	return "parcelas"
}

// ToDomain converts the persistence model to a domain Parcela.
func (m *ParcelaModel) ToDomain() *billing.Parcela {
	return &billing.Parcela{
		ID:       m.ID,
		Sequence: m.Sequence,
		Amount:   m.Amount,
		DueDate:  m.DueDate,
		Paid:     m.Paid,
		PaidAt:   m.PaidAt,
		BoletoID: m.BoletoID,
	}
}

// FromDomain populates the persistence model from a domain Parcela.
func (m *ParcelaModel) FromDomain(acordoID uuid.UUID, p *billing.Parcela) {
	m.ID = p.ID
	m.AcordoID = acordoID
	m.Sequence = p.Sequence
	m.Amount = p.Amount
	m.DueDate = p.DueDate
	m.Paid = p.Paid
	m.PaidAt = p.PaidAt
	m.BoletoID = p.BoletoID
}
