package billing

import (
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// CreateBoletoRequest creates a charge against a unit
type CreateBoletoRequest struct {
	UnitID      string          `json:"unit_id" binding:"required,uuid"`
	Description string          `json:"description" binding:"max=500"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
}

// RegisterBoletoRequest carries the identifiers returned by the bank
type RegisterBoletoRequest struct {
	LinhaDigitavel string `json:"linha_digitavel" binding:"required"`
	NossoNumero    string `json:"nosso_numero" binding:"required"`
	CodigoBanco    string `json:"codigo_banco" binding:"required"`
}

// PayBoletoRequest records a payment, possibly out of band
type PayBoletoRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate *time.Time      `json:"payment_date"`
}

// BoletoResponse is the API representation of a boleto
type BoletoResponse struct {
	ID             string           `json:"id"`
	BoletoNumber   string           `json:"boleto_number"`
	UnitID         string           `json:"unit_id"`
	Description    string           `json:"description"`
	Amount         decimal.Decimal  `json:"amount"`
	DueDate        time.Time        `json:"due_date"`
	Status         string           `json:"status"`
	LinhaDigitavel string           `json:"linha_digitavel,omitempty"`
	NossoNumero    string           `json:"nosso_numero,omitempty"`
	CodigoBanco    string           `json:"codigo_banco,omitempty"`
	RegisteredAt   *time.Time       `json:"registered_at,omitempty"`
	SentAt         *time.Time       `json:"sent_at,omitempty"`
	PaidAt         *time.Time       `json:"paid_at,omitempty"`
	AmountPaid     *decimal.Decimal `json:"amount_paid,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
	Version        int              `json:"version"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToBoletoResponse converts a domain boleto to its API representation
func ToBoletoResponse(b *billing.Boleto) BoletoResponse {
	return BoletoResponse{
		ID:             b.ID.String(),
		BoletoNumber:   b.BoletoNumber,
		UnitID:         b.UnitID.String(),
		Description:    b.Description,
		Amount:         b.Amount,
		DueDate:        b.DueDate,
		Status:         b.Status.String(),
		LinhaDigitavel: b.LinhaDigitavel,
		NossoNumero:    b.NossoNumero,
		CodigoBanco:    b.CodigoBanco,
		RegisteredAt:   b.RegisteredAt,
		SentAt:         b.SentAt,
		PaidAt:         b.PaidAt,
		AmountPaid:     b.AmountPaid,
		CancelledAt:    b.CancelledAt,
		Version:        b.Version,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBoletoResponses converts a list of domain boletos
func ToBoletoResponses(boletos []billing.Boleto) []BoletoResponse {
	responses := make([]BoletoResponse, 0, len(boletos))
	for i := range boletos {
		responses = append(responses, ToBoletoResponse(&boletos[i]))
	}
	return responses
}

// BoletoListFilter carries list query parameters
type BoletoListFilter struct {
	UnitID string `form:"unit_id"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// OverdueSweepResult reports the outcome of an overdue sweep
type OverdueSweepResult struct {
	Checked int `json:"checked"`
	Marked  int `json:"marked"`
}

// CreateAcordoRequest opens an installment agreement for a unit's debt
type CreateAcordoRequest struct {
	UnitID          string          `json:"unit_id" binding:"required,uuid"`
	TotalAmount     decimal.Decimal `json:"total_amount" binding:"required"`
	DownPayment     decimal.Decimal `json:"down_payment"`
	Installments    int             `json:"installments" binding:"required,min=1"`
	FirstDueDate    time.Time       `json:"first_due_date" binding:"required"`
	CoveredBoletoIDs []string       `json:"covered_boleto_ids"`
}

// ParcelaResponse is the API representation of an installment
type ParcelaResponse struct {
	Sequence int             `json:"sequence"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidAt   *time.Time      `json:"paid_at,omitempty"`
	BoletoID *string         `json:"boleto_id,omitempty"`
}

// AcordoResponse is the API representation of an agreement
type AcordoResponse struct {
	ID           string            `json:"id"`
	AcordoNumber string            `json:"acordo_number"`
	UnitID       string            `json:"unit_id"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	DownPayment  decimal.Decimal   `json:"down_payment"`
	Installments int               `json:"installments"`
	Status       string            `json:"status"`
	Parcelas     []ParcelaResponse `json:"parcelas"`
	PaidCount    int               `json:"paid_count"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToAcordoResponse converts a domain agreement to its API representation
func ToAcordoResponse(a *billing.Acordo) AcordoResponse {
	parcelas := make([]ParcelaResponse, 0, len(a.Parcelas))
	for _, p := range a.Parcelas {
		pr := ParcelaResponse{
			Sequence: p.Sequence,
			Amount:   p.Amount,
			DueDate:  p.DueDate,
			Paid:     p.Paid,
			PaidAt:   p.PaidAt,
		}
		if p.BoletoID != nil {
			id := p.BoletoID.String()
			pr.BoletoID = &id
		}
		parcelas = append(parcelas, pr)
	}

	return AcordoResponse{
		ID:           a.ID.String(),
		AcordoNumber: a.AcordoNumber,
		UnitID:       a.UnitID.String(),
		TotalAmount:  a.TotalAmount,
		DownPayment:  a.DownPayment,
		Installments: a.Installments,
		Status:       a.Status.String(),
		Parcelas:     parcelas,
		PaidCount:    a.PaidCount(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
