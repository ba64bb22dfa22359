package condominium

import (
	"time"

	"github.com/condo/backend/internal/domain/condominium"
	"github.com/shopspring/decimal"
)

// CreateCondominiumRequest registers a new condominium on the platform
type CreateCondominiumRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=200"`
	CNPJ string `json:"cnpj" binding:"max=20"`
}

// UpdateContactRequest updates contact information
type UpdateContactRequest struct {
	ContactName  string `json:"contact_name" binding:"max=100"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
}

// UpdateSettingsRequest replaces the condominium settings
type UpdateSettingsRequest struct {
	Timezone            string `json:"timezone"`
	Currency            string `json:"currency"`
	BoletoDueDay        int    `json:"boleto_due_day" binding:"min=1,max=28"`
	LatePaymentFinePct  string `json:"late_payment_fine_pct"`
	MonthlyInterestPct  string `json:"monthly_interest_pct"`
	VisitorLogRetention int    `json:"visitor_log_retention" binding:"min=0"`
}

// CondominiumResponse is the API representation of a condominium
type CondominiumResponse struct {
	ID           string                          `json:"id"`
	Code         string                          `json:"code"`
	Name         string                          `json:"name"`
	CNPJ         string                          `json:"cnpj,omitempty"`
	Status       string                          `json:"status"`
	Address      string                          `json:"address,omitempty"`
	City         string                          `json:"city,omitempty"`
	State        string                          `json:"state,omitempty"`
	ContactName  string                          `json:"contact_name,omitempty"`
	ContactPhone string                          `json:"contact_phone,omitempty"`
	ContactEmail string                          `json:"contact_email,omitempty"`
	Settings     condominium.CondominiumSettings `json:"settings"`
	CreatedAt    time.Time                       `json:"created_at"`
}

// ToCondominiumResponse converts a domain condominium
func ToCondominiumResponse(c *condominium.Condominium) CondominiumResponse {
	return CondominiumResponse{
		ID:           c.ID.String(),
		Code:         c.Code,
		Name:         c.Name,
		CNPJ:         c.CNPJ,
		Status:       string(c.Status),
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
		ContactEmail: c.ContactEmail,
		Settings:     c.Settings,
		CreatedAt:    c.CreatedAt,
	}
}

// CreateUnidadeRequest registers a unit inside a condominium
type CreateUnidadeRequest struct {
	Bloco       string          `json:"bloco" binding:"max=20"`
	Numero      string          `json:"numero" binding:"required,max=20"`
	FracaoIdeal decimal.Decimal `json:"fracao_ideal"`
}

// UnidadeResponse is the API representation of a unit
type UnidadeResponse struct {
	ID          string          `json:"id"`
	Bloco       string          `json:"bloco,omitempty"`
	Numero      string          `json:"numero"`
	Label       string          `json:"label"`
	FracaoIdeal decimal.Decimal `json:"fracao_ideal"`
	Occupancy   string          `json:"occupancy"`
	OwnerUserID *string         `json:"owner_user_id,omitempty"`
	Active      bool            `json:"active"`
}

// ToUnidadeResponse converts a domain unit
func ToUnidadeResponse(u *condominium.Unidade) UnidadeResponse {
	resp := UnidadeResponse{
		ID:          u.ID.String(),
		Bloco:       u.Bloco,
		Numero:      u.Numero,
		Label:       u.Label(),
		FracaoIdeal: u.FracaoIdeal,
		Occupancy:   string(u.Occupancy),
		Active:      u.Active,
	}
	if u.OwnerUserID != nil {
		id := u.OwnerUserID.String()
		resp.OwnerUserID = &id
	}
	return resp
}
