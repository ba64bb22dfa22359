package condominium

import (
	"regexp"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
)

// CondominiumStatus represents the status of a condominium
type CondominiumStatus string

const (
	CondominiumStatusActive   CondominiumStatus = "active"
	CondominiumStatusInactive CondominiumStatus = "inactive"
)

// CondominiumSettings holds configurable settings for a condominium
type CondominiumSettings struct {
	Timezone            string `json:"timezone"`
	Currency            string `json:"currency"`
	BoletoDueDay        int    `json:"boleto_due_day"`        // day of month ordinary boletos fall due
	LatePaymentFinePct  string `json:"late_payment_fine_pct"` // decimal string, e.g. "2.00"
	MonthlyInterestPct  string `json:"monthly_interest_pct"`
	VisitorLogRetention int    `json:"visitor_log_retention"` // days
}

// DefaultCondominiumSettings returns the settings a new condominium starts with
func DefaultCondominiumSettings() CondominiumSettings {
	return CondominiumSettings{
		Timezone:            "America/Sao_Paulo",
		Currency:            "BRL",
		BoletoDueDay:        10,
		LatePaymentFinePct:  "2.00",
		MonthlyInterestPct:  "1.00",
		VisitorLogRetention: 365,
	}
}

var cnpjPattern = regexp.MustCompile(`^\d{14}$`)

// Condominium is the aggregate root every other aggregate is scoped to.
// It plays the tenant role of the platform.
type Condominium struct {
	shared.BaseAggregateRoot
	Code         string              `json:"code"`
	Name         string              `json:"name"`
	CNPJ         string              `json:"cnpj"`
	Status       CondominiumStatus   `json:"status"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zip_code"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email"`
	Settings     CondominiumSettings `json:"settings"`
	Notes        string              `json:"notes"`
}

// NewCondominium creates a new condominium with default settings
func NewCondominium(code, name, cnpj string) (*Condominium, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Condominium code cannot be empty")
	}
	if len(code) > 50 {
		return nil, shared.NewDomainError("INVALID_CODE", "Condominium code cannot exceed 50 characters")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Condominium name cannot be empty")
	}
	cnpj = strings.NewReplacer(".", "", "/", "", "-", "").Replace(cnpj)
	if cnpj != "" && !cnpjPattern.MatchString(cnpj) {
		return nil, shared.NewDomainError("INVALID_CNPJ", "CNPJ must contain 14 digits")
	}

	condo := &Condominium{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		CNPJ:              cnpj,
		Status:            CondominiumStatusActive,
		Settings:          DefaultCondominiumSettings(),
	}

	condo.AddDomainEvent(NewCondominiumCreatedEvent(condo))
	return condo, nil
}

// UpdateContact updates the contact information
func (c *Condominium) UpdateContact(name, phone, email string) {
	c.ContactName = name
	c.ContactPhone = phone
	c.ContactEmail = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// UpdateAddress updates the address fields
func (c *Condominium) UpdateAddress(address, city, state, zipCode string) {
	c.Address = address
	c.City = city
	c.State = state
	c.ZipCode = zipCode
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// UpdateSettings replaces the settings
func (c *Condominium) UpdateSettings(settings CondominiumSettings) error {
	if settings.BoletoDueDay < 1 || settings.BoletoDueDay > 28 {
		return shared.NewDomainError("INVALID_SETTINGS", "Boleto due day must be between 1 and 28")
	}
	if settings.VisitorLogRetention < 0 {
		return shared.NewDomainError("INVALID_SETTINGS", "Visitor log retention cannot be negative")
	}
	c.Settings = settings
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Deactivate marks the condominium inactive. All scoped operations are
// rejected by the application layer while inactive.
func (c *Condominium) Deactivate() error {
	if c.Status == CondominiumStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Condominium is already inactive")
	}
	c.Status = CondominiumStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	c.AddDomainEvent(NewCondominiumDeactivatedEvent(c))
	return nil
}

// Activate marks the condominium active again
func (c *Condominium) Activate() error {
	if c.Status == CondominiumStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Condominium is already active")
	}
	c.Status = CondominiumStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsActive reports whether the condominium accepts operations
func (c *Condominium) IsActive() bool {
	return c.Status == CondominiumStatusActive
}
