package billing

import (
	"fmt"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BoletoStatus represents the lifecycle status of a boleto
type BoletoStatus string

const (
	BoletoStatusGenerated  BoletoStatus = "GENERATED"  // Issued, not yet registered with the bank
	BoletoStatusRegistered BoletoStatus = "REGISTERED" // Registered, bank identifiers assigned
	BoletoStatusSent       BoletoStatus = "SENT"       // Delivered to the unit
	BoletoStatusOverdue    BoletoStatus = "OVERDUE"    // Past due date without payment
	BoletoStatusPaid       BoletoStatus = "PAID"       // Payment recorded (terminal)
	BoletoStatusCancelled  BoletoStatus = "CANCELLED"  // Voided (terminal)
)

// IsValid checks if the status is a valid BoletoStatus
func (s BoletoStatus) IsValid() bool {
	switch s {
	case BoletoStatusGenerated, BoletoStatusRegistered, BoletoStatusSent,
		BoletoStatusOverdue, BoletoStatusPaid, BoletoStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of BoletoStatus
func (s BoletoStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the boleto is in a terminal state
func (s BoletoStatus) IsTerminal() bool {
	return s == BoletoStatusPaid || s == BoletoStatusCancelled
}

// CanRegisterPayment returns true if a payment can be recorded in this status.
// Payments arrive out-of-band and must be recordable from any non-cancelled state.
func (s BoletoStatus) CanRegisterPayment() bool {
	return s != BoletoStatusCancelled
}

// MinRegistrationFloatDays is the minimum number of calendar days between
// the registration date and the due date, required by the bank.
const MinRegistrationFloatDays = 3

// Boleto is a bank billing instrument tied to one residential unit.
// Bank identifiers are assigned exactly once during registration and are
// immutable afterwards. A boleto is never physically deleted; cancellation
// is its soft lifecycle end.
type Boleto struct {
	shared.CondoAggregateRoot
	BoletoNumber   string          `json:"boleto_number"`
	UnitID         uuid.UUID       `json:"unit_id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"due_date"`
	Status         BoletoStatus    `json:"status"`
	NossoNumero    string          `json:"nosso_numero"`
	LinhaDigitavel string          `json:"linha_digitavel"`
	CodigoBanco    string          `json:"codigo_banco"`
	RegisteredAt   *time.Time      `json:"registered_at"`
	SentAt         *time.Time      `json:"sent_at"`
	PaidAt         *time.Time      `json:"paid_at"`
	AmountPaid     *decimal.Decimal `json:"amount_paid"`
	CancelledAt    *time.Time      `json:"cancelled_at"`
}

// truncateToDay strips the time-of-day component, keeping only the calendar date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NewBoleto creates a new boleto in Generated status
func NewBoleto(
	condominiumID uuid.UUID,
	boletoNumber string,
	unitID uuid.UUID,
	description string,
	amount valueobject.Money,
	dueDate time.Time,
) (*Boleto, error) {
	if boletoNumber == "" {
		return nil, shared.NewDomainError("INVALID_BOLETO_NUMBER", "Boleto number cannot be empty")
	}
	if len(boletoNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_BOLETO_NUMBER", "Boleto number cannot exceed 50 characters")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID cannot be empty")
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Boleto amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date is required")
	}

	b := &Boleto{
		CondoAggregateRoot: shared.NewCondoAggregateRoot(condominiumID),
		BoletoNumber:       boletoNumber,
		UnitID:             unitID,
		Description:        description,
		Amount:             amount.Amount(),
		DueDate:            truncateToDay(dueDate),
		Status:             BoletoStatusGenerated,
	}

	b.AddDomainEvent(NewBoletoGeneratedEvent(b))

	return b, nil
}

// Register assigns the bank identifiers and moves the boleto to Registered.
// The due date must be at least MinRegistrationFloatDays calendar days after
// the registration date; the boundary day itself is accepted.
func (b *Boleto) Register(linhaDigitavel, nossoNumero, codigoBanco string, registrationDate time.Time) error {
	if b.Status != BoletoStatusGenerated {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot register boleto in %s status", b.Status))
	}
	if linhaDigitavel == "" || nossoNumero == "" || codigoBanco == "" {
		return shared.NewDomainError("INVALID_BANK_IDENTIFIERS", "Bank identifiers cannot be empty")
	}

	regDay := truncateToDay(registrationDate)
	minDue := regDay.AddDate(0, 0, MinRegistrationFloatDays)
	if truncateToDay(b.DueDate).Before(minDue) {
		return shared.NewDomainError("INVALID_DUE_DATE", fmt.Sprintf(
			"Due date must be at least %d days after the registration date", MinRegistrationFloatDays))
	}

	b.LinhaDigitavel = linhaDigitavel
	b.NossoNumero = nossoNumero
	b.CodigoBanco = codigoBanco
	b.RegisteredAt = &regDay
	b.Status = BoletoStatusRegistered
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBoletoRegisteredEvent(b))

	return nil
}

// Send marks the boleto as delivered to the unit
func (b *Boleto) Send(sendDate time.Time) error {
	if b.Status != BoletoStatusRegistered {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot send boleto in %s status", b.Status))
	}

	b.SentAt = &sendDate
	b.Status = BoletoStatusSent
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBoletoSentEvent(b))

	return nil
}

// MarkOverdue moves a sent boleto past its due date to Overdue.
// Calling it before the due date has passed, or from any status other
// than Sent, is a silent no-op. The operation is idempotent.
func (b *Boleto) MarkOverdue(today time.Time) bool {
	if b.Status != BoletoStatusSent {
		return false
	}
	if !truncateToDay(today).After(truncateToDay(b.DueDate)) {
		return false
	}

	b.Status = BoletoStatusOverdue
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBoletoOverdueEvent(b))

	return true
}

// RegisterPayment records a payment and moves the boleto to Paid.
// Payments may arrive out-of-band, so this is allowed from every state
// except Cancelled - a cancelled instrument is financially dead.
func (b *Boleto) RegisterPayment(amount valueobject.Money, paymentDate time.Time) error {
	if !b.Status.CanRegisterPayment() {
		return shared.NewDomainError("INVALID_STATE", "Cancelled boleto cannot be paid")
	}
	if amount.Amount().LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	paid := amount.Amount()
	b.AmountPaid = &paid
	b.PaidAt = &paymentDate
	b.Status = BoletoStatusPaid
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBoletoPaidEvent(b))

	return nil
}

// Cancel voids the boleto. A paid instrument is financially settled and
// cannot be voided.
func (b *Boleto) Cancel() error {
	if b.Status == BoletoStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Paid boleto cannot be cancelled")
	}

	now := time.Now()
	b.CancelledAt = &now
	b.Status = BoletoStatusCancelled
	b.UpdatedAt = now
	b.IncrementVersion()

	b.AddDomainEvent(NewBoletoCancelledEvent(b))

	return nil
}

// GetAmountMoney returns the amount due as Money
func (b *Boleto) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(b.Amount)
}

// GetAmountPaidMoney returns the amount actually paid as Money, or zero when unpaid
func (b *Boleto) GetAmountPaidMoney() valueobject.Money {
	if b.AmountPaid == nil {
		return valueobject.ZeroBRL()
	}
	return valueobject.NewMoneyBRL(*b.AmountPaid)
}

// IsRegistered returns true once bank identifiers have been assigned
func (b *Boleto) IsRegistered() bool {
	return b.RegisteredAt != nil
}

// IsPaid returns true if the boleto is paid
func (b *Boleto) IsPaid() bool {
	return b.Status == BoletoStatusPaid
}

// IsCancelled returns true if the boleto is cancelled
func (b *Boleto) IsCancelled() bool {
	return b.Status == BoletoStatusCancelled
}

// IsPastDue reports whether the given day is past the due date,
// regardless of status.
func (b *Boleto) IsPastDue(today time.Time) bool {
	return truncateToDay(today).After(truncateToDay(b.DueDate))
}
