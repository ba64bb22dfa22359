package billing

import (
	"fmt"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AcordoStatus represents the status of an installment agreement
type AcordoStatus string

const (
	AcordoStatusActive    AcordoStatus = "ACTIVE"    // Installments outstanding
	AcordoStatusCompleted AcordoStatus = "COMPLETED" // All installments paid
	AcordoStatusCancelled AcordoStatus = "CANCELLED" // Agreement voided
)

// IsValid checks if the status is a valid AcordoStatus
func (s AcordoStatus) IsValid() bool {
	switch s {
	case AcordoStatusActive, AcordoStatusCompleted, AcordoStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of AcordoStatus
func (s AcordoStatus) String() string {
	return string(s)
}

// Parcela is one installment within an Acordo. It may later be backed
// by its own boleto and is marked paid independently.
type Parcela struct {
	ID       uuid.UUID       `json:"id"`
	Sequence int             `json:"sequence"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	Paid     bool            `json:"paid"`
	PaidAt   *time.Time      `json:"paid_at"`
	BoletoID *uuid.UUID      `json:"boleto_id"`
}

// GetAmountMoney returns the installment amount as Money
func (p *Parcela) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(p.Amount)
}

// Acordo is a debt-restructuring agreement for one unit: a down payment
// plus N monthly installments whose amounts sum exactly to the total.
type Acordo struct {
	shared.CondoAggregateRoot
	AcordoNumber string          `json:"acordo_number"`
	UnitID       uuid.UUID       `json:"unit_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	DownPayment  decimal.Decimal `json:"down_payment"`
	Installments int             `json:"installments"`
	Status       AcordoStatus    `json:"status"`
	Parcelas     []Parcela       `json:"parcelas"`
}

// NewAcordo creates an agreement and generates its installment schedule.
// The financed amount (total minus down payment) is divided into n
// monthly installments starting at firstDueDate; when the division does
// not come out even in cents, the last installment absorbs the remainder
// so the sum is exact.
func NewAcordo(
	condominiumID uuid.UUID,
	acordoNumber string,
	unitID uuid.UUID,
	total valueobject.Money,
	downPayment valueobject.Money,
	installments int,
	firstDueDate time.Time,
) (*Acordo, error) {
	if acordoNumber == "" {
		return nil, shared.NewDomainError("INVALID_ACORDO_NUMBER", "Agreement number cannot be empty")
	}
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID cannot be empty")
	}
	if total.Amount().LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount must be positive")
	}
	if downPayment.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Down payment cannot be negative")
	}
	if downPayment.Amount().GreaterThan(total.Amount()) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Down payment cannot exceed the total amount")
	}
	if !total.Amount().Equal(total.Amount().Truncate(2)) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot have sub-cent precision")
	}
	if !downPayment.Amount().Equal(downPayment.Amount().Truncate(2)) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Down payment cannot have sub-cent precision")
	}
	if installments <= 0 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENTS", "Installment count must be positive")
	}
	if firstDueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "First installment due date is required")
	}

	financed, err := total.Subtract(downPayment)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_AMOUNT", err.Error())
	}

	amounts, err := financed.SplitInstallments(installments)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INSTALLMENTS", err.Error())
	}

	firstDue := truncateToDay(firstDueDate)
	parcelas := make([]Parcela, installments)
	for i := range parcelas {
		parcelas[i] = Parcela{
			ID:       uuid.New(),
			Sequence: i + 1,
			Amount:   amounts[i].Amount(),
			DueDate:  firstDue.AddDate(0, i, 0),
		}
	}

	a := &Acordo{
		CondoAggregateRoot: shared.NewCondoAggregateRoot(condominiumID),
		AcordoNumber:       acordoNumber,
		UnitID:             unitID,
		TotalAmount:        total.Amount(),
		DownPayment:        downPayment.Amount(),
		Installments:       installments,
		Status:             AcordoStatusActive,
		Parcelas:           parcelas,
	}

	a.AddDomainEvent(NewAcordoCreatedEvent(a))

	return a, nil
}

// LinkBoleto attaches a boleto to the installment with the given sequence number
func (a *Acordo) LinkBoleto(sequence int, boletoID uuid.UUID) error {
	p, err := a.parcela(sequence)
	if err != nil {
		return err
	}
	if p.Paid {
		return shared.NewDomainError("PARCELA_ALREADY_PAID", fmt.Sprintf("Installment %d is already paid", sequence))
	}
	if p.BoletoID != nil {
		return shared.NewDomainError("ALREADY_LINKED", fmt.Sprintf("Installment %d already has a boleto", sequence))
	}

	p.BoletoID = &boletoID
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// PayParcela marks the installment with the given sequence number as paid.
// When the last outstanding installment is paid the agreement completes.
func (a *Acordo) PayParcela(sequence int, paymentDate time.Time) error {
	if a.Status != AcordoStatusActive {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot pay installment of agreement in %s status", a.Status))
	}

	p, err := a.parcela(sequence)
	if err != nil {
		return err
	}
	if p.Paid {
		return shared.NewDomainError("ALREADY_PAID", fmt.Sprintf("Installment %d is already paid", sequence))
	}

	p.Paid = true
	p.PaidAt = &paymentDate

	if a.allParcelasPaid() {
		a.Status = AcordoStatusCompleted
		a.AddDomainEvent(NewAcordoCompletedEvent(a))
	}

	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Cancel voids an agreement that still has outstanding installments
func (a *Acordo) Cancel() error {
	if a.Status != AcordoStatusActive {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel agreement in %s status", a.Status))
	}

	a.Status = AcordoStatusCancelled
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// ParcelasTotal returns the sum of all installment amounts
func (a *Acordo) ParcelasTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range a.Parcelas {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// GetTotalAmountMoney returns the total amount as Money
func (a *Acordo) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(a.TotalAmount)
}

// GetDownPaymentMoney returns the down payment as Money
func (a *Acordo) GetDownPaymentMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(a.DownPayment)
}

// PaidCount returns the number of installments already paid
func (a *Acordo) PaidCount() int {
	count := 0
	for _, p := range a.Parcelas {
		if p.Paid {
			count++
		}
	}
	return count
}

func (a *Acordo) parcela(sequence int) (*Parcela, error) {
	for i := range a.Parcelas {
		if a.Parcelas[i].Sequence == sequence {
			return &a.Parcelas[i], nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Installment %d not found", sequence))
}

func (a *Acordo) allParcelasPaid() bool {
	for _, p := range a.Parcelas {
		if !p.Paid {
			return false
		}
	}
	return true
}

// Acordo event types
const (
	EventTypeAcordoCreated   = "billing.acordo.created"
	EventTypeAcordoCompleted = "billing.acordo.completed"
)

const acordoAggregateType = "Acordo"

// AcordoEvent carries the agreement snapshot for acordo events
type AcordoEvent struct {
	shared.BaseDomainEvent
	AcordoNumber string       `json:"acordo_number"`
	UnitID       string       `json:"unit_id"`
	Status       AcordoStatus `json:"status"`
	TotalAmount  string       `json:"total_amount"`
	Installments int          `json:"installments"`
}

func newAcordoEvent(eventType string, a *Acordo) *AcordoEvent {
	return &AcordoEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, acordoAggregateType, a.ID, a.CondominiumID),
		AcordoNumber:    a.AcordoNumber,
		UnitID:          a.UnitID.String(),
		Status:          a.Status,
		TotalAmount:     a.TotalAmount.String(),
		Installments:    a.Installments,
	}
}

// NewAcordoCreatedEvent creates the event emitted when an agreement is created
func NewAcordoCreatedEvent(a *Acordo) *AcordoEvent {
	return newAcordoEvent(EventTypeAcordoCreated, a)
}

// NewAcordoCompletedEvent creates the event emitted when every installment is paid
func NewAcordoCompletedEvent(a *Acordo) *AcordoEvent {
	return newAcordoEvent(EventTypeAcordoCompleted, a)
}
