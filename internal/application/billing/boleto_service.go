package billing

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// BoletoService handles boleto billing operations
type BoletoService struct {
	boletoRepo     billing.BoletoRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewBoletoService creates a new BoletoService
func NewBoletoService(boletoRepo billing.BoletoRepository) *BoletoService {
	return &BoletoService{
		boletoRepo: boletoRepo,
		now:        time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *BoletoService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the service clock, used by tests and the scheduler
func (s *BoletoService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BoletoService) publishEvents(ctx context.Context, b *billing.Boleto) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range b.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	b.ClearDomainEvents()
}

// Create generates a new boleto for a unit
func (s *BoletoService) Create(ctx context.Context, condominiumID uuid.UUID, req CreateBoletoRequest) (*BoletoResponse, error) {
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
	}

	number, err := s.boletoRepo.NextBoletoNumber(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	boleto, err := billing.NewBoleto(condominiumID, number, unitID, req.Description,
		valueobject.NewMoneyBRL(req.Amount), req.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.boletoRepo.Save(ctx, boleto); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, boleto)

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// GetByID retrieves a boleto scoped to the condominium
func (s *BoletoService) GetByID(ctx context.Context, condominiumID, boletoID uuid.UUID) (*BoletoResponse, error) {
	boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
	if err != nil {
		return nil, err
	}
	response := ToBoletoResponse(boleto)
	return &response, nil
}

// List returns boletos for the condominium with paging
func (s *BoletoService) List(ctx context.Context, condominiumID uuid.UUID, filter BoletoListFilter) ([]BoletoResponse, int64, error) {
	domainFilter := billing.BoletoFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.Limit > 0 {
		domainFilter.PageSize = filter.Limit
	}
	if filter.UnitID != "" {
		unitID, err := uuid.Parse(filter.UnitID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
		}
		domainFilter.UnitID = &unitID
	}
	if filter.Status != "" {
		status := billing.BoletoStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown boleto status")
		}
		domainFilter.Status = &status
	}

	boletos, err := s.boletoRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.boletoRepo.CountForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToBoletoResponses(boletos), total, nil
}

// Register stores the bank identifiers and moves the boleto to Registered.
// Registration is rejected when the due date is closer than the minimum
// float of three calendar days.
func (s *BoletoService) Register(ctx context.Context, condominiumID, boletoID uuid.UUID, req RegisterBoletoRequest) (*BoletoResponse, error) {
	boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
	if err != nil {
		return nil, err
	}

	if err := boleto.Register(req.LinhaDigitavel, req.NossoNumero, req.CodigoBanco, s.now()); err != nil {
		return nil, err
	}

	if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, boleto)

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// Send marks a registered boleto as delivered to the resident
func (s *BoletoService) Send(ctx context.Context, condominiumID, boletoID uuid.UUID) (*BoletoResponse, error) {
	boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
	if err != nil {
		return nil, err
	}

	if err := boleto.Send(s.now()); err != nil {
		return nil, err
	}

	if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, boleto)

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// RegisterPayment records a payment against the boleto. Payments can
// arrive out of band (bank transfer, cash at the office) from any state
// except Cancelled.
func (s *BoletoService) RegisterPayment(ctx context.Context, condominiumID, boletoID uuid.UUID, req PayBoletoRequest) (*BoletoResponse, error) {
	boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
	if err != nil {
		return nil, err
	}

	paymentDate := s.now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	if err := boleto.RegisterPayment(valueobject.NewMoneyBRL(req.Amount), paymentDate); err != nil {
		return nil, err
	}

	if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, boleto)

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// Cancel voids a boleto that was not paid
func (s *BoletoService) Cancel(ctx context.Context, condominiumID, boletoID uuid.UUID) (*BoletoResponse, error) {
	boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
	if err != nil {
		return nil, err
	}

	if err := boleto.Cancel(); err != nil {
		return nil, err
	}

	if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, boleto)

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// MarkOverdueSweep transitions every sent boleto whose due date has
// passed to Overdue. Safe to run repeatedly; boletos already overdue or
// not yet due are skipped by the aggregate itself.
func (s *BoletoService) MarkOverdueSweep(ctx context.Context, condominiumID uuid.UUID) (*OverdueSweepResult, error) {
	today := s.now()
	candidates, err := s.boletoRepo.FindDueForOverdueSweep(ctx, condominiumID, today)
	if err != nil {
		return nil, err
	}

	result := &OverdueSweepResult{Checked: len(candidates)}
	for _, boleto := range candidates {
		if !boleto.MarkOverdue(today) {
			continue
		}
		if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
			return result, err
		}
		s.publishEvents(ctx, boleto)
		result.Marked++
	}

	return result, nil
}
