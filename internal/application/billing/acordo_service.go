package billing

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/billing"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// AcordoService handles installment agreement operations
type AcordoService struct {
	acordoRepo     billing.AcordoRepository
	boletoRepo     billing.BoletoRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewAcordoService creates a new AcordoService
func NewAcordoService(acordoRepo billing.AcordoRepository, boletoRepo billing.BoletoRepository) *AcordoService {
	return &AcordoService{
		acordoRepo: acordoRepo,
		boletoRepo: boletoRepo,
		now:        time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *AcordoService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the service clock, used by tests
func (s *AcordoService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *AcordoService) publishEvents(ctx context.Context, a *billing.Acordo) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range a.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	a.ClearDomainEvents()
}

// Create opens an installment agreement. Boletos listed as covered by
// the agreement are cancelled; their debt is replaced by the schedule.
func (s *AcordoService) Create(ctx context.Context, condominiumID uuid.UUID, req CreateAcordoRequest) (*AcordoResponse, error) {
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
	}

	covered := make([]*billing.Boleto, 0, len(req.CoveredBoletoIDs))
	for _, rawID := range req.CoveredBoletoIDs {
		boletoID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_BOLETO", "Covered boleto ID is not a valid UUID")
		}
		boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, boletoID)
		if err != nil {
			return nil, err
		}
		if boleto.UnitID != unitID {
			return nil, shared.NewDomainError("INVALID_BOLETO", "Covered boleto belongs to another unit")
		}
		covered = append(covered, boleto)
	}

	number, err := s.acordoRepo.NextAcordoNumber(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	acordo, err := billing.NewAcordo(condominiumID, number, unitID,
		valueobject.NewMoneyBRL(req.TotalAmount), valueobject.NewMoneyBRL(req.DownPayment),
		req.Installments, req.FirstDueDate)
	if err != nil {
		return nil, err
	}

	// cancel the covered boletos before persisting the agreement, so a
	// boleto already paid aborts the whole operation
	for _, boleto := range covered {
		if err := boleto.Cancel(); err != nil {
			return nil, err
		}
	}

	if err := s.acordoRepo.Save(ctx, acordo); err != nil {
		return nil, err
	}
	for _, boleto := range covered {
		if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
			return nil, err
		}
	}
	s.publishEvents(ctx, acordo)

	response := ToAcordoResponse(acordo)
	return &response, nil
}

// GetByID retrieves an agreement scoped to the condominium
func (s *AcordoService) GetByID(ctx context.Context, condominiumID, acordoID uuid.UUID) (*AcordoResponse, error) {
	acordo, err := s.acordoRepo.FindByIDForCondo(ctx, condominiumID, acordoID)
	if err != nil {
		return nil, err
	}
	response := ToAcordoResponse(acordo)
	return &response, nil
}

// ListByUnit returns the unit's agreements
func (s *AcordoService) ListByUnit(ctx context.Context, condominiumID, unitID uuid.UUID) ([]AcordoResponse, error) {
	acordos, err := s.acordoRepo.FindByUnit(ctx, condominiumID, unitID, billing.AcordoFilter{Filter: shared.DefaultFilter()})
	if err != nil {
		return nil, err
	}

	responses := make([]AcordoResponse, 0, len(acordos))
	for i := range acordos {
		responses = append(responses, ToAcordoResponse(&acordos[i]))
	}
	return responses, nil
}

// IssueParcelaBoleto generates a boleto for one installment and links it
func (s *AcordoService) IssueParcelaBoleto(ctx context.Context, condominiumID, acordoID uuid.UUID, sequence int, description string) (*BoletoResponse, error) {
	acordo, err := s.acordoRepo.FindByIDForCondo(ctx, condominiumID, acordoID)
	if err != nil {
		return nil, err
	}

	var parcela *billing.Parcela
	for i := range acordo.Parcelas {
		if acordo.Parcelas[i].Sequence == sequence {
			parcela = &acordo.Parcelas[i]
			break
		}
	}
	if parcela == nil {
		return nil, shared.NewDomainError("PARCELA_NOT_FOUND", "Agreement has no such installment")
	}

	number, err := s.boletoRepo.NextBoletoNumber(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	boleto, err := billing.NewBoleto(condominiumID, number, acordo.UnitID, description,
		parcela.GetAmountMoney(), parcela.DueDate)
	if err != nil {
		return nil, err
	}

	if err := acordo.LinkBoleto(sequence, boleto.ID); err != nil {
		return nil, err
	}

	if err := s.boletoRepo.Save(ctx, boleto); err != nil {
		return nil, err
	}
	if err := s.acordoRepo.Save(ctx, acordo); err != nil {
		return nil, err
	}

	response := ToBoletoResponse(boleto)
	return &response, nil
}

// PayParcela marks an installment paid. When the installment has a
// linked boleto the payment is registered on it too, and once every
// installment is paid the agreement completes.
func (s *AcordoService) PayParcela(ctx context.Context, condominiumID, acordoID uuid.UUID, sequence int) (*AcordoResponse, error) {
	acordo, err := s.acordoRepo.FindByIDForCondo(ctx, condominiumID, acordoID)
	if err != nil {
		return nil, err
	}

	paymentDate := s.now()
	if err := acordo.PayParcela(sequence, paymentDate); err != nil {
		return nil, err
	}

	for i := range acordo.Parcelas {
		p := acordo.Parcelas[i]
		if p.Sequence != sequence || p.BoletoID == nil {
			continue
		}
		boleto, err := s.boletoRepo.FindByIDForCondo(ctx, condominiumID, *p.BoletoID)
		if err != nil {
			return nil, err
		}
		if err := boleto.RegisterPayment(p.GetAmountMoney(), paymentDate); err != nil {
			return nil, err
		}
		if err := s.boletoRepo.SaveWithLock(ctx, boleto); err != nil {
			return nil, err
		}
	}

	if err := s.acordoRepo.Save(ctx, acordo); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, acordo)

	response := ToAcordoResponse(acordo)
	return &response, nil
}

// Cancel terminates an active agreement
func (s *AcordoService) Cancel(ctx context.Context, condominiumID, acordoID uuid.UUID) (*AcordoResponse, error) {
	acordo, err := s.acordoRepo.FindByIDForCondo(ctx, condominiumID, acordoID)
	if err != nil {
		return nil, err
	}

	if err := acordo.Cancel(); err != nil {
		return nil, err
	}

	if err := s.acordoRepo.Save(ctx, acordo); err != nil {
		return nil, err
	}

	response := ToAcordoResponse(acordo)
	return &response, nil
}
