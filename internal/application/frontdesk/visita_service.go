package frontdesk

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VisitaService manages visitor flow at the front desk
type VisitaService struct {
	visitaRepo     frontdesk.VisitaRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewVisitaService creates a new visit service
func NewVisitaService(visitaRepo frontdesk.VisitaRepository) *VisitaService {
	return &VisitaService{
		visitaRepo: visitaRepo,
		now:        time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *VisitaService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *VisitaService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *VisitaService) publishEvents(ctx context.Context, visita *frontdesk.Visita) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range visita.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	visita.ClearDomainEvents()
}

// Expect pre-authorizes a visit on behalf of a resident
func (s *VisitaService) Expect(ctx context.Context, condominiumID uuid.UUID, req ExpectVisitaRequest) (*VisitaResponse, error) {
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
	}
	authorizedBy, err := uuid.Parse(req.AuthorizedBy)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	visita, err := frontdesk.NewExpectedVisita(condominiumID, unitID, authorizedBy, req.VisitorName, req.VisitorDoc, req.ExpectedAt)
	if err != nil {
		return nil, err
	}
	visita.Notes = req.Notes

	if err := s.visitaRepo.Save(ctx, visita); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, visita)
	return ToVisitaResponse(visita), nil
}

// WalkIn registers and checks in an unannounced visitor
func (s *VisitaService) WalkIn(ctx context.Context, condominiumID uuid.UUID, req WalkInVisitaRequest) (*VisitaResponse, error) {
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
	}
	registeredBy, err := uuid.Parse(req.RegisteredBy)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	visita, err := frontdesk.NewWalkInVisita(condominiumID, unitID, registeredBy, req.VisitorName, req.VisitorDoc, s.now())
	if err != nil {
		return nil, err
	}
	visita.Notes = req.Notes

	if err := s.visitaRepo.Save(ctx, visita); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, visita)
	return ToVisitaResponse(visita), nil
}

// CheckIn marks an expected visitor as arrived
func (s *VisitaService) CheckIn(ctx context.Context, condominiumID uuid.UUID, id, registeredBy string) (*VisitaResponse, error) {
	porteiroID, err := uuid.Parse(registeredBy)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}
	return s.mutate(ctx, condominiumID, id, func(visita *frontdesk.Visita) error {
		return visita.CheckIn(porteiroID, s.now())
	})
}

// CheckOut marks a visitor as departed
func (s *VisitaService) CheckOut(ctx context.Context, condominiumID uuid.UUID, id string) (*VisitaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(visita *frontdesk.Visita) error {
		return visita.CheckOut(s.now())
	})
}

// Cancel cancels a pre-authorized visit that never happened
func (s *VisitaService) Cancel(ctx context.Context, condominiumID uuid.UUID, id string) (*VisitaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(visita *frontdesk.Visita) error {
		return visita.Cancel()
	})
}

// GetByID retrieves a visit
func (s *VisitaService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string) (*VisitaResponse, error) {
	visitaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid visit ID format")
	}
	visita, err := s.visitaRepo.FindByIDForCondo(ctx, condominiumID, visitaID)
	if err != nil {
		return nil, err
	}
	return ToVisitaResponse(visita), nil
}

// List retrieves visits for a condominium
func (s *VisitaService) List(ctx context.Context, condominiumID uuid.UUID, filter VisitaListFilter) ([]*VisitaResponse, error) {
	domainFilter := frontdesk.VisitaFilter{From: filter.From, To: filter.To}

	if filter.UnitID != "" {
		unitID, err := uuid.Parse(filter.UnitID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
		}
		domainFilter.UnitID = &unitID
	}
	if filter.Status != "" {
		status := frontdesk.VisitaStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown visit status: "+filter.Status)
		}
		domainFilter.Status = &status
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	domainFilter.Limit = pageSize
	domainFilter.Offset = (page - 1) * pageSize

	visitas, err := s.visitaRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToVisitaResponses(visitas), nil
}

func (s *VisitaService) mutate(ctx context.Context, condominiumID uuid.UUID, id string, fn func(*frontdesk.Visita) error) (*VisitaResponse, error) {
	visitaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid visit ID format")
	}

	visita, err := s.visitaRepo.FindByIDForCondo(ctx, condominiumID, visitaID)
	if err != nil {
		return nil, err
	}

	if err := fn(visita); err != nil {
		return nil, err
	}

	if err := s.visitaRepo.Save(ctx, visita); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, visita)
	return ToVisitaResponse(visita), nil
}
