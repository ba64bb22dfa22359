package frontdesk

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EncomendaService manages packages received at the front desk
type EncomendaService struct {
	encomendaRepo  frontdesk.EncomendaRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewEncomendaService creates a new package service
func NewEncomendaService(encomendaRepo frontdesk.EncomendaRepository) *EncomendaService {
	return &EncomendaService{
		encomendaRepo: encomendaRepo,
		now:           time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *EncomendaService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *EncomendaService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *EncomendaService) publishEvents(ctx context.Context, encomenda *frontdesk.Encomenda) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range encomenda.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	encomenda.ClearDomainEvents()
}

// Receive registers a package dropped off at the front desk
func (s *EncomendaService) Receive(ctx context.Context, condominiumID uuid.UUID, req ReceiveEncomendaRequest) (*EncomendaResponse, error) {
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
	}
	receivedBy, err := uuid.Parse(req.ReceivedBy)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	encomenda, err := frontdesk.NewEncomenda(condominiumID, unitID, receivedBy, req.Description, req.Carrier, req.TrackingCode, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.encomendaRepo.Save(ctx, encomenda); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, encomenda)
	return s.toResponse(encomenda), nil
}

// Deliver hands a package to a resident
func (s *EncomendaService) Deliver(ctx context.Context, condominiumID uuid.UUID, id string, req DeliverEncomendaRequest) (*EncomendaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(encomenda *frontdesk.Encomenda) error {
		return encomenda.Deliver(req.DeliveredTo, s.now())
	})
}

// Return sends an unclaimed package back to the carrier
func (s *EncomendaService) Return(ctx context.Context, condominiumID uuid.UUID, id string, req ReturnEncomendaRequest) (*EncomendaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(encomenda *frontdesk.Encomenda) error {
		return encomenda.Return(s.now(), req.Reason)
	})
}

// GetByID retrieves a package
func (s *EncomendaService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string) (*EncomendaResponse, error) {
	encomendaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid package ID format")
	}
	encomenda, err := s.encomendaRepo.FindByIDForCondo(ctx, condominiumID, encomendaID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(encomenda), nil
}

// List retrieves packages for a condominium
func (s *EncomendaService) List(ctx context.Context, condominiumID uuid.UUID, filter EncomendaListFilter) ([]*EncomendaResponse, error) {
	domainFilter := frontdesk.EncomendaFilter{}

	if filter.UnitID != "" {
		unitID, err := uuid.Parse(filter.UnitID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
		}
		domainFilter.UnitID = &unitID
	}
	if filter.Status != "" {
		status := frontdesk.EncomendaStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown package status: "+filter.Status)
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

	encomendas, err := s.encomendaRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]*EncomendaResponse, len(encomendas))
	for i, e := range encomendas {
		responses[i] = s.toResponse(e)
	}
	return responses, nil
}

// ListPendingPickup lists packages waiting longer than the given number of days
func (s *EncomendaService) ListPendingPickup(ctx context.Context, condominiumID uuid.UUID, olderThanDays int) ([]*EncomendaResponse, error) {
	if olderThanDays < 0 {
		olderThanDays = 0
	}
	cutoff := s.now().AddDate(0, 0, -olderThanDays)

	encomendas, err := s.encomendaRepo.FindPendingOlderThan(ctx, condominiumID, cutoff)
	if err != nil {
		return nil, err
	}

	responses := make([]*EncomendaResponse, len(encomendas))
	for i, e := range encomendas {
		responses[i] = s.toResponse(e)
	}
	return responses, nil
}

func (s *EncomendaService) toResponse(e *frontdesk.Encomenda) *EncomendaResponse {
	return &EncomendaResponse{
		ID:           e.ID.String(),
		UnitID:       e.UnitID.String(),
		Description:  e.Description,
		Carrier:      e.Carrier,
		TrackingCode: e.TrackingCode,
		Status:       string(e.Status),
		ReceivedAt:   e.ReceivedAt,
		DeliveredAt:  e.DeliveredAt,
		DeliveredTo:  e.DeliveredTo,
		ReturnedAt:   e.ReturnedAt,
		DaysHeld:     e.DaysHeld(s.now()),
		Notes:        e.Notes,
	}
}

func (s *EncomendaService) mutate(ctx context.Context, condominiumID uuid.UUID, id string, fn func(*frontdesk.Encomenda) error) (*EncomendaResponse, error) {
	encomendaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid package ID format")
	}

	encomenda, err := s.encomendaRepo.FindByIDForCondo(ctx, condominiumID, encomendaID)
	if err != nil {
		return nil, err
	}

	if err := fn(encomenda); err != nil {
		return nil, err
	}

	if err := s.encomendaRepo.Save(ctx, encomenda); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, encomenda)
	return s.toResponse(encomenda), nil
}
