package reservation

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReservaService handles reservation requests and their lifecycle
type ReservaService struct {
	espacoRepo     reservation.EspacoRepository
	reservaRepo    reservation.ReservaRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewReservaService creates a new ReservaService
func NewReservaService(espacoRepo reservation.EspacoRepository, reservaRepo reservation.ReservaRepository) *ReservaService {
	return &ReservaService{
		espacoRepo:  espacoRepo,
		reservaRepo: reservaRepo,
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ReservaService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the service clock, used by tests
func (s *ReservaService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ReservaService) publishEvents(ctx context.Context, r *reservation.Reserva) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range r.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	r.ClearDomainEvents()
}

// Request validates the requested window against the rules in force and
// creates the reservation: Pending when the area requires approval,
// Confirmed otherwise. The slot must be free of pending and confirmed
// reservations.
func (s *ReservaService) Request(ctx context.Context, condominiumID, requestedBy uuid.UUID, req RequestReservaRequest) (*ReservaResponse, error) {
	espacoID, err := uuid.Parse(req.EspacoID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ESPACO", "Common area ID is not a valid UUID")
	}
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
	}

	espaco, err := s.espacoRepo.FindByIDForCondo(ctx, condominiumID, espacoID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthCount, err := s.reservaRepo.CountForUnitInMonth(ctx, espacoID, unitID, req.StartsAt)
	if err != nil {
		return nil, err
	}
	if err := espaco.CheckWindow(req.StartsAt, req.EndsAt, now, monthCount); err != nil {
		return nil, err
	}

	blocking, err := s.reservaRepo.FindBlockingInWindow(ctx, espacoID, req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}
	if len(blocking) > 0 {
		return nil, shared.NewDomainError("SLOT_TAKEN", "The requested window conflicts with an existing reservation")
	}

	reserva, err := reservation.NewReserva(espaco, unitID, requestedBy, req.StartsAt, req.EndsAt, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.reservaRepo.Save(ctx, reserva); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, reserva)

	response := ToReservaResponse(reserva)
	return &response, nil
}

// GetByID retrieves a reservation scoped to the condominium
func (s *ReservaService) GetByID(ctx context.Context, condominiumID, reservaID uuid.UUID) (*ReservaResponse, error) {
	reserva, err := s.reservaRepo.FindByIDForCondo(ctx, condominiumID, reservaID)
	if err != nil {
		return nil, err
	}
	response := ToReservaResponse(reserva)
	return &response, nil
}

// List returns reservations for the condominium with paging
func (s *ReservaService) List(ctx context.Context, condominiumID uuid.UUID, filter ReservaListFilter) ([]ReservaResponse, int64, error) {
	domainFilter := reservation.ReservaFilter{
		Limit: filter.Limit,
	}
	if filter.Page > 1 && filter.Limit > 0 {
		domainFilter.Offset = (filter.Page - 1) * filter.Limit
	}
	if filter.EspacoID != "" {
		espacoID, err := uuid.Parse(filter.EspacoID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_ESPACO", "Common area ID is not a valid UUID")
		}
		domainFilter.EspacoID = &espacoID
	}
	if filter.UnitID != "" {
		unitID, err := uuid.Parse(filter.UnitID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_UNIT", "Unit ID is not a valid UUID")
		}
		domainFilter.UnitID = &unitID
	}
	if filter.Status != "" {
		status := reservation.ReservaStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown reservation status")
		}
		domainFilter.Status = &status
	}

	reservas, err := s.reservaRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reservaRepo.CountForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReservaResponse, 0, len(reservas))
	for _, r := range reservas {
		responses = append(responses, ToReservaResponse(r))
	}
	return responses, total, nil
}

// Approve confirms a pending reservation
func (s *ReservaService) Approve(ctx context.Context, condominiumID, reservaID, decidedBy uuid.UUID) (*ReservaResponse, error) {
	reserva, err := s.reservaRepo.FindByIDForCondo(ctx, condominiumID, reservaID)
	if err != nil {
		return nil, err
	}

	if err := reserva.Approve(decidedBy); err != nil {
		return nil, err
	}

	if err := s.reservaRepo.SaveWithLock(ctx, reserva); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, reserva)

	response := ToReservaResponse(reserva)
	return &response, nil
}

// Reject declines a pending reservation
func (s *ReservaService) Reject(ctx context.Context, condominiumID, reservaID, decidedBy uuid.UUID, req RejectReservaRequest) (*ReservaResponse, error) {
	reserva, err := s.reservaRepo.FindByIDForCondo(ctx, condominiumID, reservaID)
	if err != nil {
		return nil, err
	}

	if err := reserva.Reject(decidedBy, req.Reason); err != nil {
		return nil, err
	}

	if err := s.reservaRepo.SaveWithLock(ctx, reserva); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, reserva)

	response := ToReservaResponse(reserva)
	return &response, nil
}

// Cancel cancels a reservation on behalf of the resident, honoring the
// cancellation notice snapshotted at creation. Only the requesting user
// may cancel through this path; staff use CancelByAdmin.
func (s *ReservaService) Cancel(ctx context.Context, condominiumID, reservaID, cancelledBy uuid.UUID) (*ReservaResponse, error) {
	reserva, err := s.reservaRepo.FindByIDForCondo(ctx, condominiumID, reservaID)
	if err != nil {
		return nil, err
	}

	if reserva.RequestedBy != cancelledBy {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the requesting user can cancel the reservation")
	}

	if err := reserva.Cancel(s.now()); err != nil {
		return nil, err
	}

	if err := s.reservaRepo.SaveWithLock(ctx, reserva); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, reserva)

	response := ToReservaResponse(reserva)
	return &response, nil
}

// CancelByAdmin cancels a reservation without the notice guard
func (s *ReservaService) CancelByAdmin(ctx context.Context, condominiumID, reservaID, decidedBy uuid.UUID) (*ReservaResponse, error) {
	reserva, err := s.reservaRepo.FindByIDForCondo(ctx, condominiumID, reservaID)
	if err != nil {
		return nil, err
	}

	if err := reserva.CancelByAdmin(decidedBy, s.now()); err != nil {
		return nil, err
	}

	if err := s.reservaRepo.SaveWithLock(ctx, reserva); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, reserva)

	response := ToReservaResponse(reserva)
	return &response, nil
}
