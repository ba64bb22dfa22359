package reservation

import (
	"context"

	"github.com/condo/backend/internal/domain/reservation"
	"github.com/google/uuid"
)

// EspacoService manages common areas and their reservation rules
type EspacoService struct {
	espacoRepo reservation.EspacoRepository
}

// NewEspacoService creates a new EspacoService
func NewEspacoService(espacoRepo reservation.EspacoRepository) *EspacoService {
	return &EspacoService{espacoRepo: espacoRepo}
}

// Create registers a new common area
func (s *EspacoService) Create(ctx context.Context, condominiumID uuid.UUID, req CreateEspacoRequest) (*EspacoResponse, error) {
	espaco, err := reservation.NewEspacoComum(condominiumID, req.Name, req.Description, req.Capacity)
	if err != nil {
		return nil, err
	}

	if err := s.espacoRepo.Save(ctx, espaco); err != nil {
		return nil, err
	}

	response := ToEspacoResponse(espaco)
	return &response, nil
}

// ConfigureRules replaces the rule configuration of a common area.
// Existing reservations keep the rules snapshotted at their creation.
func (s *EspacoService) ConfigureRules(ctx context.Context, condominiumID, espacoID uuid.UUID, req ConfigureEspacoRequest) (*EspacoResponse, error) {
	espaco, err := s.espacoRepo.FindByIDForCondo(ctx, condominiumID, espacoID)
	if err != nil {
		return nil, err
	}

	cfg := reservation.RuleConfig{
		MinReservationMinutes: req.MinReservationMinutes,
		MaxReservationMinutes: req.MaxReservationMinutes,
		OperatingStartMinute:  req.OperatingStartMinute,
		OperatingEndMinute:    req.OperatingEndMinute,
		MaxAdvanceDays:        req.MaxAdvanceDays,
		MinCancelNoticeHours:  req.MinCancelNoticeHours,
		MaxMonthlyPerUnit:     req.MaxMonthlyPerUnit,
		RequiresApproval:      req.RequiresApproval,
		Fee:                   req.Fee,
	}
	if err := espaco.ConfigureRules(cfg); err != nil {
		return nil, err
	}

	if err := s.espacoRepo.Save(ctx, espaco); err != nil {
		return nil, err
	}

	response := ToEspacoResponse(espaco)
	return &response, nil
}

// GetByID retrieves a common area
func (s *EspacoService) GetByID(ctx context.Context, condominiumID, espacoID uuid.UUID) (*EspacoResponse, error) {
	espaco, err := s.espacoRepo.FindByIDForCondo(ctx, condominiumID, espacoID)
	if err != nil {
		return nil, err
	}
	response := ToEspacoResponse(espaco)
	return &response, nil
}

// List returns the condominium's common areas
func (s *EspacoService) List(ctx context.Context, condominiumID uuid.UUID, activeOnly bool) ([]EspacoResponse, error) {
	espacos, err := s.espacoRepo.FindAllForCondo(ctx, condominiumID, reservation.EspacoFilter{ActiveOnly: activeOnly})
	if err != nil {
		return nil, err
	}

	responses := make([]EspacoResponse, 0, len(espacos))
	for _, e := range espacos {
		responses = append(responses, ToEspacoResponse(e))
	}
	return responses, nil
}

// SetActive activates or deactivates a common area
func (s *EspacoService) SetActive(ctx context.Context, condominiumID, espacoID uuid.UUID, active bool) (*EspacoResponse, error) {
	espaco, err := s.espacoRepo.FindByIDForCondo(ctx, condominiumID, espacoID)
	if err != nil {
		return nil, err
	}

	if active {
		espaco.Activate()
	} else {
		espaco.Deactivate()
	}

	if err := s.espacoRepo.Save(ctx, espaco); err != nil {
		return nil, err
	}

	response := ToEspacoResponse(espaco)
	return &response, nil
}
