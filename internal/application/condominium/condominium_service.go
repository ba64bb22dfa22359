package condominium

import (
	"context"

	"github.com/condo/backend/internal/domain/condominium"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CondominiumService manages condominium registration and settings
type CondominiumService struct {
	condoRepo   condominium.CondominiumRepository
	unidadeRepo condominium.UnidadeRepository
}

// NewCondominiumService creates a new CondominiumService
func NewCondominiumService(condoRepo condominium.CondominiumRepository, unidadeRepo condominium.UnidadeRepository) *CondominiumService {
	return &CondominiumService{
		condoRepo:   condoRepo,
		unidadeRepo: unidadeRepo,
	}
}

// Create registers a new condominium
func (s *CondominiumService) Create(ctx context.Context, req CreateCondominiumRequest) (*CondominiumResponse, error) {
	exists, err := s.condoRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CODE_TAKEN", "A condominium with this code already exists")
	}

	condo, err := condominium.NewCondominium(req.Code, req.Name, req.CNPJ)
	if err != nil {
		return nil, err
	}

	if err := s.condoRepo.Save(ctx, condo); err != nil {
		return nil, err
	}

	response := ToCondominiumResponse(condo)
	return &response, nil
}

// GetByID retrieves a condominium
func (s *CondominiumService) GetByID(ctx context.Context, id uuid.UUID) (*CondominiumResponse, error) {
	condo, err := s.condoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCondominiumResponse(condo)
	return &response, nil
}

// List returns registered condominiums
func (s *CondominiumService) List(ctx context.Context, limit, offset int) ([]CondominiumResponse, int64, error) {
	condos, err := s.condoRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.condoRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CondominiumResponse, 0, len(condos))
	for _, c := range condos {
		responses = append(responses, ToCondominiumResponse(c))
	}
	return responses, total, nil
}

// UpdateContact updates contact information
func (s *CondominiumService) UpdateContact(ctx context.Context, id uuid.UUID, req UpdateContactRequest) (*CondominiumResponse, error) {
	condo, err := s.condoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	condo.UpdateContact(req.ContactName, req.ContactPhone, req.ContactEmail)

	if err := s.condoRepo.Save(ctx, condo); err != nil {
		return nil, err
	}

	response := ToCondominiumResponse(condo)
	return &response, nil
}

// UpdateSettings replaces the condominium settings
func (s *CondominiumService) UpdateSettings(ctx context.Context, id uuid.UUID, req UpdateSettingsRequest) (*CondominiumResponse, error) {
	condo, err := s.condoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	settings := condominium.CondominiumSettings{
		Timezone:            req.Timezone,
		Currency:            req.Currency,
		BoletoDueDay:        req.BoletoDueDay,
		LatePaymentFinePct:  req.LatePaymentFinePct,
		MonthlyInterestPct:  req.MonthlyInterestPct,
		VisitorLogRetention: req.VisitorLogRetention,
	}
	if err := condo.UpdateSettings(settings); err != nil {
		return nil, err
	}

	if err := s.condoRepo.Save(ctx, condo); err != nil {
		return nil, err
	}

	response := ToCondominiumResponse(condo)
	return &response, nil
}

// SetActive activates or deactivates a condominium
func (s *CondominiumService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*CondominiumResponse, error) {
	condo, err := s.condoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		err = condo.Activate()
	} else {
		err = condo.Deactivate()
	}
	if err != nil {
		return nil, err
	}

	if err := s.condoRepo.Save(ctx, condo); err != nil {
		return nil, err
	}

	response := ToCondominiumResponse(condo)
	return &response, nil
}

// CreateUnidade registers a unit. The bloco and numero pair must be
// unique within the condominium.
func (s *CondominiumService) CreateUnidade(ctx context.Context, condominiumID uuid.UUID, req CreateUnidadeRequest) (*UnidadeResponse, error) {
	existing, err := s.unidadeRepo.FindByLabel(ctx, condominiumID, req.Bloco, req.Numero)
	if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("UNIT_TAKEN", "A unit with this bloco and numero already exists")
	}

	unidade, err := condominium.NewUnidade(condominiumID, req.Bloco, req.Numero, req.FracaoIdeal)
	if err != nil {
		return nil, err
	}

	if err := s.unidadeRepo.Save(ctx, unidade); err != nil {
		return nil, err
	}

	response := ToUnidadeResponse(unidade)
	return &response, nil
}

// ListUnidades returns the condominium's units
func (s *CondominiumService) ListUnidades(ctx context.Context, condominiumID uuid.UUID, filter condominium.UnidadeFilter) ([]UnidadeResponse, error) {
	unidades, err := s.unidadeRepo.FindAllForCondo(ctx, condominiumID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UnidadeResponse, 0, len(unidades))
	for _, u := range unidades {
		responses = append(responses, ToUnidadeResponse(u))
	}
	return responses, nil
}

// AssignOwner links a user as the unit owner
func (s *CondominiumService) AssignOwner(ctx context.Context, condominiumID, unidadeID, userID uuid.UUID) (*UnidadeResponse, error) {
	unidade, err := s.unidadeRepo.FindByIDForCondo(ctx, condominiumID, unidadeID)
	if err != nil {
		return nil, err
	}

	unidade.AssignOwner(userID)

	if err := s.unidadeRepo.Save(ctx, unidade); err != nil {
		return nil, err
	}

	response := ToUnidadeResponse(unidade)
	return &response, nil
}

// AssignTenant links a user as the renting resident of the unit
func (s *CondominiumService) AssignTenant(ctx context.Context, condominiumID, unidadeID, userID uuid.UUID) (*UnidadeResponse, error) {
	unidade, err := s.unidadeRepo.FindByIDForCondo(ctx, condominiumID, unidadeID)
	if err != nil {
		return nil, err
	}

	unidade.AssignTenant(userID)

	if err := s.unidadeRepo.Save(ctx, unidade); err != nil {
		return nil, err
	}

	response := ToUnidadeResponse(unidade)
	return &response, nil
}

// ListResidentUnitIDs returns the IDs of the units the user owns or rents
// within the condominium. Authorization checks use this to decide which
// units a resident may act on behalf of.
func (s *CondominiumService) ListResidentUnitIDs(ctx context.Context, condominiumID, userID uuid.UUID) ([]uuid.UUID, error) {
	unidades, err := s.unidadeRepo.FindByResident(ctx, condominiumID, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(unidades))
	for _, u := range unidades {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
