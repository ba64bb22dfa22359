package communication

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/communication"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AvisoService manages notices posted by the sindico
type AvisoService struct {
	avisoRepo      communication.AvisoRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewAvisoService creates a new notice service
func NewAvisoService(avisoRepo communication.AvisoRepository) *AvisoService {
	return &AvisoService{
		avisoRepo: avisoRepo,
		now:       time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *AvisoService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *AvisoService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *AvisoService) publishEvents(ctx context.Context, aviso *communication.Aviso) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range aviso.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	aviso.ClearDomainEvents()
}

// Create drafts a new notice
func (s *AvisoService) Create(ctx context.Context, condominiumID uuid.UUID, req CreateAvisoRequest) (*AvisoResponse, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	aviso, err := communication.NewAviso(condominiumID, authorID, req.Title, req.Body, communication.AvisoPriority(req.Priority))
	if err != nil {
		return nil, err
	}

	if err := s.avisoRepo.Save(ctx, aviso); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, aviso)
	return ToAvisoResponse(aviso), nil
}

// Publish makes a drafted notice visible to residents
func (s *AvisoService) Publish(ctx context.Context, condominiumID uuid.UUID, id string, req PublishAvisoRequest) (*AvisoResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(aviso *communication.Aviso) error {
		return aviso.Publish(s.now(), req.ExpiresAt)
	})
}

// Archive takes a published notice down
func (s *AvisoService) Archive(ctx context.Context, condominiumID uuid.UUID, id string) (*AvisoResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(aviso *communication.Aviso) error {
		return aviso.Archive(s.now())
	})
}

// GetByID retrieves a notice
func (s *AvisoService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string) (*AvisoResponse, error) {
	avisoID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid notice ID format")
	}
	aviso, err := s.avisoRepo.FindByIDForCondo(ctx, condominiumID, avisoID)
	if err != nil {
		return nil, err
	}
	return ToAvisoResponse(aviso), nil
}

// List retrieves notices for a condominium
func (s *AvisoService) List(ctx context.Context, condominiumID uuid.UUID, filter AvisoListFilter) ([]*AvisoResponse, error) {
	domainFilter := communication.AvisoFilter{VisibleOnly: filter.VisibleOnly}

	if filter.Status != "" {
		status := communication.AvisoStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown notice status: "+filter.Status)
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

	avisos, err := s.avisoRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]*AvisoResponse, len(avisos))
	for i, a := range avisos {
		responses[i] = ToAvisoResponse(a)
	}
	return responses, nil
}

func (s *AvisoService) mutate(ctx context.Context, condominiumID uuid.UUID, id string, fn func(*communication.Aviso) error) (*AvisoResponse, error) {
	avisoID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid notice ID format")
	}

	aviso, err := s.avisoRepo.FindByIDForCondo(ctx, condominiumID, avisoID)
	if err != nil {
		return nil, err
	}

	if err := fn(aviso); err != nil {
		return nil, err
	}

	if err := s.avisoRepo.Save(ctx, aviso); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, aviso)
	return ToAvisoResponse(aviso), nil
}
