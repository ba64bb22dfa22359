package ticket

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/condo/backend/internal/domain/ticket"
	"github.com/google/uuid"
)

// OcorrenciaService manages occurrence tickets
type OcorrenciaService struct {
	ocorrenciaRepo ticket.OcorrenciaRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewOcorrenciaService creates a new ticket service
func NewOcorrenciaService(ocorrenciaRepo ticket.OcorrenciaRepository) *OcorrenciaService {
	return &OcorrenciaService{
		ocorrenciaRepo: ocorrenciaRepo,
		now:            time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *OcorrenciaService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *OcorrenciaService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *OcorrenciaService) publishEvents(ctx context.Context, ocorrencia *ticket.Ocorrencia) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range ocorrencia.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	ocorrencia.ClearDomainEvents()
}

// Open opens a new occurrence ticket
func (s *OcorrenciaService) Open(ctx context.Context, condominiumID uuid.UUID, req OpenOcorrenciaRequest) (*OcorrenciaResponse, error) {
	openedBy, err := uuid.Parse(req.OpenedBy)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	var unitID *uuid.UUID
	if req.UnitID != "" {
		parsed, err := uuid.Parse(req.UnitID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
		}
		unitID = &parsed
	}

	category := ticket.OcorrenciaCategory(req.Category)
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown category: "+req.Category)
	}

	ocorrencia, err := ticket.NewOcorrencia(condominiumID, unitID, openedBy, category, req.Title, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.ocorrenciaRepo.Save(ctx, ocorrencia); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, ocorrencia)
	return ToOcorrenciaResponse(ocorrencia, true), nil
}

// Assign puts the ticket in progress under a staff member
func (s *OcorrenciaService) Assign(ctx context.Context, condominiumID uuid.UUID, id, assigneeID string) (*OcorrenciaResponse, error) {
	assignee, err := uuid.Parse(assigneeID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}
	return s.mutate(ctx, condominiumID, id, func(o *ticket.Ocorrencia) error {
		return o.Assign(assignee)
	})
}

// Resolve records the resolution of a ticket
func (s *OcorrenciaService) Resolve(ctx context.Context, condominiumID uuid.UUID, id string, req ResolveOcorrenciaRequest) (*OcorrenciaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(o *ticket.Ocorrencia) error {
		return o.Resolve(req.Resolution, s.now())
	})
}

// Close closes a resolved ticket
func (s *OcorrenciaService) Close(ctx context.Context, condominiumID uuid.UUID, id string) (*OcorrenciaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(o *ticket.Ocorrencia) error {
		return o.Close(s.now())
	})
}

// Reopen reopens a resolved ticket the resident disputes
func (s *OcorrenciaService) Reopen(ctx context.Context, condominiumID uuid.UUID, id string) (*OcorrenciaResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(o *ticket.Ocorrencia) error {
		return o.Reopen()
	})
}

// AddComment appends a comment to the ticket thread
func (s *OcorrenciaService) AddComment(ctx context.Context, condominiumID uuid.UUID, id string, req AddCommentRequest) (*OcorrenciaResponse, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}
	return s.mutate(ctx, condominiumID, id, func(o *ticket.Ocorrencia) error {
		_, err := o.AddComment(authorID, req.Body, req.Internal)
		return err
	})
}

// GetByID retrieves a ticket. Internal comments are included only for staff.
func (s *OcorrenciaService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string, staffView bool) (*OcorrenciaResponse, error) {
	ocorrenciaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid ticket ID format")
	}
	ocorrencia, err := s.ocorrenciaRepo.FindByIDForCondo(ctx, condominiumID, ocorrenciaID)
	if err != nil {
		return nil, err
	}
	return ToOcorrenciaResponse(ocorrencia, staffView), nil
}

// List retrieves tickets for a condominium
func (s *OcorrenciaService) List(ctx context.Context, condominiumID uuid.UUID, filter OcorrenciaListFilter) ([]*OcorrenciaResponse, error) {
	domainFilter := ticket.OcorrenciaFilter{}

	if filter.UnitID != "" {
		unitID, err := uuid.Parse(filter.UnitID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
		}
		domainFilter.UnitID = &unitID
	}
	if filter.AssignedTo != "" {
		assignee, err := uuid.Parse(filter.AssignedTo)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
		}
		domainFilter.AssignedTo = &assignee
	}
	if filter.Status != "" {
		status := ticket.OcorrenciaStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown ticket status: "+filter.Status)
		}
		domainFilter.Status = &status
	}
	if filter.Category != "" {
		category := ticket.OcorrenciaCategory(filter.Category)
		if !category.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown category: "+filter.Category)
		}
		domainFilter.Category = &category
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

	ocorrencias, err := s.ocorrenciaRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]*OcorrenciaResponse, len(ocorrencias))
	for i, o := range ocorrencias {
		responses[i] = ToOcorrenciaResponse(o, true)
	}
	return responses, nil
}

// StatusSummary returns ticket counts grouped by status
func (s *OcorrenciaService) StatusSummary(ctx context.Context, condominiumID uuid.UUID) (map[string]int64, error) {
	counts, err := s.ocorrenciaRepo.CountByStatus(ctx, condominiumID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(counts))
	for status, count := range counts {
		out[string(status)] = count
	}
	return out, nil
}

func (s *OcorrenciaService) mutate(ctx context.Context, condominiumID uuid.UUID, id string, fn func(*ticket.Ocorrencia) error) (*OcorrenciaResponse, error) {
	ocorrenciaID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid ticket ID format")
	}

	ocorrencia, err := s.ocorrenciaRepo.FindByIDForCondo(ctx, condominiumID, ocorrenciaID)
	if err != nil {
		return nil, err
	}

	if err := fn(ocorrencia); err != nil {
		return nil, err
	}

	if err := s.ocorrenciaRepo.Save(ctx, ocorrencia); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, ocorrencia)
	return ToOcorrenciaResponse(ocorrencia, true), nil
}
