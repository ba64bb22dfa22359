package communication

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/communication"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EnqueteService manages resident polls
type EnqueteService struct {
	enqueteRepo    communication.EnqueteRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewEnqueteService creates a new poll service
func NewEnqueteService(enqueteRepo communication.EnqueteRepository) *EnqueteService {
	return &EnqueteService{
		enqueteRepo: enqueteRepo,
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *EnqueteService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *EnqueteService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *EnqueteService) publishEvents(ctx context.Context, enquete *communication.Enquete) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range enquete.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	enquete.ClearDomainEvents()
}

// Create opens a new poll
func (s *EnqueteService) Create(ctx context.Context, condominiumID uuid.UUID, req CreateEnqueteRequest) (*EnqueteResponse, error) {
	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	enquete, err := communication.NewEnquete(condominiumID, authorID, req.Question, req.Options, req.OpensAt, req.ClosesAt)
	if err != nil {
		return nil, err
	}

	if err := s.enqueteRepo.Save(ctx, enquete); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, enquete)
	return ToEnqueteResponse(enquete), nil
}

// CastVote records a unit's vote. Votes race on the same aggregate so
// the save goes through optimistic locking.
func (s *EnqueteService) CastVote(ctx context.Context, condominiumID uuid.UUID, id string, req CastVoteRequest) (*EnqueteResponse, error) {
	enqueteID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid poll ID format")
	}
	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Invalid user ID format")
	}

	enquete, err := s.enqueteRepo.FindByIDForCondo(ctx, condominiumID, enqueteID)
	if err != nil {
		return nil, err
	}

	if err := enquete.CastVote(unitID, userID, req.OptionID, s.now()); err != nil {
		return nil, err
	}

	if err := s.enqueteRepo.SaveWithLock(ctx, enquete); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, enquete)
	return ToEnqueteResponse(enquete), nil
}

// Close closes a poll before or at its scheduled end
func (s *EnqueteService) Close(ctx context.Context, condominiumID uuid.UUID, id string) (*EnqueteResponse, error) {
	enqueteID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid poll ID format")
	}

	enquete, err := s.enqueteRepo.FindByIDForCondo(ctx, condominiumID, enqueteID)
	if err != nil {
		return nil, err
	}

	if err := enquete.Close(s.now()); err != nil {
		return nil, err
	}

	if err := s.enqueteRepo.Save(ctx, enquete); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, enquete)
	return ToEnqueteResponse(enquete), nil
}

// GetByID retrieves a poll with its tallies
func (s *EnqueteService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string) (*EnqueteResponse, error) {
	enqueteID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid poll ID format")
	}
	enquete, err := s.enqueteRepo.FindByIDForCondo(ctx, condominiumID, enqueteID)
	if err != nil {
		return nil, err
	}
	return ToEnqueteResponse(enquete), nil
}

// List retrieves polls for a condominium
func (s *EnqueteService) List(ctx context.Context, condominiumID uuid.UUID, filter EnqueteListFilter) ([]*EnqueteResponse, error) {
	domainFilter := communication.EnqueteFilter{}

	if filter.Status != "" {
		status := communication.EnqueteStatus(filter.Status)
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

	enquetes, err := s.enqueteRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]*EnqueteResponse, len(enquetes))
	for i, e := range enquetes {
		responses[i] = ToEnqueteResponse(e)
	}
	return responses, nil
}
