package identity

import (
	"context"
	"time"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserService manages user accounts within a condominium
type UserService struct {
	userRepo       identity.UserRepository
	eventPublisher shared.EventPublisher
	now            func() time.Time
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *UserService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source, used in tests
func (s *UserService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *UserService) publishEvents(ctx context.Context, user *identity.User) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range user.GetDomainEvents() {
		_ = s.eventPublisher.Publish(ctx, event)
	}
	user.ClearDomainEvents()
}

// Register creates a new user account
func (s *UserService) Register(ctx context.Context, condominiumID uuid.UUID, req RegisterUserRequest) (*UserResponse, error) {
	role := identity.Role(req.Role)
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+req.Role)
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, condominiumID, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "A user with this email already exists")
	}

	var user *identity.User
	if req.Active {
		user, err = identity.NewActiveUser(condominiumID, req.Email, req.Password, role)
	} else {
		user, err = identity.NewUser(condominiumID, req.Email, req.Password, role)
	}
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		if err := user.SetDisplayName(req.DisplayName); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		if err := user.SetPhone(req.Phone); err != nil {
			return nil, err
		}
	}
	if req.UnitID != "" {
		unitID, err := uuid.Parse(req.UnitID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
		}
		user.SetUnit(&unitID)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)
	return ToUserResponse(user), nil
}

// GetByID retrieves a user scoped to a condominium
func (s *UserService) GetByID(ctx context.Context, condominiumID uuid.UUID, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid user ID format")
	}

	user, err := s.userRepo.FindByIDForCondo(ctx, condominiumID, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List retrieves users for a condominium
func (s *UserService) List(ctx context.Context, condominiumID uuid.UUID, filter UserListFilter) ([]*UserResponse, error) {
	domainFilter := identity.UserFilter{Search: filter.Search}

	if filter.Role != "" {
		role := identity.Role(filter.Role)
		if !role.IsValid() {
			return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+filter.Role)
		}
		domainFilter.Role = &role
	}
	if filter.Status != "" {
		status := identity.UserStatus(filter.Status)
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

	users, err := s.userRepo.FindAllForCondo(ctx, condominiumID, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// Activate activates a pending or deactivated account
func (s *UserService) Activate(ctx context.Context, condominiumID uuid.UUID, id string) (*UserResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(user *identity.User) error {
		return user.Activate()
	})
}

// Deactivate deactivates an account
func (s *UserService) Deactivate(ctx context.Context, condominiumID uuid.UUID, id string) (*UserResponse, error) {
	return s.mutate(ctx, condominiumID, id, func(user *identity.User) error {
		return user.Deactivate()
	})
}

// AssignRole grants a role to a user
func (s *UserService) AssignRole(ctx context.Context, condominiumID uuid.UUID, id, role string) (*UserResponse, error) {
	r := identity.Role(role)
	if !r.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+role)
	}
	return s.mutate(ctx, condominiumID, id, func(user *identity.User) error {
		return user.AssignRole(r)
	})
}

// RemoveRole revokes a role from a user. The last role cannot be removed.
func (s *UserService) RemoveRole(ctx context.Context, condominiumID uuid.UUID, id, role string) (*UserResponse, error) {
	r := identity.Role(role)
	if !r.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+role)
	}
	return s.mutate(ctx, condominiumID, id, func(user *identity.User) error {
		return user.RemoveRole(r)
	})
}

// AssignUnit links a resident to their unit
func (s *UserService) AssignUnit(ctx context.Context, condominiumID uuid.UUID, id, unitID string) (*UserResponse, error) {
	parsed, err := uuid.Parse(unitID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_UNIT_ID", "Invalid unit ID format")
	}
	return s.mutate(ctx, condominiumID, id, func(user *identity.User) error {
		user.SetUnit(&parsed)
		return nil
	})
}

// ResetPassword sets a new password administratively
func (s *UserService) ResetPassword(ctx context.Context, condominiumID uuid.UUID, id, newPassword string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return shared.NewDomainError("INVALID_ID", "Invalid user ID format")
	}

	user, err := s.userRepo.FindByIDForCondo(ctx, condominiumID, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	user.MustChangePassword = true

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}
	s.publishEvents(ctx, user)
	return nil
}

func (s *UserService) mutate(ctx context.Context, condominiumID uuid.UUID, id string, fn func(*identity.User) error) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid user ID format")
	}

	user, err := s.userRepo.FindByIDForCondo(ctx, condominiumID, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user)
	return ToUserResponse(user), nil
}
