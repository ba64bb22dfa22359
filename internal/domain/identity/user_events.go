package identity

import "github.com/condo/backend/internal/domain/shared"

// Identity domain event types
const (
	EventTypeUserCreated         = "identity.user.created"
	EventTypeUserPasswordChanged = "identity.user.password_changed"
	EventTypeUserLocked          = "identity.user.locked"
	EventTypeUserDeactivated     = "identity.user.deactivated"
)

// UserEvent carries user lifecycle changes. The password hash is never
// included in event payloads.
type UserEvent struct {
	shared.BaseDomainEvent
	Email  string `json:"email"`
	Status string `json:"status"`
}

func newUserEvent(eventType string, u *User) *UserEvent {
	return &UserEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "User", u.ID, u.CondominiumID),
		Email:           u.Email,
		Status:          string(u.Status),
	}
}

// NewUserCreatedEvent fires when a user account is created
func NewUserCreatedEvent(u *User) *UserEvent {
	return newUserEvent(EventTypeUserCreated, u)
}

// NewUserPasswordChangedEvent fires when the password is changed or reset
func NewUserPasswordChangedEvent(u *User) *UserEvent {
	return newUserEvent(EventTypeUserPasswordChanged, u)
}

// NewUserLockedEvent fires when repeated failures lock the account
func NewUserLockedEvent(u *User) *UserEvent {
	return newUserEvent(EventTypeUserLocked, u)
}

// NewUserDeactivatedEvent fires when the account is deactivated
func NewUserDeactivatedEvent(u *User) *UserEvent {
	return newUserEvent(EventTypeUserDeactivated, u)
}
