package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusPending     UserStatus = "pending"     // Awaiting activation
	UserStatusActive      UserStatus = "active"      // Normal active status
	UserStatusLocked      UserStatus = "locked"      // Locked due to failed attempts
	UserStatusDeactivated UserStatus = "deactivated" // Manually deactivated
)

// Role is the fixed set of profiles a user can hold inside a condominium
type Role string

const (
	RoleAdmin    Role = "ADMIN"    // platform operator
	RoleSindico  Role = "SINDICO"  // building manager
	RoleMorador  Role = "MORADOR"  // resident
	RolePorteiro Role = "PORTEIRO" // front desk staff
)

// IsValid checks if the role is one of the known profiles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSindico, RoleMorador, RolePorteiro:
		return true
	}
	return false
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// Password cost for bcrypt
const bcryptCost = 12

// MaxFailedAttempts before the account is locked
const MaxFailedAttempts = 5

// User represents a person with access to a condominium: a resident,
// the sindico, front desk staff or a platform admin.
type User struct {
	shared.CondoAggregateRoot
	Email              string
	Phone              string
	PasswordHash       string
	DisplayName        string
	Status             UserStatus
	Roles              []Role
	UnitID             *uuid.UUID // primary unit for residents
	LastLoginAt        *time.Time
	LastLoginIP        string
	FailedAttempts     int
	LockedUntil        *time.Time
	PasswordChangedAt  *time.Time
	MustChangePassword bool
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 || !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates beyond 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// NewUser creates a new user awaiting activation
func NewUser(condominiumID uuid.UUID, email, password string, role Role) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	now := time.Now()
	user := &User{
		CondoAggregateRoot: shared.NewCondoAggregateRoot(condominiumID),
		Email:              strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:       passwordHash,
		Status:             UserStatusPending,
		Roles:              []Role{role},
		PasswordChangedAt:  &now,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))
	return user, nil
}

// NewActiveUser creates a new user that is immediately active
func NewActiveUser(condominiumID uuid.UUID, email, password string, role Role) (*User, error) {
	user, err := NewUser(condominiumID, email, password, role)
	if err != nil {
		return nil, err
	}
	user.Status = UserStatusActive
	return user, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if len(displayName) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}
	u.DisplayName = strings.TrimSpace(displayName)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetPhone sets the user's phone number
func (u *User) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	u.Phone = strings.TrimSpace(phone)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetUnit links a resident to their primary unit
func (u *User) SetUnit(unitID *uuid.UUID) {
	u.UnitID = unitID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword changes the user's password after checking the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	now := time.Now()
	u.PasswordChangedAt = &now
	u.MustChangePassword = false
	u.UpdatedAt = now
	u.IncrementVersion()

	u.AddDomainEvent(NewUserPasswordChangedEvent(u))
	return nil
}

// AssignRole adds a role to the user
func (u *User) AssignRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}
	if u.HasRole(role) {
		return shared.NewDomainError("ROLE_ALREADY_ASSIGNED", "User already has this role")
	}

	u.Roles = append(u.Roles, role)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RemoveRole removes a role from the user
func (u *User) RemoveRole(role Role) error {
	kept := make([]Role, 0, len(u.Roles))
	found := false
	for _, r := range u.Roles {
		if r == role {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return shared.NewDomainError("ROLE_NOT_ASSIGNED", "User does not have this role")
	}
	if len(kept) == 0 {
		return shared.NewDomainError("LAST_ROLE", "User must keep at least one role")
	}

	u.Roles = kept
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanLogin reports whether the account accepts a login right now
func (u *User) CanLogin(now time.Time) bool {
	switch u.Status {
	case UserStatusActive:
		return true
	case UserStatusLocked:
		return u.LockedUntil != nil && now.After(*u.LockedUntil)
	}
	return false
}

// RecordLogin registers a successful login and clears the failure count
func (u *User) RecordLogin(ip string, now time.Time) {
	if u.Status == UserStatusLocked {
		u.Status = UserStatusActive
		u.LockedUntil = nil
	}
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	u.UpdatedAt = now
	u.IncrementVersion()
}

// RecordFailedLogin increments the failure count and locks the account
// for the given duration once MaxFailedAttempts is reached
func (u *User) RecordFailedLogin(lockDuration time.Duration, now time.Time) {
	u.FailedAttempts++
	if u.FailedAttempts >= MaxFailedAttempts && u.Status == UserStatusActive {
		until := now.Add(lockDuration)
		u.Status = UserStatusLocked
		u.LockedUntil = &until
		u.AddDomainEvent(NewUserLockedEvent(u))
	}
	u.UpdatedAt = now
	u.IncrementVersion()
}

// Activate activates the user
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Deactivate deactivates the user
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserDeactivatedEvent(u))
	return nil
}
