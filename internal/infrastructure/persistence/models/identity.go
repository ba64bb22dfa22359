package models

import (
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// UserModel is the persistence model for users. Roles are stored as a
// comma-separated list; the fixed role set makes a join table overkill.
type UserModel struct {
	CondoAggregateModel
	Email              string              `gorm:"type:varchar(200);not null;index"`
	Phone              string              `gorm:"type:varchar(50)"`
	PasswordHash       string              `gorm:"type:varchar(100);not null"`
	DisplayName        string              `gorm:"type:varchar(100)"`
	Status             identity.UserStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Roles              string              `gorm:"type:varchar(100);not null"`
	UnitID             *uuid.UUID          `gorm:"type:uuid;index"`
	LastLoginAt        *time.Time
	LastLoginIP        string `gorm:"type:varchar(45)"`
	FailedAttempts     int    `gorm:"not null;default:0"`
	LockedUntil        *time.Time
	PasswordChangedAt  *time.Time
	MustChangePassword bool `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		Email:              m.Email,
		Phone:              m.Phone,
		PasswordHash:       m.PasswordHash,
		DisplayName:        m.DisplayName,
		Status:             m.Status,
		Roles:              rolesFromColumn(m.Roles),
		UnitID:             m.UnitID,
		LastLoginAt:        m.LastLoginAt,
		LastLoginIP:        m.LastLoginIP,
		FailedAttempts:     m.FailedAttempts,
		LockedUntil:        m.LockedUntil,
		PasswordChangedAt:  m.PasswordChangedAt,
		MustChangePassword: m.MustChangePassword,
	}
	m.PopulateCondoAggregateRoot(&u.CondoAggregateRoot)
	return u
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainCondoAggregateRoot(u.CondoAggregateRoot)
	m.Email = u.Email
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Status = u.Status
	m.Roles = rolesToColumn(u.Roles)
	m.UnitID = u.UnitID
	m.LastLoginAt = u.LastLoginAt
	m.LastLoginIP = u.LastLoginIP
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
	m.PasswordChangedAt = u.PasswordChangedAt
	m.MustChangePassword = u.MustChangePassword
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

func rolesToColumn(roles []identity.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func rolesFromColumn(column string) []identity.Role {
	if column == "" {
		return nil
	}
	parts := strings.Split(column, ",")
	roles := make([]identity.Role, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, identity.Role(p))
		}
	}
	return roles
}
