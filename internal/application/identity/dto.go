package identity

import (
	"time"

	"github.com/condo/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput contains the credentials for a login attempt
type LoginInput struct {
	CondominiumID uuid.UUID
	Email         string
	Password      string
	IP            string
}

// UserInfo is the user payload returned with authentication results
type UserInfo struct {
	ID            uuid.UUID  `json:"id"`
	CondominiumID uuid.UUID  `json:"condominium_id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	Phone         string     `json:"phone,omitempty"`
	Roles         []string   `json:"roles"`
	UnitID        *uuid.UUID `json:"unit_id,omitempty"`
	Status        string     `json:"status"`
}

// LoginResult is returned after a successful login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains a refresh token to exchange
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult carries the new token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput identifies the session(s) to terminate
type LogoutInput struct {
	UserID        uuid.UUID
	CondominiumID uuid.UUID
	AccessJTI     string
	AccessTTL     time.Duration
	AllSessions   bool
}

// GetCurrentUserInput identifies the authenticated user
type GetCurrentUserInput struct {
	CondominiumID uuid.UUID
	UserID        uuid.UUID
}

// ChangePasswordInput contains a password change request
type ChangePasswordInput struct {
	CondominiumID uuid.UUID
	UserID        uuid.UUID
	OldPassword   string
	NewPassword   string
}

// RegisterUserRequest contains input to create a user account
type RegisterUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Role        string `json:"role" binding:"required"`
	UnitID      string `json:"unit_id"`
	Active      bool   `json:"active"`
}

// UserListFilter filters user listings
type UserListFilter struct {
	Role     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID            string     `json:"id"`
	CondominiumID string     `json:"condominium_id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	Phone         string     `json:"phone,omitempty"`
	Status        string     `json:"status"`
	Roles         []string   `json:"roles"`
	UnitID        *string    `json:"unit_id,omitempty"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func rolesToStrings(roles []identity.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// ToUserInfo converts a domain user to the auth payload
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:            user.ID,
		CondominiumID: user.CondominiumID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		Phone:         user.Phone,
		Roles:         rolesToStrings(user.Roles),
		UnitID:        user.UnitID,
		Status:        string(user.Status),
	}
}

// ToUserResponse converts a domain user to its API representation
func ToUserResponse(user *identity.User) *UserResponse {
	resp := &UserResponse{
		ID:            user.ID.String(),
		CondominiumID: user.CondominiumID.String(),
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		Phone:         user.Phone,
		Status:        string(user.Status),
		Roles:         rolesToStrings(user.Roles),
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if user.UnitID != nil {
		id := user.UnitID.String()
		resp.UnitID = &id
	}
	return resp
}

// ToUserResponses converts a list of domain users
func ToUserResponses(users []*identity.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}
