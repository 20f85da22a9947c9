package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/identity"
)

// LoginRequest carries operator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// CreateOperatorRequest creates a new operator account
type CreateOperatorRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	DisplayName string `json:"display_name" binding:"max=100"`
}

// OperatorInfo represents an operator in API responses
type OperatorInfo struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// LoginResponse carries the token pair and operator identity
type LoginResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	Operator              OperatorInfo `json:"operator"`
}

// RefreshResponse carries a renewed token pair
type RefreshResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// ToOperatorInfo converts a domain Operator to a response DTO
func ToOperatorInfo(o *identity.Operator) OperatorInfo {
	displayName := o.DisplayName
	if displayName == "" {
		displayName = o.Username
	}
	return OperatorInfo{
		ID:          o.GetID(),
		Username:    o.Username,
		DisplayName: displayName,
		Status:      string(o.Status),
		LastLoginAt: o.LastLoginAt,
	}
}
