package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/propman/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// OperatorStatus represents the status of an operator account
type OperatorStatus string

const (
	OperatorStatusActive      OperatorStatus = "active"
	OperatorStatusDeactivated OperatorStatus = "deactivated"
)

// Password cost for bcrypt
const bcryptCost = 12

var usernameRegex = regexp.MustCompile(`^[a-z0-9._\-]{3,50}$`)

// Operator is an administrator account for the building back office.
// It is the aggregate root for authentication-related operations.
type Operator struct {
	shared.BaseAggregateRoot
	Username     string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(100);not null"`
	DisplayName  string         `gorm:"type:varchar(100)"`
	Status       OperatorStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (Operator) TableName() string {
	return "operators"
}

// NewOperator creates a new operator with required fields
func NewOperator(username, password, displayName string) (*Operator, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &Operator{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      hash,
		DisplayName:       displayName,
		Status:            OperatorStatusActive,
	}, nil
}

// VerifyPassword checks the given password against the stored hash
func (o *Operator) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the operator's password
func (o *Operator) ChangePassword(oldPassword, newPassword string) error {
	if !o.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	o.PasswordHash = hash
	return nil
}

// RecordLogin stamps a successful login
func (o *Operator) RecordLogin(at time.Time) {
	o.LastLoginAt = &at
}

// IsActive returns true if the operator can sign in
func (o *Operator) IsActive() bool {
	return o.Status == OperatorStatusActive
}

// Deactivate disables the operator account
func (o *Operator) Deactivate() {
	o.Status = OperatorStatusDeactivated
}

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be 3-50 lowercase letters, digits, dots, dashes or underscores")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
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
