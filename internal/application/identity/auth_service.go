package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/identity"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles operator authentication
type AuthService struct {
	operatorRepo identity.OperatorRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(operatorRepo identity.OperatorRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates an operator and returns a token pair. Unknown
// usernames, wrong passwords and deactivated accounts all answer with
// the same credential error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	operator, err := s.operatorRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown username", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !operator.IsActive() {
		s.logger.Warn("Login attempt for deactivated operator", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !operator.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(operator.GetID(), operator.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	operator.RecordLogin(time.Now().UTC())
	if err := s.operatorRepo.Save(ctx, operator); err != nil {
		// Login still succeeds; the stamp is best effort
		s.logger.Error("Failed to record operator login", zap.Error(err))
	}

	s.logger.Info("Operator logged in",
		zap.String("username", operator.Username),
		zap.String("operator_id", operator.GetID().String()))

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Operator:              ToOperatorInfo(operator),
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	operatorID, err := claims.OperatorUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid operator ID in token")
	}

	operator, err := s.operatorRepo.FindByID(ctx, operatorID)
	if err != nil {
		s.logger.Warn("Token refresh for unknown operator", zap.String("operator_id", operatorID.String()))
		return nil, shared.NewDomainError("TOKEN_INVALID", "Operator no longer exists")
	}
	if !operator.IsActive() {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(operator.GetID(), operator.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair on refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &RefreshResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout is stateless; tokens are discarded client side
func (s *AuthService) Logout(ctx context.Context, operatorID uuid.UUID) error {
	s.logger.Info("Operator logged out", zap.String("operator_id", operatorID.String()))
	return nil
}

// GetProfile returns the authenticated operator's account info
func (s *AuthService) GetProfile(ctx context.Context, operatorID uuid.UUID) (*OperatorInfo, error) {
	operator, err := s.operatorRepo.FindByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	info := ToOperatorInfo(operator)
	return &info, nil
}

// ChangePassword changes the operator's password
func (s *AuthService) ChangePassword(ctx context.Context, operatorID uuid.UUID, req ChangePasswordRequest) error {
	operator, err := s.operatorRepo.FindByID(ctx, operatorID)
	if err != nil {
		return err
	}

	if err := operator.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	if err := s.operatorRepo.Save(ctx, operator); err != nil {
		s.logger.Error("Failed to save operator after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("Operator password changed", zap.String("operator_id", operatorID.String()))
	return nil
}

// CreateOperator creates a new operator account
func (s *AuthService) CreateOperator(ctx context.Context, req CreateOperatorRequest) (*OperatorInfo, error) {
	_, err := s.operatorRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Operator with this username already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	operator, err := identity.NewOperator(req.Username, req.Password, req.DisplayName)
	if err != nil {
		return nil, err
	}

	if err := s.operatorRepo.Save(ctx, operator); err != nil {
		return nil, err
	}

	s.logger.Info("Operator created", zap.String("username", operator.Username))

	info := ToOperatorInfo(operator)
	return &info, nil
}
