package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
	"github.com/greenpalms/resort-api/pkg/oauth"
	"github.com/greenpalms/resort-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	Permissions  []string
	AccessToken  string
	RefreshToken string
}

// Login authenticates a staff user by username and returns tokens. The
// response never distinguishes an unknown username from a wrong password.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.NewAppError(http.StatusForbidden, "Account is disabled")
	}

	return s.issueTokens(user)
}

// LoginWithGoogle signs in an existing staff account matching the verified
// Google email. Unknown emails are rejected, not provisioned.
func (s *AuthService) LoginWithGoogle(ctx context.Context, info *oauth.GoogleUserInfo) (*LoginOutput, error) {
	if !info.VerifiedEmail {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(http.StatusForbidden, "No staff account for this Google email")
	}
	if !user.IsActive {
		return nil, apperror.NewAppError(http.StatusForbidden, "Account is disabled")
	}

	return s.issueTokens(user)
}

// RefreshToken issues a new token pair from a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// Me returns the account behind a token's user ID
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	permissions := user.Permissions()

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, string(user.Role), permissions)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		Permissions:  permissions,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
