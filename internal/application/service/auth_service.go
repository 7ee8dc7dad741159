package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles staff authentication
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// AuthTokens holds the issued token pair
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login authenticates a staff member and issues tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*entity.User, *AuthTokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.NewAppError(401, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, nil, apperror.NewAppError(401, "Invalid email or password")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RegisterInput represents the register input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new staff account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "staff"
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.NewAppError(401, "Invalid refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewAppError(401, "User no longer exists")
	}

	return s.issueTokens(user)
}

// GetProfile retrieves the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthTokens, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
