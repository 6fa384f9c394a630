package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/pkg/token"
	"github.com/listing-marketplace/internal/usecase/dto"
)

// AuthUseCase handles account registration and sign-in.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tokens     *token.Manager
	logger     *zap.Logger
	bcryptCost int
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(userRepo repository.UserRepository, tokens *token.Manager, logger *zap.Logger, bcryptCost int) *AuthUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// SignUp registers a new account and returns a signed access token.
func (uc *AuthUseCase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Error("Failed to check email", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if existing != nil {
		return nil, errors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID))

	return uc.issueToken(user)
}

// SignIn verifies the credentials and returns a signed access token. The
// same error covers an unknown email and a wrong password.
func (uc *AuthUseCase) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Error("Failed to load user", zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *AuthUseCase) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	signed, err := uc.tokens.Generate(user.ID)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.String("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.AuthResponse{
		Token: signed,
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}
