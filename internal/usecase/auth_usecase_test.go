package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/listing-marketplace/internal/domain"
	apperrors "github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/pkg/token"
	"github.com/listing-marketplace/internal/usecase"
	"github.com/listing-marketplace/internal/usecase/dto"
)

func newAuthUC(users *MockUserRepository) *usecase.AuthUseCase {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUseCase(users, tokens, zap.NewNop(), bcrypt.MinCost)
}

func TestAuthUseCase_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("new account gets an id, a hash and a token", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "ada@example.com").Return(nil, nil)

		var created *domain.User
		users.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).Return(nil)

		resp, err := uc.SignUp(ctx, &dto.SignUpRequest{
			Email:    "ada@example.com",
			Password: "correct horse",
			Name:     "Ada",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "ada@example.com", resp.Email)

		// Stored hash verifies against the submitted password
		assert.NotEqual(t, "correct horse", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")))
	})

	t.Run("taken email", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{ID: "user-1"}, nil)

		_, err := uc.SignUp(ctx, &dto.SignUpRequest{
			Email:    "ada@example.com",
			Password: "correct horse",
			Name:     "Ada",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthUseCase_SignIn(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	account := &domain.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: string(hash),
	}

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "ada@example.com").Return(account, nil)

		resp, err := uc.SignIn(ctx, &dto.SignInRequest{
			Email:    "ada@example.com",
			Password: "correct horse",
		})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", resp.ID)

		claims, err := token.NewManager("test-secret", time.Hour).Validate(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "ada@example.com").Return(account, nil)

		_, err := uc.SignIn(ctx, &dto.SignInRequest{
			Email:    "ada@example.com",
			Password: "incorrect horse",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email uses the same error as a wrong password", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := uc.SignIn(ctx, &dto.SignInRequest{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		users := &MockUserRepository{}
		uc := newAuthUC(users)

		users.On("GetByEmail", ctx, "ada@example.com").Return(nil, errors.New("connection refused"))

		_, err := uc.SignIn(ctx, &dto.SignInRequest{
			Email:    "ada@example.com",
			Password: "correct horse",
		})

		assert.ErrorIs(t, err, apperrors.ErrInternalServer)
	})
}
