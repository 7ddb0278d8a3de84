package auth

import (
	"context"
	"testing"

	"aircontrol/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetDisabled(ctx context.Context, id int64, disabled bool) error {
	args := m.Called(ctx, id, disabled)
	return args.Error(0)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "correct-horse"),
		Role:         domain.RoleAdmin,
	}, nil)

	svc := NewService(repo, stubJWT{})

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Admin@Example.com ",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "test-token", result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "correct-horse"),
	}, nil)

	svc := NewService(repo, stubJWT{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, stubJWT{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "old@example.com").Return(&domain.User{
		ID:           2,
		Email:        "old@example.com",
		PasswordHash: hashOf(t, "correct-horse"),
		Disabled:     true,
	}, nil)

	svc := NewService(repo, stubJWT{})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "old@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestCreateUserValidation(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubJWT{})

	cases := []struct {
		name string
		req  CreateUserRequest
		want error
	}{
		{"bad email", CreateUserRequest{Email: "nope", Password: "long-enough", Role: "engineer"}, ErrInvalidEmail},
		{"short password", CreateUserRequest{Email: "a@b.com", Password: "short", Role: "engineer"}, ErrWeakPassword},
		{"bad role", CreateUserRequest{Email: "a@b.com", Password: "long-enough", Role: "owner"}, ErrUnknownRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 1}, nil)

	svc := NewService(repo, stubJWT{})

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "Taken@example.com",
		Password: "long-enough",
		Role:     "engineer",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != "long-enough"
	})).Return(nil)

	svc := NewService(repo, stubJWT{})

	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "new@example.com",
		Password: "long-enough",
		Role:     "engineer",
	})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleEngineer, user.Role)
}
