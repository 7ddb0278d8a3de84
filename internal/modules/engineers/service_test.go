package engineers

import (
	"context"
	"testing"

	"aircontrol/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEngineerRepository struct {
	mock.Mock
}

func (m *MockEngineerRepository) Create(ctx context.Context, e *domain.ServiceEngineer) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEngineerRepository) Update(ctx context.Context, e *domain.ServiceEngineer) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEngineerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEngineerRepository) GetByID(ctx context.Context, id string) (*domain.ServiceEngineer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceEngineer), args.Error(1)
}

func (m *MockEngineerRepository) GetAll(ctx context.Context) ([]domain.ServiceEngineer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceEngineer), args.Error(1)
}

func (m *MockEngineerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestCreateValidEngineer(t *testing.T) {
	repo := new(MockEngineerRepository)
	repo.On("ExistsByEmail", mock.Anything, "p.koval@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	e, err := svc.Create(context.Background(), CreateEngineerRequest{
		Name:  "  Петро Коваль  ",
		Email: "p.koval@example.com",
		Phone: "+380501234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Петро Коваль", e.Name)
	assert.NotEmpty(t, e.ID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  CreateEngineerRequest
		want error
	}{
		{"blank name", CreateEngineerRequest{Name: "   ", Email: "a@b.com"}, ErrNameRequired},
		{"bad email", CreateEngineerRequest{Name: "Іван", Email: "not-an-email"}, ErrInvalidEmail},
		{"email with spaces", CreateEngineerRequest{Name: "Іван", Email: "a b@c.com"}, ErrInvalidEmail},
		{"bad phone", CreateEngineerRequest{Name: "Іван", Email: "a@b.com", Phone: "0501234567"}, ErrInvalidPhone},
		{"short phone", CreateEngineerRequest{Name: "Іван", Email: "a@b.com", Phone: "+38050123456"}, ErrInvalidPhone},
	}

	repo := new(MockEngineerRepository)
	svc := NewService(repo)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAllowsEmptyPhone(t *testing.T) {
	repo := new(MockEngineerRepository)
	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateEngineerRequest{
		Name:  "Іван Шевчук",
		Email: "i.shevchuk@example.com",
	})
	assert.NoError(t, err)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := new(MockEngineerRepository)
	repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateEngineerRequest{
		Name:  "Іван",
		Email: "taken@example.com",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateSkipsDuplicateCheckForOwnEmail(t *testing.T) {
	repo := new(MockEngineerRepository)
	repo.On("GetByID", mock.Anything, "e1").
		Return(&domain.ServiceEngineer{ID: "e1", Name: "Іван", Email: "i@example.com"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	email := "I@Example.com"
	e, err := svc.Update(context.Background(), "e1", UpdateEngineerRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "I@Example.com", e.Email)
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestUpdatePartialKeepsOtherFields(t *testing.T) {
	repo := new(MockEngineerRepository)
	repo.On("GetByID", mock.Anything, "e1").
		Return(&domain.ServiceEngineer{ID: "e1", Name: "Іван", Email: "i@example.com", Phone: "+380501234567"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	name := "Іван Шевчук"
	e, err := svc.Update(context.Background(), "e1", UpdateEngineerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Іван Шевчук", e.Name)
	assert.Equal(t, "i@example.com", e.Email)
	assert.Equal(t, "+380501234567", e.Phone)
}
