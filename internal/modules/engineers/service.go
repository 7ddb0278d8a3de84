package engineers

import (
	"context"
	"strings"

	"aircontrol/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	engineers EngineerRepository
}

func NewService(engineers EngineerRepository) *Service {
	return &Service{engineers: engineers}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceEngineer, error) {
	return s.engineers.GetAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ServiceEngineer, error) {
	return s.engineers.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateEngineerRequest) (*domain.ServiceEngineer, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" {
		return nil, ErrNameRequired
	}
	if !domain.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !domain.ValidPhone(req.Phone) {
		return nil, ErrInvalidPhone
	}

	taken, err := s.engineers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	e := &domain.ServiceEngineer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Phone: req.Phone,
	}
	if err := s.engineers.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEngineerRequest) (*domain.ServiceEngineer, error) {
	e, err := s.engineers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		e.Name = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !domain.ValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		if !strings.EqualFold(email, e.Email) {
			taken, err := s.engineers.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		e.Email = email
	}
	if req.Phone != nil {
		if !domain.ValidPhone(*req.Phone) {
			return nil, ErrInvalidPhone
		}
		e.Phone = *req.Phone
	}

	if err := s.engineers.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the engineer from the directory. Contracts keep their
// roster ids, a dangling id simply stops resolving to a name.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.engineers.GetByID(ctx, id); err != nil {
		return err
	}
	return s.engineers.Delete(ctx, id)
}
