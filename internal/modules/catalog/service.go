package catalog

import (
	"context"
	"strings"

	"aircontrol/internal/domain"

	"github.com/google/uuid"
)

type Service struct {
	models EquipmentModelRepository
}

func NewService(models EquipmentModelRepository) *Service {
	return &Service{models: models}
}

func (s *Service) List(ctx context.Context) ([]domain.EquipmentModel, error) {
	return s.models.GetAll(ctx)
}

func (s *Service) Create(ctx context.Context, name, category string) (*domain.EquipmentModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	taken, err := s.models.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	m := &domain.EquipmentModel{
		ID:       uuid.NewString(),
		Name:     name,
		Category: strings.TrimSpace(category),
	}
	if err := s.models.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id, name, category string) (*domain.EquipmentModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	m := &domain.EquipmentModel{ID: id, Name: name, Category: strings.TrimSpace(category)}
	if err := s.models.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.models.Delete(ctx, id)
}
