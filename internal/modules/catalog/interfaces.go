package catalog

import (
	"context"

	"aircontrol/internal/domain"
)

type EquipmentModelRepository interface {
	Create(ctx context.Context, m *domain.EquipmentModel) error
	Update(ctx context.Context, m *domain.EquipmentModel) error
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]domain.EquipmentModel, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
