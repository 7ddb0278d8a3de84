package exchange

import (
	"context"

	"aircontrol/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, c *domain.ServiceContract) error
	GetAll(ctx context.Context, includeArchived bool) ([]domain.ServiceContract, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceContract, error)
}

type EngineerRepository interface {
	Create(ctx context.Context, e *domain.ServiceEngineer) error
	GetAll(ctx context.Context) ([]domain.ServiceEngineer, error)
}

type EquipmentModelRepository interface {
	Create(ctx context.Context, m *domain.EquipmentModel) error
	GetAll(ctx context.Context) ([]domain.EquipmentModel, error)
}
