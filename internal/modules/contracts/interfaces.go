package contracts

import (
	"context"

	"aircontrol/internal/domain"
)

type ContractRepository interface {
	Create(ctx context.Context, c *domain.ServiceContract) error
	GetByID(ctx context.Context, id string) (*domain.ServiceContract, error)
	GetAll(ctx context.Context, includeArchived bool) ([]domain.ServiceContract, error)
	Update(ctx context.Context, c *domain.ServiceContract) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

type EngineerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceEngineer, error)
	GetAll(ctx context.Context) ([]domain.ServiceEngineer, error)
}

// ChangePublisher notifies connected clients that a contract changed so
// they can re-fetch. Nil-safe at the call sites.
type ChangePublisher interface {
	ContractChanged(contractID string)
}
