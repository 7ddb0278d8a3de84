package engineers

import (
	"context"

	"aircontrol/internal/domain"
)

type EngineerRepository interface {
	Create(ctx context.Context, e *domain.ServiceEngineer) error
	Update(ctx context.Context, e *domain.ServiceEngineer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ServiceEngineer, error)
	GetAll(ctx context.Context) ([]domain.ServiceEngineer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
