package reports

import (
	"context"

	"aircontrol/internal/domain"
)

type ContractRepository interface {
	GetAll(ctx context.Context, includeArchived bool) ([]domain.ServiceContract, error)
}

type EngineerRepository interface {
	GetAll(ctx context.Context) ([]domain.ServiceEngineer, error)
}
