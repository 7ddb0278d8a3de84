package notifications

import (
	"context"

	"aircontrol/internal/domain"
	"aircontrol/internal/repository"
)

type ContractRepository interface {
	GetAll(ctx context.Context, includeArchived bool) ([]domain.ServiceContract, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, payload []byte) (*repository.Reminder, error)
	GetAll(ctx context.Context) ([]repository.Reminder, error)
}
