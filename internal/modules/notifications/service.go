package notifications

import (
	"context"
	"sort"
	"time"

	"aircontrol/internal/domain"
	"aircontrol/internal/repository"
)

const defaultUpcomingDays = 14

type Service struct {
	contracts ContractRepository
	reminders ReminderRepository
	now       func() time.Time
}

func NewService(contracts ContractRepository, reminders ReminderRepository) *Service {
	return &Service{
		contracts: contracts,
		reminders: reminders,
		now:       time.Now,
	}
}

// Overdue lists scheduled periods of non-archived contracts whose start
// date is strictly before today, oldest first.
func (s *Service) Overdue(ctx context.Context) ([]PeriodAlert, error) {
	all, err := s.contracts.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}

	today := domain.Day(s.now())
	var alerts []PeriodAlert
	for _, c := range all {
		for _, p := range c.MaintenancePeriods {
			if p.Status != domain.PeriodScheduled || p.StartDate == nil {
				continue
			}
			start := domain.Day(*p.StartDate)
			if !start.Before(today) {
				continue
			}
			a := alertFor(c, p)
			a.DaysOverdue = int(today.Sub(start).Hours() / 24)
			alerts = append(alerts, a)
		}
	}

	sort.Slice(alerts, func(i, j int) bool { return alerts[i].StartDate < alerts[j].StartDate })
	return alerts, nil
}

// Upcoming lists scheduled periods starting today or within the given
// number of days. days <= 0 uses the default window.
func (s *Service) Upcoming(ctx context.Context, days int) ([]PeriodAlert, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}

	all, err := s.contracts.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}

	today := domain.Day(s.now())
	horizon := today.AddDate(0, 0, days)

	var alerts []PeriodAlert
	for _, c := range all {
		for _, p := range c.MaintenancePeriods {
			if p.Status != domain.PeriodScheduled || p.StartDate == nil {
				continue
			}
			start := domain.Day(*p.StartDate)
			if start.Before(today) || start.After(horizon) {
				continue
			}
			a := alertFor(c, p)
			a.DaysUntil = int(start.Sub(today).Hours() / 24)
			alerts = append(alerts, a)
		}
	}

	sort.Slice(alerts, func(i, j int) bool { return alerts[i].StartDate < alerts[j].StartDate })
	return alerts, nil
}

func (s *Service) StoreReminder(ctx context.Context, payload []byte) (*repository.Reminder, error) {
	return s.reminders.Create(ctx, payload)
}

func (s *Service) ListReminders(ctx context.Context) ([]repository.Reminder, error) {
	return s.reminders.GetAll(ctx)
}

func alertFor(c domain.ServiceContract, p domain.MaintenancePeriod) PeriodAlert {
	return PeriodAlert{
		ContractID:     c.ID,
		ContractNumber: c.ContractNumber,
		ObjectName:     c.ObjectName,
		PeriodID:       p.ID,
		PeriodName:     p.Name,
		StartDate:      domain.FormatDate(p.StartDate),
		EndDate:        domain.FormatDate(p.EndDate),
		Subdivision:    string(p.Subdivision),
	}
}
