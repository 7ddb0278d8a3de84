package notifications

import (
	"context"
	"testing"
	"time"

	"aircontrol/internal/domain"
	"aircontrol/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContracts struct {
	contracts []domain.ServiceContract
}

func (s *stubContracts) GetAll(_ context.Context, _ bool) ([]domain.ServiceContract, error) {
	return s.contracts, nil
}

type stubReminders struct{}

func (stubReminders) Create(_ context.Context, payload []byte) (*repository.Reminder, error) {
	return &repository.Reminder{ID: 1, Payload: payload}, nil
}

func (stubReminders) GetAll(_ context.Context) ([]repository.Reminder, error) {
	return nil, nil
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func fixtureContracts() []domain.ServiceContract {
	return []domain.ServiceContract{
		{
			ID:             "c1",
			ContractNumber: "Д-1/2025",
			ObjectName:     "ЦОД Київ",
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p1", Name: "ТО 1", StartDate: datePtr(2025, 5, 20), Status: domain.PeriodScheduled},
				{ID: "p2", Name: "ТО 2", StartDate: datePtr(2025, 6, 10), Status: domain.PeriodScheduled},
				{ID: "p3", Name: "ТО 3", StartDate: datePtr(2025, 5, 1), Status: domain.PeriodDone},
				{ID: "p4", Name: "ТО 4", Status: domain.PeriodScheduled},
			},
		},
		{
			ID:             "c2",
			ContractNumber: "Д-2/2025",
			ObjectName:     "Склад Одеса",
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p5", Name: "ТО 1", StartDate: datePtr(2025, 5, 10), Status: domain.PeriodScheduled},
				{ID: "p6", Name: "ТО 2", StartDate: datePtr(2025, 8, 1), Status: domain.PeriodScheduled},
			},
		},
	}
}

func newTestService(contracts []domain.ServiceContract) *Service {
	svc := NewService(&stubContracts{contracts: contracts}, stubReminders{})
	svc.now = func() time.Time { return time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestOverdueOnlyPastScheduledPeriods(t *testing.T) {
	svc := newTestService(fixtureContracts())

	alerts, err := svc.Overdue(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// Oldest first. Done periods and periods without a start date are out.
	assert.Equal(t, "p5", alerts[0].PeriodID)
	assert.Equal(t, 26, alerts[0].DaysOverdue)
	assert.Equal(t, "p1", alerts[1].PeriodID)
	assert.Equal(t, 16, alerts[1].DaysOverdue)
}

func TestUpcomingWithinWindow(t *testing.T) {
	svc := newTestService(fixtureContracts())

	alerts, err := svc.Upcoming(context.Background(), 14)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p2", alerts[0].PeriodID)
	assert.Equal(t, 5, alerts[0].DaysUntil)
}

func TestUpcomingWiderWindowReachesAugust(t *testing.T) {
	svc := newTestService(fixtureContracts())

	alerts, err := svc.Upcoming(context.Background(), 90)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "p2", alerts[0].PeriodID)
	assert.Equal(t, "p6", alerts[1].PeriodID)
}

func TestUpcomingStartingTodayIncluded(t *testing.T) {
	contracts := []domain.ServiceContract{
		{
			ID: "c1",
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p1", StartDate: datePtr(2025, 6, 5), Status: domain.PeriodScheduled},
			},
		},
	}
	svc := newTestService(contracts)

	alerts, err := svc.Upcoming(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, 0, alerts[0].DaysUntil)
}
