package reports

import (
	"context"
	"testing"
	"time"

	"aircontrol/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContracts struct {
	contracts []domain.ServiceContract
}

func (s *stubContracts) GetAll(_ context.Context, _ bool) ([]domain.ServiceContract, error) {
	return s.contracts, nil
}

type stubEngineers struct {
	engineers []domain.ServiceEngineer
}

func (s *stubEngineers) GetAll(_ context.Context) ([]domain.ServiceEngineer, error) {
	return s.engineers, nil
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDashboardAggregates(t *testing.T) {
	endSoon := datePtr(2026, 3, 1)
	contracts := []domain.ServiceContract{
		{
			ID:              "c1",
			ContractEndDate: endSoon,
			Equipment:       []domain.Equipment{{ID: "eq1"}, {ID: "eq2"}},
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p1", StartDate: datePtr(2025, 2, 5), Subdivision: domain.SubdivisionClimate, Status: domain.PeriodDone},
				{ID: "p2", StartDate: datePtr(2025, 7, 5), Subdivision: domain.SubdivisionClimate, Status: domain.PeriodScheduled, AssignedEngineerIDs: []string{"e1"}},
				{ID: "p3", StartDate: datePtr(2025, 9, 5), Subdivision: domain.SubdivisionUPS, Status: domain.PeriodScheduled, AssignedEngineerIDs: []string{"e1", "e2"}},
			},
		},
		{
			// Expired end date forces the prolongation badge.
			ID:              "c2",
			ContractEndDate: datePtr(2025, 1, 1),
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p4", StartDate: datePtr(2025, 3, 1), Subdivision: domain.SubdivisionGenerator, Status: domain.PeriodScheduled},
			},
		},
		{
			ID:       "c3",
			Archived: true,
			MaintenancePeriods: []domain.MaintenancePeriod{
				{ID: "p5", StartDate: datePtr(2025, 4, 1), Subdivision: domain.SubdivisionClimate, Status: domain.PeriodScheduled},
			},
		},
	}

	svc := NewService(
		&stubContracts{contracts: contracts},
		&stubEngineers{engineers: []domain.ServiceEngineer{
			{ID: "e1", Name: "Петро Коваль"},
			{ID: "e2", Name: "Іван Шевчук"},
			{ID: "e3", Name: "Без навантаження"},
		}},
	)
	svc.now = func() time.Time { return time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC) }

	d, err := svc.Dashboard(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Totals.Contracts)
	assert.Equal(t, 4, d.Totals.Periods)
	assert.Equal(t, 2, d.Totals.Equipment)
	assert.Equal(t, 1, d.Totals.Archived)

	assert.Equal(t, 1, d.Attention.Prolongation)
	assert.Equal(t, 0, d.Attention.FinalWorks)
	assert.Equal(t, 1, d.ByDisplayStatus[string(domain.DisplayScheduled)])
	assert.Equal(t, 1, d.ByDisplayStatus[string(domain.DisplayProlongation)])

	// Archived contract's period must not leak into subdivision counts.
	assert.Equal(t, 2, d.BySubdivision[string(domain.SubdivisionClimate)])
	assert.Equal(t, 1, d.BySubdivision[string(domain.SubdivisionUPS)])
	assert.Equal(t, 1, d.BySubdivision[string(domain.SubdivisionGenerator)])

	require.Len(t, d.EngineerLoad, 3)
	assert.Equal(t, 2, d.EngineerLoad[0].ScheduledFor)
	assert.Equal(t, 1, d.EngineerLoad[1].ScheduledFor)
	assert.Equal(t, 0, d.EngineerLoad[2].ScheduledFor)

	assert.Equal(t, 1, d.Monthly[1].Done)      // February
	assert.Equal(t, 1, d.Monthly[6].Scheduled) // July
	assert.Equal(t, 1, d.Monthly[8].Scheduled) // September
	assert.Equal(t, 1, d.Monthly[2].Scheduled) // March, from the prolongation contract
}

func TestDashboardDefaultsYearToNow(t *testing.T) {
	svc := NewService(&stubContracts{}, &stubEngineers{})
	svc.now = func() time.Time { return time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC) }

	d, err := svc.Dashboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year)
}
