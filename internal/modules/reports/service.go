package reports

import (
	"context"
	"time"

	"aircontrol/internal/domain"
)

type Service struct {
	contracts ContractRepository
	engineers EngineerRepository
	now       func() time.Time
}

func NewService(contracts ContractRepository, engineers EngineerRepository) *Service {
	return &Service{
		contracts: contracts,
		engineers: engineers,
		now:       time.Now,
	}
}

// Dashboard computes the reporting aggregates for the given year. Archived
// contracts count toward the archived total only, they are excluded from
// every other figure.
func (s *Service) Dashboard(ctx context.Context, year int) (*Dashboard, error) {
	all, err := s.contracts.GetAll(ctx, true)
	if err != nil {
		return nil, err
	}
	engineerList, err := s.engineers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if year == 0 {
		year = now.Year()
	}

	d := &Dashboard{
		ByDisplayStatus: make(map[string]int),
		BySubdivision:   make(map[string]int),
		Monthly:         make([]MonthlyActivity, 12),
		Year:            year,
	}
	for i := range d.Monthly {
		d.Monthly[i].Month = i + 1
	}

	loadByEngineer := make(map[string]int)

	for _, c := range all {
		if c.Archived {
			d.Totals.Archived++
			continue
		}

		d.Totals.Contracts++
		d.Totals.Periods += len(c.MaintenancePeriods)
		d.Totals.Equipment += len(c.Equipment)

		display := c.DisplayStatus(now)
		d.ByDisplayStatus[string(display)]++
		switch display {
		case domain.DisplayProlongation:
			d.Attention.Prolongation++
		case domain.DisplayFinalWorks:
			d.Attention.FinalWorks++
		}

		for _, p := range c.MaintenancePeriods {
			d.BySubdivision[string(p.Subdivision)]++

			if p.Status == domain.PeriodScheduled {
				for _, id := range p.AssignedEngineerIDs {
					loadByEngineer[id]++
				}
			}

			if p.StartDate != nil && p.StartDate.Year() == year {
				m := int(p.StartDate.Month()) - 1
				if p.Status == domain.PeriodDone {
					d.Monthly[m].Done++
				} else {
					d.Monthly[m].Scheduled++
				}
			}
		}
	}

	d.EngineerLoad = make([]EngineerLoad, 0, len(engineerList))
	for _, e := range engineerList {
		d.EngineerLoad = append(d.EngineerLoad, EngineerLoad{
			EngineerID:   e.ID,
			Name:         e.Name,
			ScheduledFor: loadByEngineer[e.ID],
		})
	}

	return d, nil
}
