package domain

import "time"

// Status derivation is the single code path allowed to compute a contract's
// aggregate status. Every period mutation re-runs DeriveContractStatus and
// persists the result; every view renders DisplayStatusFor instead of
// trusting the stored field. Both functions are pure.

// Day truncates t to calendar-day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// needsProlongation reports whether the contract end date forces the
// prolongation state: the end date has passed or falls within the current
// calendar month. This rule outranks every period-level state.
func needsProlongation(endDate *time.Time, now time.Time) bool {
	if endDate == nil {
		return false
	}
	end := Day(*endDate)
	today := Day(now)
	return end.Before(today) || sameMonth(end, today)
}

// scheduledPeriods returns the periods still in the scheduled state.
func scheduledPeriods(periods []MaintenancePeriod) []MaintenancePeriod {
	var out []MaintenancePeriod
	for _, p := range periods {
		if p.Status == PeriodScheduled {
			out = append(out, p)
		}
	}
	return out
}

// DeriveContractStatus maps a contract's end date and period list to the
// persisted aggregate status.
func DeriveContractStatus(endDate *time.Time, periods []MaintenancePeriod, now time.Time) ContractStatus {
	if needsProlongation(endDate, now) {
		return ContractProlongation
	}
	if len(scheduledPeriods(periods)) == 0 {
		return ContractDone
	}
	return ContractScheduled
}

// DisplayStatusFor maps a contract's end date and period list to the badge
// shown in every list, board and report view.
//
// "Крайні роботи" covers two cases: no scheduled periods remain, or all
// remaining scheduled periods converge on a single start day. Periods with
// no start date count toward the first check but are excluded from the
// distinct-day set.
func DisplayStatusFor(endDate *time.Time, periods []MaintenancePeriod, now time.Time) DisplayStatus {
	if needsProlongation(endDate, now) {
		return DisplayProlongation
	}

	scheduled := scheduledPeriods(periods)
	if len(scheduled) == 0 {
		return DisplayFinalWorks
	}

	days := make(map[string]struct{})
	for _, p := range scheduled {
		if p.StartDate == nil {
			continue
		}
		days[Day(*p.StartDate).Format("2006-01-02")] = struct{}{}
	}
	if len(days) == 1 {
		return DisplayFinalWorks
	}
	return DisplayScheduled
}

// DisplayStatus returns the badge for the contract itself.
func (c *ServiceContract) DisplayStatus(now time.Time) DisplayStatus {
	return DisplayStatusFor(c.ContractEndDate, c.MaintenancePeriods, now)
}

// Recalc derives and stores the aggregate status from the current period
// list. Mutation operations call this before persisting.
func (c *ServiceContract) Recalc(now time.Time) {
	c.Status = DeriveContractStatus(c.ContractEndDate, c.MaintenancePeriods, now)
}
