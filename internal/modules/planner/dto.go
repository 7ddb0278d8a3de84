package planner

// PeriodProjection is the flattened view of a maintenance period that goes
// into the oracle prompt. Dates travel as strings so callers can forward
// whatever form the client holds, normalization happens during validation.
type PeriodProjection struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	StartDate           string   `json:"startDate,omitempty"`
	EndDate             string   `json:"endDate,omitempty"`
	Subdivision         string   `json:"subdivision"`
	AssignedEngineerIDs []string `json:"assignedEngineerIds"`
	EquipmentDetails    string   `json:"equipmentDetails,omitempty"`
	ContractName        string   `json:"contractName,omitempty"`
	Address             string   `json:"address,omitempty"`
	Status              string   `json:"status,omitempty"`
}

type RescheduleRequest struct {
	PeriodToReschedule   PeriodProjection   `json:"periodToReschedule" binding:"required"`
	OtherScheduledPeriods []PeriodProjection `json:"otherScheduledPeriods"`
	ServiceHistory       string             `json:"serviceHistory"`
	EngineerAvailability string             `json:"engineerAvailability"`
}

// Suggestion is one candidate date for the single-period form. Advisory
// only, nothing is written until the user applies it. OutsideWindow marks
// a date the oracle placed outside the period's own start/end range.
type Suggestion struct {
	NewDate          string `json:"newDate"`
	Reason           string `json:"reason"`
	OriginalPeriodID string `json:"originalPeriodId"`
	OutsideWindow    bool   `json:"outsideWindow,omitempty"`
}

type RescheduleResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type PlanMonthRequest struct {
	Periods  []PeriodProjection `json:"periods" binding:"required"`
	MonthRef string             `json:"monthRef"`
}

// PlanItem is the per-period result of the batch form. OutsideWindow marks
// dates the oracle placed outside the period's own start/end range, they
// are surfaced but flagged rather than dropped.
type PlanItem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SuggestedDates []string `json:"suggestedDates"`
	Reason         string   `json:"reason"`
	OutsideWindow  []string `json:"outsideWindow,omitempty"`
}

type PlanMonthResponse struct {
	OK   bool       `json:"ok"`
	Data []PlanItem `json:"data"`
	Raw  string     `json:"raw"`
}
