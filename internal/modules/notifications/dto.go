package notifications

// PeriodAlert is one row of the overdue or upcoming list, a period joined
// with just enough contract context to render a notification card.
type PeriodAlert struct {
	ContractID     string `json:"contractId"`
	ContractNumber string `json:"contractNumber"`
	ObjectName     string `json:"objectName"`
	PeriodID       string `json:"periodId"`
	PeriodName     string `json:"periodName"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate,omitempty"`
	Subdivision    string `json:"subdivision"`
	DaysOverdue    int    `json:"daysOverdue,omitempty"`
	DaysUntil      int    `json:"daysUntil,omitempty"`
}
