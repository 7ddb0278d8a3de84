package reports

// Dashboard is the aggregate payload behind the reports page. Everything
// is derived on request from the contract list, nothing is persisted.
type Dashboard struct {
	Totals          Totals            `json:"totals"`
	ByDisplayStatus map[string]int    `json:"byDisplayStatus"`
	Attention       Attention         `json:"attention"`
	BySubdivision   map[string]int    `json:"periodsBySubdivision"`
	EngineerLoad    []EngineerLoad    `json:"engineerLoad"`
	Monthly         []MonthlyActivity `json:"monthly"`
	Year            int               `json:"year"`
}

type Totals struct {
	Contracts int `json:"contracts"`
	Periods   int `json:"periods"`
	Equipment int `json:"equipment"`
	Archived  int `json:"archived"`
}

// Attention counts the contracts a dispatcher has to act on.
type Attention struct {
	Prolongation int `json:"prolongation"`
	FinalWorks   int `json:"finalWorks"`
}

type EngineerLoad struct {
	EngineerID   string `json:"engineerId"`
	Name         string `json:"name"`
	ScheduledFor int    `json:"scheduledPeriods"`
}

type MonthlyActivity struct {
	Month     int `json:"month"`
	Done      int `json:"done"`
	Scheduled int `json:"scheduled"`
}
