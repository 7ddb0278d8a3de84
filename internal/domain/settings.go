package domain

// MaintenanceViewMode selects how the maintenance tab renders its periods.
type MaintenanceViewMode string

const (
	ViewList              MaintenanceViewMode = "list"
	ViewKanbanEngineer    MaintenanceViewMode = "kanban-engineer"
	ViewKanbanSubdivision MaintenanceViewMode = "kanban-subdivision"
)

func (m MaintenanceViewMode) Valid() bool {
	switch m {
	case ViewList, ViewKanbanEngineer, ViewKanbanSubdivision:
		return true
	}
	return false
}

// DisplaySettings are per-user display preferences, stored with the user
// profile and passed explicitly into view queries instead of living in a
// global.
type DisplaySettings struct {
	AutoHidePanels      bool                `json:"autoHidePanels"`
	IsWideMode          bool                `json:"isWideMode"`
	ShowOverdue         bool                `json:"showOverdue"`
	ShowUpcoming        bool                `json:"showUpcoming"`
	UpcomingDays        int                 `json:"upcomingDays"`
	UpcomingEndOfMonth  bool                `json:"upcomingEndOfMonth"`
	MaintenanceViewMode MaintenanceViewMode `json:"maintenanceViewMode"`
	BaseFontSize        int                 `json:"baseFontSize"`
	ShowCompletedTasks  bool                `json:"showCompletedTasks"`
}

// DefaultDisplaySettings mirrors the client-side defaults.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		ShowOverdue:         true,
		ShowUpcoming:        true,
		UpcomingDays:        7,
		MaintenanceViewMode: ViewList,
		BaseFontSize:        16,
		ShowCompletedTasks:  true,
	}
}
