package contracts

import "aircontrol/internal/domain"

// Dates travel as strings and are normalized once, at the handler/service
// boundary, into canonical day-truncated times.

type PeriodInput struct {
	Name                string   `json:"name"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	Subdivision         string   `json:"subdivision"`
	AssignedEngineerIDs []string `json:"assignedEngineerIds"`
	EquipmentIDs        []string `json:"equipmentIds"`
}

type EquipmentInput struct {
	Name         string `json:"name" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber"`
	GroupNumber  string `json:"groupNumber"`
}

type CreateContractRequest struct {
	ContractNumber    string           `json:"contractNumber" binding:"required"`
	ObjectName        string           `json:"objectName" binding:"required"`
	Counterparty      string           `json:"counterparty" binding:"required"`
	Address           string           `json:"address" binding:"required"`
	Coordinates       string           `json:"coordinates"`
	ContactPerson     string           `json:"contactPerson"`
	ContactPhone      string           `json:"contactPhone"`
	ContractStartDate string           `json:"contractStartDate"`
	ContractEndDate   string           `json:"contractEndDate"`
	ServiceType       string           `json:"serviceType"`
	WorkDescription   string           `json:"workDescription"`
	Periods           []PeriodInput    `json:"maintenancePeriods"`
	Equipment         []EquipmentInput `json:"equipment"`
}

type UpdateContractRequest struct {
	ObjectName        *string `json:"objectName"`
	Counterparty      *string `json:"counterparty"`
	Address           *string `json:"address"`
	Coordinates       *string `json:"coordinates"`
	ContactPerson     *string `json:"contactPerson"`
	ContactPhone      *string `json:"contactPhone"`
	ContractStartDate *string `json:"contractStartDate"`
	ContractEndDate   *string `json:"contractEndDate"`
	ServiceType       *string `json:"serviceType"`
	WorkDescription   *string `json:"workDescription"`
}

type EditDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type FinalizeRequest struct {
	ActualStartDate string   `json:"actualStartDate" binding:"required"`
	ActualEndDate   string   `json:"actualEndDate" binding:"required"`
	EngineerIDs     []string `json:"engineerIds" binding:"required"`
}

type ToggleEngineerRequest struct {
	EngineerID string `json:"engineerId" binding:"required"`
}

type ToggleEquipmentRequest struct {
	EquipmentID string `json:"equipmentId" binding:"required"`
}

type ReportInput struct {
	ReportDate      string            `json:"reportDate" binding:"required"`
	EngineerID      string            `json:"engineerId" binding:"required"`
	WorkDescription string            `json:"workDescription"`
	PartsUsed       []domain.PartUsed `json:"partsUsed"`
}

// ContractView decorates a contract with its derived badge so clients never
// have to re-implement the status rules.
type ContractView struct {
	domain.ServiceContract
	DisplayStatus domain.DisplayStatus `json:"displayStatus"`
}
