package domain

import "time"

// ContractStatus is the persisted aggregate status of a service contract.
// Values are stored exactly as the client displays them.
type ContractStatus string

const (
	ContractScheduled    ContractStatus = "Заплановано"
	ContractDone         ContractStatus = "Виконано"
	ContractProlongation ContractStatus = "Пролонгація"
)

// DisplayStatus is the badge shown for a contract. It extends ContractStatus
// with "Крайні роботи", which is never persisted: the stored status stays
// "Виконано" while the badge logic renders it as final works.
type DisplayStatus string

const (
	DisplayScheduled    DisplayStatus = "Заплановано"
	DisplayFinalWorks   DisplayStatus = "Крайні роботи"
	DisplayProlongation DisplayStatus = "Пролонгація"
)

type PeriodStatus string

const (
	PeriodScheduled PeriodStatus = "Заплановано"
	PeriodDone      PeriodStatus = "Виконано"
)

// Subdivision is the equipment category a maintenance period belongs to.
type Subdivision string

const (
	SubdivisionClimate   Subdivision = "КОНД"
	SubdivisionUPS       Subdivision = "ДБЖ"
	SubdivisionGenerator Subdivision = "ДГУ"
)

func (s Subdivision) Valid() bool {
	switch s {
	case SubdivisionClimate, SubdivisionUPS, SubdivisionGenerator:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceQuarterly  ServiceType = "Щоквартальне"
	ServiceSemiAnnual ServiceType = "Піврічне"
	ServiceAnnual     ServiceType = "Щорічне"
)

type PartUsed struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ServiceReport struct {
	ID              string     `json:"id"`
	ReportDate      *time.Time `json:"reportDate"`
	EngineerID      string     `json:"engineerId"`
	WorkDescription string     `json:"workDescription"`
	PartsUsed       []PartUsed `json:"partsUsed"`
}

type Equipment struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Model        string          `json:"model"`
	SerialNumber string          `json:"serialNumber"`
	GroupNumber  string          `json:"groupNumber,omitempty"`
	Reports      []ServiceReport `json:"reports,omitempty"`
}

type MaintenancePeriod struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	StartDate           *time.Time   `json:"startDate,omitempty"`
	EndDate             *time.Time   `json:"endDate,omitempty"`
	Subdivision         Subdivision  `json:"subdivision"`
	AssignedEngineerIDs []string     `json:"assignedEngineerIds"`
	EquipmentIDs        []string     `json:"equipmentIds"`
	Status              PeriodStatus `json:"status"`
}

// ServiceContract owns its periods and equipment: both collections are
// embedded in the contract document and written as one unit.
type ServiceContract struct {
	ID                 string              `json:"id"`
	ContractNumber     string              `json:"contractNumber"`
	ObjectName         string              `json:"objectName"`
	Counterparty       string              `json:"counterparty"`
	Address            string              `json:"address"`
	Coordinates        string              `json:"coordinates,omitempty"`
	ContactPerson      string              `json:"contactPerson,omitempty"`
	ContactPhone       string              `json:"contactPhone,omitempty"`
	ContractStartDate  *time.Time          `json:"contractStartDate,omitempty"`
	ContractEndDate    *time.Time          `json:"contractEndDate,omitempty"`
	ServiceType        ServiceType         `json:"serviceType"`
	Status             ContractStatus      `json:"status"`
	WorkDescription    string              `json:"workDescription,omitempty"`
	MaintenancePeriods []MaintenancePeriod `json:"maintenancePeriods"`
	Equipment          []Equipment         `json:"equipment"`
	Archived           bool                `json:"archived"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// Period returns the period with the given id, or nil.
func (c *ServiceContract) Period(periodID string) *MaintenancePeriod {
	for i := range c.MaintenancePeriods {
		if c.MaintenancePeriods[i].ID == periodID {
			return &c.MaintenancePeriods[i]
		}
	}
	return nil
}

// HasEquipment reports whether the contract owns equipment with the given id.
func (c *ServiceContract) HasEquipment(equipmentID string) bool {
	for i := range c.Equipment {
		if c.Equipment[i].ID == equipmentID {
			return true
		}
	}
	return false
}
