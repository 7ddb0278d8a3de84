package exchange

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"aircontrol/internal/domain"
)

// flexDate normalizes the assorted date representations found in export
// files (ISO strings, DD.MM.YYYY, epoch millis as number or string) into
// a canonical day. Values that fail to parse import as unset, matching
// the tolerance of the document model.
type flexDate struct {
	t *time.Time
}

func (d *flexDate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		d.t = nil
		return nil
	}

	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			d.t = nil
			return nil
		}
	} else {
		// Bare number, epoch millis.
		s = string(b)
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			d.t = nil
			return nil
		}
	}

	t, err := domain.ParseFlexibleDate(s)
	if err != nil {
		d.t = nil
		return nil
	}
	d.t = t
	return nil
}

type importPart struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type importReport struct {
	ReportDate      flexDate     `json:"reportDate"`
	EngineerID      string       `json:"engineerId"`
	WorkDescription string       `json:"workDescription"`
	PartsUsed       []importPart `json:"partsUsed"`
}

type importEquipment struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Model        string         `json:"model"`
	SerialNumber string         `json:"serialNumber"`
	GroupNumber  string         `json:"groupNumber"`
	Reports      []importReport `json:"reports"`
}

type importPeriod struct {
	Name                string   `json:"name"`
	StartDate           flexDate `json:"startDate"`
	EndDate             flexDate `json:"endDate"`
	Subdivision         string   `json:"subdivision"`
	AssignedEngineerIDs []string `json:"assignedEngineerIds"`
	EquipmentIDs        []string `json:"equipmentIds"`
	Status              string   `json:"status"`
}

type importContract struct {
	ContractNumber     string            `json:"contractNumber"`
	ObjectName         string            `json:"objectName"`
	Counterparty       string            `json:"counterparty"`
	Address            string            `json:"address"`
	Coordinates        string            `json:"coordinates"`
	ContactPerson      string            `json:"contactPerson"`
	ContactPhone       string            `json:"contactPhone"`
	ContractStartDate  flexDate          `json:"contractStartDate"`
	ContractEndDate    flexDate          `json:"contractEndDate"`
	ServiceType        string            `json:"serviceType"`
	WorkDescription    string            `json:"workDescription"`
	MaintenancePeriods []importPeriod    `json:"maintenancePeriods"`
	Equipment          []importEquipment `json:"equipment"`
	Archived           bool              `json:"archived"`
}

type importEngineer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type importModel struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type importBundle struct {
	Contracts       []importContract `json:"contracts"`
	Engineers       []importEngineer `json:"engineers"`
	EquipmentModels []importModel    `json:"equipmentModels"`
}
