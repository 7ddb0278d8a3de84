package exchange

import "aircontrol/internal/domain"

// ExportBundle is the "all" export shape, also the keyed import shape.
type ExportBundle struct {
	Contracts       []domain.ServiceContract `json:"contracts"`
	Engineers       []domain.ServiceEngineer `json:"engineers"`
	EquipmentModels []domain.EquipmentModel  `json:"equipmentModels"`
}

// ImportResult reports what an import actually added. Entries already
// present are skipped, imports never overwrite.
type ImportResult struct {
	ContractsAdded int `json:"contractsAdded"`
	EngineersAdded int `json:"engineersAdded"`
	ModelsAdded    int `json:"modelsAdded"`
	Skipped        int `json:"skipped"`
}
