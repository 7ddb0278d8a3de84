package domain

// EquipmentModel is a directory entry used to populate equipment pickers.
// Equipment rows store the name/model strings denormalized, so models are
// never referenced by foreign key.
type EquipmentModel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
