package repository

import (
	"context"
	"encoding/json"
	"time"

	"aircontrol/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// contractModel is one contract document: the period and equipment
// collections live in JSON columns so every mutation writes the contract as
// a single row, the same unit of atomicity the source system had.
type contractModel struct {
	ID                 string         `gorm:"column:id;primaryKey"`
	ContractNumber     string         `gorm:"column:contract_number;uniqueIndex"`
	ObjectName         string         `gorm:"column:object_name"`
	Counterparty       string         `gorm:"column:counterparty"`
	Address            string         `gorm:"column:address"`
	Coordinates        string         `gorm:"column:coordinates"`
	ContactPerson      string         `gorm:"column:contact_person"`
	ContactPhone       string         `gorm:"column:contact_phone"`
	ContractStartDate  *time.Time     `gorm:"column:contract_start_date"`
	ContractEndDate    *time.Time     `gorm:"column:contract_end_date"`
	ServiceType        string         `gorm:"column:service_type"`
	Status             string         `gorm:"column:status"`
	WorkDescription    string         `gorm:"column:work_description"`
	MaintenancePeriods datatypes.JSON `gorm:"column:maintenance_periods"`
	Equipment          datatypes.JSON `gorm:"column:equipment"`
	Archived           bool           `gorm:"column:archived"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
}

func (contractModel) TableName() string { return "service_contracts" }

func toDomainContract(m contractModel) (*domain.ServiceContract, error) {
	c := &domain.ServiceContract{
		ID:                m.ID,
		ContractNumber:    m.ContractNumber,
		ObjectName:        m.ObjectName,
		Counterparty:      m.Counterparty,
		Address:           m.Address,
		Coordinates:       m.Coordinates,
		ContactPerson:     m.ContactPerson,
		ContactPhone:      m.ContactPhone,
		ContractStartDate: m.ContractStartDate,
		ContractEndDate:   m.ContractEndDate,
		ServiceType:       domain.ServiceType(m.ServiceType),
		Status:            domain.ContractStatus(m.Status),
		WorkDescription:   m.WorkDescription,
		Archived:          m.Archived,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	if len(m.MaintenancePeriods) > 0 {
		if err := json.Unmarshal(m.MaintenancePeriods, &c.MaintenancePeriods); err != nil {
			return nil, err
		}
	}
	if len(m.Equipment) > 0 {
		if err := json.Unmarshal(m.Equipment, &c.Equipment); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func fromDomainContract(c *domain.ServiceContract) (contractModel, error) {
	periods, err := json.Marshal(c.MaintenancePeriods)
	if err != nil {
		return contractModel{}, err
	}
	equipment, err := json.Marshal(c.Equipment)
	if err != nil {
		return contractModel{}, err
	}

	return contractModel{
		ID:                 c.ID,
		ContractNumber:     c.ContractNumber,
		ObjectName:         c.ObjectName,
		Counterparty:       c.Counterparty,
		Address:            c.Address,
		Coordinates:        c.Coordinates,
		ContactPerson:      c.ContactPerson,
		ContactPhone:       c.ContactPhone,
		ContractStartDate:  c.ContractStartDate,
		ContractEndDate:    c.ContractEndDate,
		ServiceType:        string(c.ServiceType),
		Status:             string(c.Status),
		WorkDescription:    c.WorkDescription,
		MaintenancePeriods: datatypes.JSON(periods),
		Equipment:          datatypes.JSON(equipment),
		Archived:           c.Archived,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}, nil
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.ServiceContract) error {
	m, err := fromDomainContract(c)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*domain.ServiceContract, error) {
	var m contractModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomainContract(m)
}

// GetAll returns contracts, optionally including archived ones, ordered by
// contract number.
func (r *ContractRepository) GetAll(ctx context.Context, includeArchived bool) ([]domain.ServiceContract, error) {
	q := r.db.WithContext(ctx).Order("contract_number")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}

	var models []contractModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ServiceContract, 0, len(models))
	for _, m := range models {
		c, err := toDomainContract(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// Update writes the whole contract row. Last write wins, there is no
// version check, matching the source system's behavior.
func (r *ContractRepository) Update(ctx context.Context, c *domain.ServiceContract) error {
	m, err := fromDomainContract(c)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&contractModel{}).
		Where("id = ?", c.ID).
		Select("*").Omit("id", "created_at").
		Updates(&m).Error
}

func (r *ContractRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&contractModel{}).
		Where("contract_number = ?", number).
		Count(&count).Error
	return count > 0, err
}

// Migrate creates the contracts table.
func (r *ContractRepository) Migrate() error {
	return r.db.AutoMigrate(&contractModel{})
}
