package repository

import (
	"context"

	"aircontrol/internal/domain"

	"gorm.io/gorm"
)

type EquipmentModelRepository struct {
	db *gorm.DB
}

func NewEquipmentModelRepository(db *gorm.DB) *EquipmentModelRepository {
	return &EquipmentModelRepository{db: db}
}

type equipmentModelRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Category string `gorm:"column:category"`
}

func (equipmentModelRow) TableName() string { return "equipment_models" }

func (r *EquipmentModelRepository) Create(ctx context.Context, m *domain.EquipmentModel) error {
	row := equipmentModelRow{ID: m.ID, Name: m.Name, Category: m.Category}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *EquipmentModelRepository) Update(ctx context.Context, m *domain.EquipmentModel) error {
	row := equipmentModelRow{ID: m.ID, Name: m.Name, Category: m.Category}
	return r.db.WithContext(ctx).Model(&equipmentModelRow{}).
		Where("id = ?", m.ID).
		Select("name", "category").
		Updates(&row).Error
}

func (r *EquipmentModelRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&equipmentModelRow{}, "id = ?", id).Error
}

func (r *EquipmentModelRepository) GetAll(ctx context.Context) ([]domain.EquipmentModel, error) {
	var rows []equipmentModelRow
	if err := r.db.WithContext(ctx).Order("category, name").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.EquipmentModel, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.EquipmentModel{ID: row.ID, Name: row.Name, Category: row.Category})
	}
	return out, nil
}

func (r *EquipmentModelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&equipmentModelRow{}).
		Where("lower(name) = lower(?)", name).
		Count(&count).Error
	return count > 0, err
}

func (r *EquipmentModelRepository) Migrate() error {
	return r.db.AutoMigrate(&equipmentModelRow{})
}
