package repository

import (
	"context"

	"aircontrol/internal/domain"

	"gorm.io/gorm"
)

type EngineerRepository struct {
	db *gorm.DB
}

func NewEngineerRepository(db *gorm.DB) *EngineerRepository {
	return &EngineerRepository{db: db}
}

type engineerModel struct {
	ID    string `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email;uniqueIndex"`
	Phone string `gorm:"column:phone"`
}

func (engineerModel) TableName() string { return "service_engineers" }

func toDomainEngineer(m engineerModel) domain.ServiceEngineer {
	return domain.ServiceEngineer{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}
}

func (r *EngineerRepository) Create(ctx context.Context, e *domain.ServiceEngineer) error {
	m := engineerModel{ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *EngineerRepository) Update(ctx context.Context, e *domain.ServiceEngineer) error {
	m := engineerModel{ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone}
	return r.db.WithContext(ctx).Model(&engineerModel{}).
		Where("id = ?", e.ID).
		Select("name", "email", "phone").
		Updates(&m).Error
}

func (r *EngineerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&engineerModel{}, "id = ?", id).Error
}

func (r *EngineerRepository) GetByID(ctx context.Context, id string) (*domain.ServiceEngineer, error) {
	var m engineerModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	e := toDomainEngineer(m)
	return &e, nil
}

func (r *EngineerRepository) GetAll(ctx context.Context) ([]domain.ServiceEngineer, error) {
	var models []engineerModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ServiceEngineer, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainEngineer(m))
	}
	return out, nil
}

func (r *EngineerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&engineerModel{}).
		Where("lower(email) = lower(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *EngineerRepository) Migrate() error {
	return r.db.AutoMigrate(&engineerModel{})
}
