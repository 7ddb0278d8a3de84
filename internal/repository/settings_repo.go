package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"aircontrol/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsRow struct {
	UserID    int64          `gorm:"column:user_id;primaryKey"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (settingsRow) TableName() string { return "display_settings" }

// Get returns the stored settings for a user, or nil when none exist yet.
func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*domain.DisplaySettings, error) {
	var row settingsRow
	err := r.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s domain.DisplaySettings
	if err := json.Unmarshal(row.Payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Put(ctx context.Context, userID int64, s domain.DisplaySettings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}

	row := settingsRow{UserID: userID, Payload: payload}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (r *SettingsRepository) Migrate() error {
	return r.db.AutoMigrate(&settingsRow{})
}
