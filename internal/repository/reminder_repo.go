package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Reminder is a stored reminder request. Delivery is out of scope here,
// the rows are kept for a separate sender to pick up.
type Reminder struct {
	ID        int64          `gorm:"column:id;primaryKey" json:"id"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (Reminder) TableName() string { return "reminders" }

func (r *ReminderRepository) Create(ctx context.Context, payload []byte) (*Reminder, error) {
	rem := Reminder{Payload: datatypes.JSON(payload)}
	if err := r.db.WithContext(ctx).Create(&rem).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *ReminderRepository) GetAll(ctx context.Context) ([]Reminder, error) {
	var out []Reminder
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (r *ReminderRepository) Migrate() error {
	return r.db.AutoMigrate(&Reminder{})
}
