package repository

import (
	"context"
	"errors"

	"github.com/motorsync/garage-api/internal/domain/entity"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new garage settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the single settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.GarageSettings, error) {
	var settings entity.GarageSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.GarageSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.GarageSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
