package repository

import (
	"context"

	"github.com/motorsync/garage-api/internal/domain/entity"
)

// SettingsRepository defines the interface for garage settings access
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.GarageSettings, error)
	Create(ctx context.Context, settings *entity.GarageSettings) error
	Update(ctx context.Context, settings *entity.GarageSettings) error
}
