package service

import (
	"context"

	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SettingsService handles the garage business profile and tax configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the garage settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.GarageSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.GarageSettings{
			GarageName:     "My Garage",
			Currency:       "INR",
			TaxRatePercent: decimal.NewFromInt(18),
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	GarageName     *string
	Address        *string
	Phone          *string
	Email          *string
	GSTIN          *string
	Currency       *string
	TaxRatePercent *decimal.Decimal
}

// UpdateSettings updates the garage profile. The tax rate applies to
// invoices created after the update; existing invoices keep their frozen
// amounts.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.GarageSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.GarageName != nil {
		settings.GarageName = *input.GarageName
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.Email != nil {
		settings.Email = *input.Email
	}
	if input.GSTIN != nil {
		settings.GSTIN = *input.GSTIN
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.TaxRatePercent != nil {
		if input.TaxRatePercent.IsNegative() || input.TaxRatePercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, apperror.NewValidationError("Tax rate must be between 0 and 100")
		}
		settings.TaxRatePercent = *input.TaxRatePercent
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
