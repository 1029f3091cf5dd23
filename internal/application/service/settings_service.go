package service

import (
	"context"

	"github.com/greenpalms/resort-api/internal/domain/entity"
	"github.com/greenpalms/resort-api/internal/domain/repository"
	"github.com/greenpalms/resort-api/pkg/apperror"
)

// SettingsService handles the resort settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the resort settings row
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ResortSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateSettingsInput carries the writable settings fields. LogoPath is only
// applied when a new logo was uploaded.
type UpdateSettingsInput struct {
	ResortName    string
	ResortGSTIN   string
	KitchenGSTIN  string
	ResortAddress string
	ResortContact string
	ResortEmail   string
	TaxRate       *float64
	LogoPath      *string
}

// UpdateSettings updates the resort settings singleton
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ResortSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.ResortSettings{}
	}

	if input.ResortName != "" {
		settings.ResortName = input.ResortName
	}
	settings.ResortGSTIN = input.ResortGSTIN
	settings.KitchenGSTIN = input.KitchenGSTIN
	settings.ResortAddress = input.ResortAddress
	settings.ResortContact = input.ResortContact
	settings.ResortEmail = input.ResortEmail
	if input.TaxRate != nil {
		if *input.TaxRate < 0 || *input.TaxRate > 100 {
			return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
		}
		settings.TaxRate = *input.TaxRate
	}
	if input.LogoPath != nil {
		settings.LogoPath = *input.LogoPath
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
