package repository

import (
	"context"

	"github.com/greenpalms/resort-api/internal/domain/entity"
)

// SettingsRepository defines persistence for the resort settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.ResortSettings, error)
	Save(ctx context.Context, settings *entity.ResortSettings) error
}
