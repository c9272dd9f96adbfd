package repository

import (
	"context"

	"gorm.io/gorm"

	"school-portal/backend/internal/model"
)

// PeriodSettingsRepository 节次配置数据访问接口
type PeriodSettingsRepository interface {
	Get(ctx context.Context) (*model.PeriodSettings, error)
	Replace(ctx context.Context, settings *model.PeriodSettings) error
}

type periodSettingsRepo struct {
	db *gorm.DB
}

// NewPeriodSettingsRepo 创建 PeriodSettingsRepository 实例
func NewPeriodSettingsRepo(db *gorm.DB) PeriodSettingsRepository {
	return &periodSettingsRepo{db: db}
}

func (r *periodSettingsRepo) Get(ctx context.Context) (*model.PeriodSettings, error) {
	var settings model.PeriodSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *periodSettingsRepo) Replace(ctx context.Context, settings *model.PeriodSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
