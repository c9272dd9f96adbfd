package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/model"
	"school-portal/backend/internal/repository"
)

// ── 节次配置服务 ────────────────────────────────────────────

var (
	// ErrPeriodSettingsNotFound 单例配置行缺失（迁移未执行）
	ErrPeriodSettingsNotFound = errors.New("节次配置未初始化")
)

// PeriodSettingsService 全校节次配置的读取与整体替换
type PeriodSettingsService interface {
	// Get 读取当前生效的节次配置
	Get(ctx context.Context) (*dto.PeriodSettingsResponse, error)
	// Update 整体替换四项配置并使版本号 +1
	// 已排入课表的条目保留其冻结时刻，不受本次修改影响
	Update(ctx context.Context, req *dto.UpdatePeriodSettingsRequest, operatorID string) (*dto.PeriodSettingsResponse, error)
}

type periodSettingsService struct {
	repo   repository.PeriodSettingsRepository
	logger *zap.Logger
}

// NewPeriodSettingsService 创建节次配置服务实例
func NewPeriodSettingsService(repo repository.PeriodSettingsRepository, logger *zap.Logger) PeriodSettingsService {
	return &periodSettingsService{repo: repo, logger: logger}
}

func (s *periodSettingsService) Get(ctx context.Context) (*dto.PeriodSettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodSettingsNotFound
		}
		return nil, err
	}
	return toPeriodSettingsResponse(settings), nil
}

func (s *periodSettingsService) Update(ctx context.Context, req *dto.UpdatePeriodSettingsRequest, operatorID string) (*dto.PeriodSettingsResponse, error) {
	// 域校验复用网格推导的边界检查：推导不出合法网格的配置一律拒绝
	candidate := &model.PeriodSettings{
		PeriodDurationMinutes: req.PeriodDurationMinutes,
		SchoolStartTime:       req.SchoolStartTime,
		LunchAfterPeriod:      req.LunchAfterPeriod,
		LunchDurationMinutes:  req.LunchDurationMinutes,
	}
	if _, err := GeneratePeriodGrid(candidate); err != nil {
		return nil, err
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodSettingsNotFound
		}
		return nil, err
	}

	// 整体替换：四项全部以请求值覆盖，版本号单调递增
	settings.PeriodDurationMinutes = req.PeriodDurationMinutes
	settings.SchoolStartTime = req.SchoolStartTime
	settings.LunchAfterPeriod = req.LunchAfterPeriod
	settings.LunchDurationMinutes = req.LunchDurationMinutes
	settings.Version++
	settings.UpdatedBy = &operatorID
	settings.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("节次配置已更新",
		zap.Int("version", settings.Version),
		zap.Int("period_duration", settings.PeriodDurationMinutes),
		zap.String("school_start", settings.SchoolStartTime),
		zap.Int("lunch_after", settings.LunchAfterPeriod),
		zap.Int("lunch_duration", settings.LunchDurationMinutes),
		zap.String("operator", operatorID))

	return toPeriodSettingsResponse(settings), nil
}

func toPeriodSettingsResponse(m *model.PeriodSettings) *dto.PeriodSettingsResponse {
	return &dto.PeriodSettingsResponse{
		PeriodDurationMinutes: m.PeriodDurationMinutes,
		SchoolStartTime:       normalizeClock(m.SchoolStartTime),
		LunchAfterPeriod:      m.LunchAfterPeriod,
		LunchDurationMinutes:  m.LunchDurationMinutes,
		Version:               m.Version,
		UpdatedAt:             m.UpdatedAt.Format(time.RFC3339),
	}
}
