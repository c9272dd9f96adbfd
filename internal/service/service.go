package service

import (
	"time"

	"go.uber.org/zap"

	"school-portal/backend/config"
	"school-portal/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	PeriodSettings PeriodSettingsService
	Timetable      TimetableService
	Holiday        HolidayService
	Dashboard      DashboardService
	Directory      DirectoryService
	Export         ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		logger.Warn("时区加载失败，回退到本地时区", zap.String("timezone", cfg.Database.Timezone))
		loc = time.Local
	}

	return &Service{
		PeriodSettings: NewPeriodSettingsService(repo.PeriodSettings, logger),
		Timetable:      NewTimetableService(repo, logger),
		Holiday:        NewHolidayService(repo.Holiday, logger),
		Dashboard:      NewDashboardService(repo, logger),
		Directory:      NewDirectoryService(repo, logger),
		Export:         NewExportService(repo, loc, logger),
	}
}
