package handler

import "school-portal/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	PeriodSettings *PeriodSettingsHandler
	Timetable      *TimetableHandler
	Dashboard      *DashboardHandler
	Holiday        *HolidayHandler
	Directory      *DirectoryHandler
	Export         *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		PeriodSettings: NewPeriodSettingsHandler(svc.PeriodSettings),
		Timetable:      NewTimetableHandler(svc.Timetable),
		Dashboard:      NewDashboardHandler(svc.Dashboard),
		Holiday:        NewHolidayHandler(svc.Holiday),
		Directory:      NewDirectoryHandler(svc.Directory),
		Export:         NewExportHandler(svc.Export),
	}
}
