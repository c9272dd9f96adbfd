package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	PeriodSettings PeriodSettingsRepository
	Timetable      TimetableRepository
	Holiday        HolidayRepository
	Class          ClassRepository
	Subject        SubjectRepository
	Teacher        TeacherRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		PeriodSettings: NewPeriodSettingsRepo(db),
		Timetable:      NewTimetableRepo(db),
		Holiday:        NewHolidayRepo(db),
		Class:          NewClassRepo(db),
		Subject:        NewSubjectRepo(db),
		Teacher:        NewTeacherRepo(db),
	}
}
