package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/model"
	"school-portal/backend/internal/repository"
)

// ── 学生端课表服务 ──────────────────────────────────────────

// DashboardService 学生端只读周课表
//
// 与编辑器共用同一套节次网格推导和同一份条目存储：
//   - 时间槽实时由当前配置推导，条目时间展示其冻结值；
//   - 假期覆盖只在此处抑制展示，匹配日整日留空；
//   - 任课教师列表是对条目的纯聚合投影，不查独立的任课表。
type DashboardService interface {
	// GetWeeklyTimetable 以参考时刻所在周（周一起）组装周课表
	GetWeeklyTimetable(ctx context.Context, classID string, reference time.Time) (*dto.WeeklyTimetableResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建学生端课表服务实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) GetWeeklyTimetable(ctx context.Context, classID string, reference time.Time) (*dto.WeeklyTimetableResponse, error) {
	settings, err := s.repo.PeriodSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodSettingsNotFound
		}
		return nil, err
	}
	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Timetable.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	holidays, err := s.repo.Holiday.List(ctx)
	if err != nil {
		return nil, err
	}

	// 按星期分桶（ListByClass 已按星期、节次排序）
	byDay := make(map[int][]model.TimetableEntry, model.Saturday)
	for _, entry := range entries {
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}

	days := make([]dto.DashboardDayResponse, 0, model.Saturday)
	for day := model.Monday; day <= model.Saturday; day++ {
		date := weekdayDate(reference, day)
		isHoliday, holidayName := matchHoliday(date, holidays)

		dayResp := dto.DashboardDayResponse{
			DayOfWeek:   day,
			Date:        date.Format(dateLayout),
			IsHoliday:   isHoliday,
			HolidayName: holidayName,
			Cells:       make([]dto.DashboardCellResponse, 0),
		}
		// 假期日整日留空；条目仍在存储中，假期删除后即恢复展示
		if !isHoliday {
			for i := range byDay[day] {
				entry := &byDay[day][i]
				cell := dto.DashboardCellResponse{
					PeriodNumber: entry.PeriodNumber,
					RoomNumber:   entry.RoomNumber,
					StartTime:    normalizeClock(entry.StartTime),
					EndTime:      normalizeClock(entry.EndTime),
				}
				if entry.Subject != nil {
					cell.SubjectName = entry.Subject.Name
				}
				if entry.Teacher != nil {
					cell.TeacherName = entry.Teacher.Name
				}
				dayResp.Cells = append(dayResp.Cells, cell)
			}
		}
		days = append(days, dayResp)
	}

	return &dto.WeeklyTimetableResponse{
		ClassID:  classID,
		Slots:    toSlotResponses(slots),
		Days:     days,
		Teachers: projectTeacherSubjects(entries),
	}, nil
}

// projectTeacherSubjects 对条目做 教师 → 去重科目集合 的聚合投影
// 教师按姓名排序，科目按名称排序
func projectTeacherSubjects(entries []model.TimetableEntry) []dto.TeacherSubjectsResponse {
	type bucket struct {
		name     string
		subjects map[string]struct{}
	}
	byTeacher := make(map[string]*bucket)
	for i := range entries {
		entry := &entries[i]
		b, ok := byTeacher[entry.TeacherID]
		if !ok {
			b = &bucket{subjects: make(map[string]struct{})}
			if entry.Teacher != nil {
				b.name = entry.Teacher.Name
			}
			byTeacher[entry.TeacherID] = b
		}
		if entry.Subject != nil {
			b.subjects[entry.Subject.Name] = struct{}{}
		}
	}

	out := make([]dto.TeacherSubjectsResponse, 0, len(byTeacher))
	for id, b := range byTeacher {
		subjects := make([]string, 0, len(b.subjects))
		for name := range b.subjects {
			subjects = append(subjects, name)
		}
		sort.Strings(subjects)
		out = append(out, dto.TeacherSubjectsResponse{
			TeacherID:   id,
			TeacherName: b.name,
			Subjects:    subjects,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TeacherName != out[j].TeacherName {
			return out[i].TeacherName < out[j].TeacherName
		}
		return out[i].TeacherID < out[j].TeacherID
	})
	return out
}
