package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"school-portal/backend/internal/model"
	"school-portal/backend/internal/repository"
	apperrors "school-portal/backend/pkg/errors"
)

// ── Mock PeriodSettingsRepository ──

type mockPeriodSettingsRepo struct {
	settings *model.PeriodSettings
}

func newMockPeriodSettingsRepo() *mockPeriodSettingsRepo {
	return &mockPeriodSettingsRepo{
		settings: &model.PeriodSettings{
			Singleton:             true,
			PeriodDurationMinutes: 45,
			SchoolStartTime:       "08:00",
			LunchAfterPeriod:      4,
			LunchDurationMinutes:  60,
			Version:               1,
		},
	}
}

func (m *mockPeriodSettingsRepo) Get(_ context.Context) (*model.PeriodSettings, error) {
	if m.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockPeriodSettingsRepo) Replace(_ context.Context, settings *model.PeriodSettings) error {
	cp := *settings
	m.settings = &cp
	return nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	entries map[string]*model.TimetableEntry
	nextID  int

	// 模拟真实实现的 Preload("Subject") / Preload("Teacher")
	subjects *mockSubjectRepo
	teachers *mockTeacherRepo
}

func newMockTimetableRepo(subjects *mockSubjectRepo, teachers *mockTeacherRepo) *mockTimetableRepo {
	return &mockTimetableRepo{
		entries:  make(map[string]*model.TimetableEntry),
		subjects: subjects,
		teachers: teachers,
	}
}

func (m *mockTimetableRepo) preload(e *model.TimetableEntry) {
	if s, ok := m.subjects.subjects[e.SubjectID]; ok {
		e.Subject = s
	}
	if t, ok := m.teachers.teachers[e.TeacherID]; ok {
		e.Teacher = t
	}
}

func (m *mockTimetableRepo) ListByClass(_ context.Context, classID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.ClassID == classID {
			cp := *e
			m.preload(&cp)
			result = append(result, cp)
		}
	}
	// 与真实实现一致：按星期、节次排序
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].PeriodNumber < result[j].PeriodNumber
	})
	return result, nil
}

func (m *mockTimetableRepo) GetByID(_ context.Context, id string) (*model.TimetableEntry, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		m.preload(&cp)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) GetByCell(_ context.Context, classID string, dayOfWeek, periodNumber int) (*model.TimetableEntry, error) {
	for _, e := range m.entries {
		if e.ClassID == classID && e.DayOfWeek == dayOfWeek && e.PeriodNumber == periodNumber {
			cp := *e
			m.preload(&cp)
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	if entry.EntryID == "" {
		m.nextID++
		entry.EntryID = fmt.Sprintf("entry-%d", m.nextID)
	}
	entry.UpdatedAt = time.Now()
	cp := *entry
	m.entries[entry.EntryID] = &cp
	return nil
}

func (m *mockTimetableRepo) Update(_ context.Context, entry *model.TimetableEntry) error {
	stored, ok := m.entries[entry.EntryID]
	if !ok || stored.Version != entry.Version {
		return apperrors.ErrOptimisticLock
	}
	stored.SubjectID = entry.SubjectID
	stored.TeacherID = entry.TeacherID
	stored.RoomNumber = entry.RoomNumber
	stored.UpdatedBy = entry.UpdatedBy
	stored.UpdatedAt = time.Now()
	stored.Version++
	entry.Version = stored.Version
	return nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}

// ── Mock HolidayRepository ──

type mockHolidayRepo struct {
	holidays map[string]*model.Holiday
	nextID   int
}

func newMockHolidayRepo() *mockHolidayRepo {
	return &mockHolidayRepo{holidays: make(map[string]*model.Holiday)}
}

func (m *mockHolidayRepo) List(_ context.Context) ([]model.Holiday, error) {
	var result []model.Holiday
	for _, h := range m.holidays {
		result = append(result, *h)
	}
	return result, nil
}

func (m *mockHolidayRepo) Create(_ context.Context, holiday *model.Holiday) error {
	if holiday.HolidayID == "" {
		m.nextID++
		holiday.HolidayID = fmt.Sprintf("holiday-%d", m.nextID)
	}
	cp := *holiday
	m.holidays[holiday.HolidayID] = &cp
	return nil
}

func (m *mockHolidayRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.holidays[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.holidays, id)
	return nil
}

// ── Mock 参照数据 Repository ──

type mockClassRepo struct {
	classes map[string]*model.Class
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) add(id, name string) {
	m.classes[id] = &model.Class{ClassID: id, Name: name, IsActive: true}
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	var result []model.Class
	for _, c := range m.classes {
		if c.IsActive {
			result = append(result, *c)
		}
	}
	return result, nil
}

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) add(id, name string) {
	m.subjects[id] = &model.Subject{SubjectID: id, Name: name, IsActive: true}
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		if s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) add(id, name string) {
	m.teachers[id] = &model.Teacher{TeacherID: id, Name: name, IsActive: true}
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		if t.IsActive {
			result = append(result, *t)
		}
	}
	return result, nil
}

// ── 测试用 Repository 聚合 ──

type testRepos struct {
	settings  *mockPeriodSettingsRepo
	timetable *mockTimetableRepo
	holiday   *mockHolidayRepo
	class     *mockClassRepo
	subject   *mockSubjectRepo
	teacher   *mockTeacherRepo
}

func newTestRepos() *testRepos {
	subject := newMockSubjectRepo()
	teacher := newMockTeacherRepo()
	return &testRepos{
		settings:  newMockPeriodSettingsRepo(),
		timetable: newMockTimetableRepo(subject, teacher),
		holiday:   newMockHolidayRepo(),
		class:     newMockClassRepo(),
		subject:   subject,
		teacher:   teacher,
	}
}

func (r *testRepos) aggregate() *repository.Repository {
	return &repository.Repository{
		PeriodSettings: r.settings,
		Timetable:      r.timetable,
		Holiday:        r.holiday,
		Class:          r.class,
		Subject:        r.subject,
		Teacher:        r.teacher,
	}
}
