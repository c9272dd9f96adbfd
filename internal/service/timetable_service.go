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
	apperrors "school-portal/backend/pkg/errors"
)

// ── 课表编辑服务 ────────────────────────────────────────────

var (
	ErrTimetableClassNotFound   = errors.New("班级不存在")
	ErrTimetableSubjectNotFound = errors.New("科目不存在")
	ErrTimetableTeacherNotFound = errors.New("教师不存在")
	ErrTimetableEntryNotFound   = errors.New("课表条目不存在")
	ErrTimetableCellIsLunch     = errors.New("午休槽不可安排课程")
	ErrTimetableCellOutOfRange  = errors.New("星期或节次超出课表范围（周一至周六，第 1-8 节）")
	ErrTimetableDraftIncomplete = errors.New("科目与教师为必填项")
)

// TimetableService 管理员编辑器的网格读取与格子级写入
//
// 写路径约定：
//   - 格子已有条目且请求未携带版本号，视为编辑冲突（客户端
//     打开格子时认为其为空，期间他人已写入）。
//   - 格子已有条目且携带版本号，按乐观锁更新，版本不匹配
//     返回 apperrors.ErrOptimisticLock。
//   - 条目的起止时间在创建时按当时的节次配置冻结，此后的
//     编辑与配置变更都不触碰它们。
//   - 每次成功写入后重新读取整个网格返回，客户端以服务端
//     回读结果刷新展示，不在本地拼接状态。
type TimetableService interface {
	// GetGrid 读取班级的编辑器网格：推导的时间槽 + 已有条目
	// 未知班级返回空条目列表而非错误
	GetGrid(ctx context.Context, classID string) (*dto.TimetableGridResponse, error)
	// GetCellDraft 打开格子时的草稿预填
	GetCellDraft(ctx context.Context, classID string, dayOfWeek, periodNumber int) (*dto.CellDraftResponse, error)
	// SaveCell 保存格子（空格子新建，已有条目覆盖），返回回读的网格
	SaveCell(ctx context.Context, classID string, dayOfWeek, periodNumber int, req *dto.SaveCellRequest, operatorID string) (*dto.TimetableGridResponse, error)
	// DeleteEntry 删除条目并返回所属班级回读的网格
	DeleteEntry(ctx context.Context, entryID string) (*dto.TimetableGridResponse, error)
}

type timetableService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建课表编辑服务实例
func NewTimetableService(repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{repo: repo, logger: logger}
}

func (s *timetableService) GetGrid(ctx context.Context, classID string) (*dto.TimetableGridResponse, error) {
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

	resp := &dto.TimetableGridResponse{
		ClassID: classID,
		Slots:   toSlotResponses(slots),
		Entries: make([]dto.TimetableEntryResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, *toEntryResponse(&entries[i]))
	}
	return resp, nil
}

func (s *timetableService) GetCellDraft(ctx context.Context, classID string, dayOfWeek, periodNumber int) (*dto.CellDraftResponse, error) {
	if err := validateCell(dayOfWeek, periodNumber); err != nil {
		return nil, err
	}

	draft := &dto.CellDraftResponse{
		ClassID:      classID,
		DayOfWeek:    dayOfWeek,
		PeriodNumber: periodNumber,
	}

	entry, err := s.repo.Timetable.GetByCell(ctx, classID, dayOfWeek, periodNumber)
	switch {
	case err == nil:
		// 已有条目：预填其冻结的起止时间，不按当前配置重算
		draft.StartTime = normalizeClock(entry.StartTime)
		draft.EndTime = normalizeClock(entry.EndTime)
		draft.Existing = toEntryResponse(entry)
		return draft, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 空格子：按当前节次配置给出默认时间
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
		slot, ok := findTeachingSlot(slots, periodNumber)
		if !ok {
			return nil, ErrTimetableCellOutOfRange
		}
		draft.StartTime = slot.StartTime
		draft.EndTime = slot.EndTime
		return draft, nil
	default:
		return nil, err
	}
}

func (s *timetableService) SaveCell(ctx context.Context, classID string, dayOfWeek, periodNumber int, req *dto.SaveCellRequest, operatorID string) (*dto.TimetableGridResponse, error) {
	if err := validateCell(dayOfWeek, periodNumber); err != nil {
		return nil, err
	}
	if req.SubjectID == "" || req.TeacherID == "" {
		return nil, ErrTimetableDraftIncomplete
	}

	// 外键校验：班级 / 科目 / 教师须存在于参照数据
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableClassNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableSubjectNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Teacher.GetByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableTeacherNotFound
		}
		return nil, err
	}

	existing, err := s.repo.Timetable.GetByCell(ctx, classID, dayOfWeek, periodNumber)
	switch {
	case err == nil:
		// 客户端打开时认为格子为空，期间他人已写入：按冲突处理
		if req.Version == nil {
			return nil, apperrors.ErrOptimisticLock
		}
		existing.SubjectID = req.SubjectID
		existing.TeacherID = req.TeacherID
		existing.RoomNumber = req.RoomNumber
		existing.Version = *req.Version
		existing.UpdatedBy = &operatorID
		if err := s.repo.Timetable.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Info("课表条目已更新",
			zap.String("entry_id", existing.EntryID),
			zap.String("class_id", classID),
			zap.Int("day_of_week", dayOfWeek),
			zap.Int("period_number", periodNumber),
			zap.String("operator", operatorID))

	case errors.Is(err, gorm.ErrRecordNotFound):
		// 新建：按当时的节次配置冻结起止时间并记下配置版本
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
		slot, ok := findTeachingSlot(slots, periodNumber)
		if !ok {
			return nil, ErrTimetableCellOutOfRange
		}

		entry := &model.TimetableEntry{
			ClassID:         classID,
			DayOfWeek:       dayOfWeek,
			PeriodNumber:    periodNumber,
			SubjectID:       req.SubjectID,
			TeacherID:       req.TeacherID,
			RoomNumber:      req.RoomNumber,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
			SettingsVersion: settings.Version,
		}
		entry.CreatedBy = &operatorID
		entry.UpdatedBy = &operatorID
		entry.Version = 1
		if err := s.repo.Timetable.Create(ctx, entry); err != nil {
			return nil, err
		}
		s.logger.Info("课表条目已创建",
			zap.String("entry_id", entry.EntryID),
			zap.String("class_id", classID),
			zap.Int("day_of_week", dayOfWeek),
			zap.Int("period_number", periodNumber),
			zap.Int("settings_version", settings.Version),
			zap.String("operator", operatorID))

	default:
		return nil, err
	}

	// 写入成功后回读网格，客户端以此刷新
	return s.GetGrid(ctx, classID)
}

func (s *timetableService) DeleteEntry(ctx context.Context, entryID string) (*dto.TimetableGridResponse, error) {
	entry, err := s.repo.Timetable.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableEntryNotFound
		}
		return nil, err
	}

	if err := s.repo.Timetable.Delete(ctx, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimetableEntryNotFound
		}
		return nil, err
	}

	s.logger.Info("课表条目已删除",
		zap.String("entry_id", entryID),
		zap.String("class_id", entry.ClassID),
		zap.Int("day_of_week", entry.DayOfWeek),
		zap.Int("period_number", entry.PeriodNumber))

	return s.GetGrid(ctx, entry.ClassID)
}

// validateCell 校验格子坐标：星期 1-6，节次 1-8（午休槽单独拒绝）
func validateCell(dayOfWeek, periodNumber int) error {
	if periodNumber == model.LunchPeriod {
		return ErrTimetableCellIsLunch
	}
	if dayOfWeek < model.Monday || dayOfWeek > model.Saturday {
		return ErrTimetableCellOutOfRange
	}
	if periodNumber < 1 || periodNumber > model.TeachingPeriods {
		return ErrTimetableCellOutOfRange
	}
	return nil
}

func toSlotResponses(slots []PeriodSlot) []dto.PeriodSlotResponse {
	out := make([]dto.PeriodSlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, dto.PeriodSlotResponse{
			PeriodNumber: slot.PeriodNumber,
			IsLunch:      slot.IsLunch,
			StartTime:    slot.StartTime,
			EndTime:      slot.EndTime,
		})
	}
	return out
}

func toEntryResponse(entry *model.TimetableEntry) *dto.TimetableEntryResponse {
	resp := &dto.TimetableEntryResponse{
		EntryID:         entry.EntryID,
		ClassID:         entry.ClassID,
		DayOfWeek:       entry.DayOfWeek,
		PeriodNumber:    entry.PeriodNumber,
		SubjectID:       entry.SubjectID,
		TeacherID:       entry.TeacherID,
		RoomNumber:      entry.RoomNumber,
		StartTime:       normalizeClock(entry.StartTime),
		EndTime:         normalizeClock(entry.EndTime),
		SettingsVersion: entry.SettingsVersion,
		Version:         entry.Version,
		UpdatedAt:       entry.UpdatedAt.Format(time.RFC3339),
	}
	if entry.Subject != nil {
		resp.SubjectName = entry.Subject.Name
	}
	if entry.Teacher != nil {
		resp.TeacherName = entry.Teacher.Name
	}
	return resp
}
