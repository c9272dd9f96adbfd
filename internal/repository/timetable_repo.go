package repository

import (
	"context"

	"gorm.io/gorm"

	"school-portal/backend/internal/model"
	apperrors "school-portal/backend/pkg/errors"
)

// TimetableRepository 课表条目数据访问接口
type TimetableRepository interface {
	// ListByClass 按班级列出条目；未知班级返回空列表而非错误
	ListByClass(ctx context.Context, classID string) ([]model.TimetableEntry, error)
	GetByID(ctx context.Context, id string) (*model.TimetableEntry, error)
	// GetByCell 按 (班级, 星期, 节次) 定位格子中的条目
	GetByCell(ctx context.Context, classID string, dayOfWeek, periodNumber int) (*model.TimetableEntry, error)
	Create(ctx context.Context, entry *model.TimetableEntry) error
	// Update 以乐观锁更新：entry.Version 为读取时的版本号，
	// 版本不匹配时返回 apperrors.ErrOptimisticLock
	Update(ctx context.Context, entry *model.TimetableEntry) error
	// Delete 硬删除；id 不存在时返回 gorm.ErrRecordNotFound
	Delete(ctx context.Context, id string) error
}

type timetableRepo struct {
	db *gorm.DB
}

// NewTimetableRepo 创建 TimetableRepository 实例
func NewTimetableRepo(db *gorm.DB) TimetableRepository {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) ListByClass(ctx context.Context, classID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Where("class_id = ?", classID).
		Order("day_of_week ASC, period_number ASC").
		Find(&entries).Error
	return entries, err
}

func (r *timetableRepo) GetByID(ctx context.Context, id string) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Where("entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepo) GetByCell(ctx context.Context, classID string, dayOfWeek, periodNumber int) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Where("class_id = ? AND day_of_week = ? AND period_number = ?", classID, dayOfWeek, periodNumber).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableRepo) Create(ctx context.Context, entry *model.TimetableEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timetableRepo) Update(ctx context.Context, entry *model.TimetableEntry) error {
	res := r.db.WithContext(ctx).
		Model(&model.TimetableEntry{}).
		Where("entry_id = ? AND version = ?", entry.EntryID, entry.Version).
		Updates(map[string]interface{}{
			"subject_id":  entry.SubjectID,
			"teacher_id":  entry.TeacherID,
			"room_number": entry.RoomNumber,
			"updated_by":  entry.UpdatedBy,
			"updated_at":  gorm.Expr("NOW()"),
			"version":     gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}
	entry.Version++
	return nil
}

func (r *timetableRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("entry_id = ?", id).
		Delete(&model.TimetableEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
