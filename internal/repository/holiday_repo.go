package repository

import (
	"context"

	"gorm.io/gorm"

	"school-portal/backend/internal/model"
)

// HolidayRepository 假期区间数据访问接口
type HolidayRepository interface {
	List(ctx context.Context) ([]model.Holiday, error)
	Create(ctx context.Context, holiday *model.Holiday) error
	// Delete id 不存在时返回 gorm.ErrRecordNotFound
	Delete(ctx context.Context, id string) error
}

type holidayRepo struct {
	db *gorm.DB
}

// NewHolidayRepo 创建 HolidayRepository 实例
func NewHolidayRepo(db *gorm.DB) HolidayRepository {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) List(ctx context.Context) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepo) Create(ctx context.Context, holiday *model.Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

func (r *holidayRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("holiday_id = ?", id).
		Delete(&model.Holiday{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
