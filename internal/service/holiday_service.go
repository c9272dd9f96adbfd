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

// ── 假期服务 ────────────────────────────────────────────────

const dateLayout = "2006-01-02"

var (
	ErrHolidayNotFound     = errors.New("假期区间不存在")
	ErrHolidayDateInvalid  = errors.New("日期格式无效，应为 YYYY-MM-DD")
	ErrHolidayRangeInvalid = errors.New("结束日期不得早于开始日期")
)

// HolidayService 假期区间的维护
// 区间为闭区间，允许单日区间与区间重叠；删除后被覆盖的日子
// 立即恢复正常展示
type HolidayService interface {
	List(ctx context.Context) ([]dto.HolidayResponse, error)
	Create(ctx context.Context, req *dto.CreateHolidayRequest, operatorID string) (*dto.HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type holidayService struct {
	repo   repository.HolidayRepository
	logger *zap.Logger
}

// NewHolidayService 创建假期服务实例
func NewHolidayService(repo repository.HolidayRepository, logger *zap.Logger) HolidayService {
	return &holidayService{repo: repo, logger: logger}
}

func (s *holidayService) List(ctx context.Context) ([]dto.HolidayResponse, error) {
	holidays, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HolidayResponse, 0, len(holidays))
	for i := range holidays {
		out = append(out, *toHolidayResponse(&holidays[i]))
	}
	return out, nil
}

func (s *holidayService) Create(ctx context.Context, req *dto.CreateHolidayRequest, operatorID string) (*dto.HolidayResponse, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrHolidayDateInvalid
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrHolidayDateInvalid
	}
	if end.Before(start) {
		return nil, ErrHolidayRangeInvalid
	}

	holiday := &model.Holiday{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		CreatedBy: &operatorID,
	}
	if err := s.repo.Create(ctx, holiday); err != nil {
		return nil, err
	}

	s.logger.Info("假期区间已创建",
		zap.String("holiday_id", holiday.HolidayID),
		zap.String("name", holiday.Name),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.String("operator", operatorID))

	return toHolidayResponse(holiday), nil
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHolidayNotFound
		}
		return err
	}
	s.logger.Info("假期区间已删除", zap.String("holiday_id", id))
	return nil
}

func toHolidayResponse(h *model.Holiday) *dto.HolidayResponse {
	return &dto.HolidayResponse{
		HolidayID: h.HolidayID,
		Name:      h.Name,
		StartDate: h.StartDate.Format(dateLayout),
		EndDate:   h.EndDate.Format(dateLayout),
	}
}
