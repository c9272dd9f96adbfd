package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"school-portal/backend/internal/model"
)

// ── 节次网格推导 ────────────────────────────────────────────
//
// 职责：由全校节次配置推导一天的节次时间槽序列。
//
// 设计决策：
//   - 纯函数、确定性：同一配置两次调用产出完全相同的序列。
//     编辑器、学生端与导出共用这一个实现，保证各端展示的
//     节次边界逐分钟一致。
//   - 固定产出 9 个槽：8 个教学节次 + 1 个午休槽，午休紧跟在
//     配置的 lunch_after_period 节之后。
//   - 分钟运算基于"零点起分钟数"，跨天时按 1440 取模回绕，
//     不会崩溃；时长是否合理由配置的域校验负责。
// ─────────────────────────────────────────────────────────────

var (
	ErrGridPeriodDuration = errors.New("节次时长超出允许范围（30-120 分钟）")
	ErrGridLunchDuration  = errors.New("午休时长超出允许范围（20-120 分钟）")
	ErrGridLunchAfter     = errors.New("午休插入位置超出允许范围（第 1-8 节之后）")
	ErrGridStartTime      = errors.New("上课开始时间格式无效，应为 HH:MM")
)

const minutesPerDay = 24 * 60

// PeriodSlot 推导出的节次时间槽（非持久化）
// 教学节次 PeriodNumber 为 1-8；午休槽为 model.LunchPeriod 且 IsLunch 为 true
type PeriodSlot struct {
	PeriodNumber int
	IsLunch      bool
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
}

// GeneratePeriodGrid 由节次配置推导一天的 9 个时间槽
// 仅当配置超出域边界时返回错误
func GeneratePeriodGrid(settings *model.PeriodSettings) ([]PeriodSlot, error) {
	if settings.PeriodDurationMinutes < model.MinPeriodDuration || settings.PeriodDurationMinutes > model.MaxPeriodDuration {
		return nil, ErrGridPeriodDuration
	}
	if settings.LunchDurationMinutes < model.MinLunchDuration || settings.LunchDurationMinutes > model.MaxLunchDuration {
		return nil, ErrGridLunchDuration
	}
	if settings.LunchAfterPeriod < model.MinLunchAfter || settings.LunchAfterPeriod > model.MaxLunchAfter {
		return nil, ErrGridLunchAfter
	}

	clock, err := parseClock(settings.SchoolStartTime)
	if err != nil {
		return nil, ErrGridStartTime
	}

	slots := make([]PeriodSlot, 0, model.TeachingPeriods+1)
	for p := 1; p <= model.TeachingPeriods; p++ {
		start := clock
		clock += settings.PeriodDurationMinutes
		slots = append(slots, PeriodSlot{
			PeriodNumber: p,
			StartTime:    formatClock(start),
			EndTime:      formatClock(clock),
		})

		if p == settings.LunchAfterPeriod {
			lunchStart := clock
			clock += settings.LunchDurationMinutes
			slots = append(slots, PeriodSlot{
				PeriodNumber: model.LunchPeriod,
				IsLunch:      true,
				StartTime:    formatClock(lunchStart),
				EndTime:      formatClock(clock),
			})
		}
	}

	return slots, nil
}

// findTeachingSlot 在网格中定位指定教学节次的时间槽
func findTeachingSlot(slots []PeriodSlot, periodNumber int) (PeriodSlot, bool) {
	for _, slot := range slots {
		if !slot.IsLunch && slot.PeriodNumber == periodNumber {
			return slot, true
		}
	}
	return PeriodSlot{}, false
}

// parseClock 解析 "HH:MM"（兼容数据库 time 列返回的 "HH:MM:SS"）为零点起分钟数
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("时刻格式无效: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("时刻格式无效: %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("时刻格式无效: %q", s)
	}
	return hour*60 + minute, nil
}

// formatClock 将零点起分钟数格式化为 "HH:MM"，跨天回绕
func formatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// normalizeClock 将 "HH:MM:SS" 裁剪为 "HH:MM"；无法解析时原样返回
func normalizeClock(s string) string {
	m, err := parseClock(s)
	if err != nil {
		return s
	}
	return formatClock(m)
}
