package service

import (
	"errors"
	"testing"

	"school-portal/backend/internal/model"
)

// ════════════════════════════════════════════════════════════
// 节次网格推导测试
// ════════════════════════════════════════════════════════════

func defaultSettings() *model.PeriodSettings {
	return &model.PeriodSettings{
		PeriodDurationMinutes: 45,
		SchoolStartTime:       "08:00",
		LunchAfterPeriod:      4,
		LunchDurationMinutes:  60,
		Version:               1,
	}
}

func TestGeneratePeriodGrid_DefaultSettings(t *testing.T) {
	slots, err := GeneratePeriodGrid(defaultSettings())
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}

	// 8 个教学节次 + 1 个午休槽
	if len(slots) != 9 {
		t.Fatalf("期望 9 个时间槽, 实际 %d 个", len(slots))
	}

	// 45 分钟节次、08:00 开始、第 4 节后午休 60 分钟：
	// 第 1 节 08:00-08:45 … 第 4 节 10:15-11:00，
	// 午休 11:00-12:00，第 5 节 12:00-12:45 … 第 8 节 14:15-15:00
	expected := []struct {
		period  int
		isLunch bool
		start   string
		end     string
	}{
		{1, false, "08:00", "08:45"},
		{2, false, "08:45", "09:30"},
		{3, false, "09:30", "10:15"},
		{4, false, "10:15", "11:00"},
		{model.LunchPeriod, true, "11:00", "12:00"},
		{5, false, "12:00", "12:45"},
		{6, false, "12:45", "13:30"},
		{7, false, "13:30", "14:15"},
		{8, false, "14:15", "15:00"},
	}
	for i, exp := range expected {
		slot := slots[i]
		if slot.PeriodNumber != exp.period || slot.IsLunch != exp.isLunch {
			t.Errorf("槽 %d: 期望节次 %d (午休=%v), 实际 %d (午休=%v)",
				i, exp.period, exp.isLunch, slot.PeriodNumber, slot.IsLunch)
		}
		if slot.StartTime != exp.start || slot.EndTime != exp.end {
			t.Errorf("槽 %d: 期望 %s-%s, 实际 %s-%s",
				i, exp.start, exp.end, slot.StartTime, slot.EndTime)
		}
	}
}

func TestGeneratePeriodGrid_Deterministic(t *testing.T) {
	settings := defaultSettings()
	first, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}
	second, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("两次推导槽数不一致: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("槽 %d 两次推导不一致: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGeneratePeriodGrid_Contiguous(t *testing.T) {
	settings := defaultSettings()
	settings.LunchAfterPeriod = 2
	settings.PeriodDurationMinutes = 40

	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}

	// 相邻槽首尾相接，无空隙无重叠
	for i := 1; i < len(slots); i++ {
		if slots[i].StartTime != slots[i-1].EndTime {
			t.Errorf("槽 %d 起点 %s 与上一槽终点 %s 不相接",
				i, slots[i].StartTime, slots[i-1].EndTime)
		}
	}

	// 午休位置跟随配置
	if !slots[2].IsLunch {
		t.Errorf("期望第 2 节后为午休槽, 实际 %+v", slots[2])
	}
}

func TestGeneratePeriodGrid_LunchAfterLastPeriod(t *testing.T) {
	settings := defaultSettings()
	settings.LunchAfterPeriod = 8

	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("期望 9 个时间槽, 实际 %d 个", len(slots))
	}
	last := slots[len(slots)-1]
	if !last.IsLunch {
		t.Errorf("lunch_after_period=8 时末位应为午休槽, 实际 %+v", last)
	}
}

func TestGeneratePeriodGrid_MidnightRollover(t *testing.T) {
	settings := defaultSettings()
	settings.SchoolStartTime = "22:00"
	settings.PeriodDurationMinutes = 60
	settings.LunchDurationMinutes = 30

	// 跨天不应崩溃，时刻按 24 小时回绕
	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("跨天推导失败: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("期望 9 个时间槽, 实际 %d 个", len(slots))
	}
	// 第 3 节 00:00 起（22:00 + 2x60min）
	if slots[2].StartTime != "00:00" {
		t.Errorf("跨天后第 3 节起点期望 00:00, 实际 %s", slots[2].StartTime)
	}
}

func TestGeneratePeriodGrid_BoundsRejected(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.PeriodSettings)
		wantErr error
	}{
		{"节次时长过短", func(s *model.PeriodSettings) { s.PeriodDurationMinutes = 29 }, ErrGridPeriodDuration},
		{"节次时长过长", func(s *model.PeriodSettings) { s.PeriodDurationMinutes = 121 }, ErrGridPeriodDuration},
		{"午休时长过短", func(s *model.PeriodSettings) { s.LunchDurationMinutes = 19 }, ErrGridLunchDuration},
		{"午休时长过长", func(s *model.PeriodSettings) { s.LunchDurationMinutes = 121 }, ErrGridLunchDuration},
		{"午休位置过小", func(s *model.PeriodSettings) { s.LunchAfterPeriod = 0 }, ErrGridLunchAfter},
		{"午休位置过大", func(s *model.PeriodSettings) { s.LunchAfterPeriod = 9 }, ErrGridLunchAfter},
		{"开始时间无效", func(s *model.PeriodSettings) { s.SchoolStartTime = "25:00" }, ErrGridStartTime},
		{"开始时间非时刻", func(s *model.PeriodSettings) { s.SchoolStartTime = "morning" }, ErrGridStartTime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := defaultSettings()
			tc.mutate(settings)
			_, err := GeneratePeriodGrid(settings)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("期望错误 %v, 实际 %v", tc.wantErr, err)
			}
		})
	}
}

func TestGeneratePeriodGrid_AcceptsSecondsSuffix(t *testing.T) {
	settings := defaultSettings()
	// 数据库 time 列读出为 "08:00:00"
	settings.SchoolStartTime = "08:00:00"

	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		t.Fatalf("推导失败: %v", err)
	}
	if slots[0].StartTime != "08:00" {
		t.Errorf("期望起点 08:00, 实际 %s", slots[0].StartTime)
	}
}

func TestNormalizeClock(t *testing.T) {
	if got := normalizeClock("09:05:00"); got != "09:05" {
		t.Errorf("期望 09:05, 实际 %s", got)
	}
	if got := normalizeClock("09:05"); got != "09:05" {
		t.Errorf("期望 09:05, 实际 %s", got)
	}
	// 无法解析时原样返回
	if got := normalizeClock("bogus"); got != "bogus" {
		t.Errorf("期望原样返回, 实际 %s", got)
	}
}
