package service

import (
	"time"

	"school-portal/backend/internal/model"
)

// ── 假期覆盖（纯函数） ──────────────────────────────────────
// 假期只影响展示层：匹配到假期的日子整日留空，课表条目本身
// 不做任何修改

// matchHoliday 判断日期是否落入任一假期闭区间（按日比较，忽略时刻与时区偏差）
// 多个区间同时覆盖时取第一个匹配的名称
func matchHoliday(date time.Time, holidays []model.Holiday) (bool, string) {
	key := dateKey(date)
	for _, h := range holidays {
		if key >= dateKey(h.StartDate) && key <= dateKey(h.EndDate) {
			return true, h.Name
		}
	}
	return false, ""
}

// weekdayDate 以参考时刻所在周（周一为一周起点）推算 weekday(1-6) 对应的日期
func weekdayDate(reference time.Time, dayOfWeek int) time.Time {
	// Go 的 Weekday 以周日为 0，换算为周一为 0 的周内偏移
	offset := (int(reference.Weekday()) + 6) % 7
	monday := reference.AddDate(0, 0, -offset)
	return monday.AddDate(0, 0, dayOfWeek-1)
}

// dateKey 将日期压成可比较的整数 yyyymmdd
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
