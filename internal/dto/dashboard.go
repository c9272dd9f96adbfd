package dto

// ── 学生端课表模块 DTO ──

// DashboardCellResponse 学生端网格单元
type DashboardCellResponse struct {
	PeriodNumber int     `json:"period_number"`
	SubjectName  string  `json:"subject_name"`
	TeacherName  string  `json:"teacher_name"`
	RoomNumber   *string `json:"room_number,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

// DashboardDayResponse 学生端一天的展示
// 假期日 is_holiday 为 true 且 cells 为空（仅展示层抑制，存储不受影响）
type DashboardDayResponse struct {
	DayOfWeek   int                     `json:"day_of_week"`
	Date        string                  `json:"date"` // "2006-01-02"，按参考日所在周推算
	IsHoliday   bool                    `json:"is_holiday"`
	HolidayName string                  `json:"holiday_name,omitempty"`
	Cells       []DashboardCellResponse `json:"cells"`
}

// TeacherSubjectsResponse 任课教师与所授科目（对条目的纯聚合投影）
type TeacherSubjectsResponse struct {
	TeacherID   string   `json:"teacher_id"`
	TeacherName string   `json:"teacher_name"`
	Subjects    []string `json:"subjects"`
}

// WeeklyTimetableResponse 学生端周课表响应
type WeeklyTimetableResponse struct {
	ClassID  string                    `json:"class_id"`
	Slots    []PeriodSlotResponse      `json:"slots"`
	Days     []DashboardDayResponse    `json:"days"`
	Teachers []TeacherSubjectsResponse `json:"teachers"`
}
