package dto

// ── 课表编辑模块 DTO ──

// PeriodSlotResponse 节次时间槽（由节次配置推导，非持久化）
// 教学节次 period_number 为 1-8；午休槽 period_number 为 0 且 is_lunch 为 true
type PeriodSlotResponse struct {
	PeriodNumber int    `json:"period_number"`
	IsLunch      bool   `json:"is_lunch"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// TimetableEntryResponse 课表条目响应
type TimetableEntryResponse struct {
	EntryID         string  `json:"entry_id"`
	ClassID         string  `json:"class_id"`
	DayOfWeek       int     `json:"day_of_week"`
	PeriodNumber    int     `json:"period_number"`
	SubjectID       string  `json:"subject_id"`
	SubjectName     string  `json:"subject_name,omitempty"`
	TeacherID       string  `json:"teacher_id"`
	TeacherName     string  `json:"teacher_name,omitempty"`
	RoomNumber      *string `json:"room_number,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	SettingsVersion int     `json:"settings_version"`
	Version         int     `json:"version"`
	UpdatedAt       string  `json:"updated_at"`
}

// TimetableGridResponse 编辑器网格响应：时间槽 + 已有条目
type TimetableGridResponse struct {
	ClassID string                   `json:"class_id"`
	Slots   []PeriodSlotResponse     `json:"slots"`
	Entries []TimetableEntryResponse `json:"entries"`
}

// CellDraftResponse 打开格子时的草稿预填
// 已有条目时带回其记录的起止时间（不按当前配置重算）；
// 空格子时按当前节次配置给出默认时间
type CellDraftResponse struct {
	ClassID      string                  `json:"class_id"`
	DayOfWeek    int                     `json:"day_of_week"`
	PeriodNumber int                     `json:"period_number"`
	StartTime    string                  `json:"start_time"`
	EndTime      string                  `json:"end_time"`
	Existing     *TimetableEntryResponse `json:"existing,omitempty"`
}

// SaveCellRequest 保存格子请求
// Version 为再编辑时客户端持有的条目版本号，用于乐观并发检测；
// 新建（客户端确认格子为空）时不传
type SaveCellRequest struct {
	SubjectID  string  `json:"subject_id"  binding:"required,uuid"`
	TeacherID  string  `json:"teacher_id"  binding:"required,uuid"`
	RoomNumber *string `json:"room_number" binding:"omitempty,max=50"`
	Version    *int    `json:"version"     binding:"omitempty,min=1"`
}
