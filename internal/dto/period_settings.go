package dto

// ── 节次配置模块 DTO ──

// UpdatePeriodSettingsRequest 替换节次配置请求
// 配置为整体替换（非局部更新），因此所有字段必填
type UpdatePeriodSettingsRequest struct {
	PeriodDurationMinutes int    `json:"period_duration_minutes" binding:"required,min=30,max=120"`
	SchoolStartTime       string `json:"school_start_time"       binding:"required"` // "08:00"
	LunchAfterPeriod      int    `json:"lunch_after_period"      binding:"required,min=1,max=8"`
	LunchDurationMinutes  int    `json:"lunch_duration_minutes"  binding:"required,min=20,max=120"`
}

// PeriodSettingsResponse 节次配置响应
type PeriodSettingsResponse struct {
	PeriodDurationMinutes int    `json:"period_duration_minutes"`
	SchoolStartTime       string `json:"school_start_time"`
	LunchAfterPeriod      int    `json:"lunch_after_period"`
	LunchDurationMinutes  int    `json:"lunch_duration_minutes"`
	Version               int    `json:"version"`
	UpdatedAt             string `json:"updated_at"`
}
