package dto

// ── 假期模块 DTO ──

// CreateHolidayRequest 创建假期区间请求
type CreateHolidayRequest struct {
	Name      string `json:"name"       binding:"required,min=1,max=200"`
	StartDate string `json:"start_date" binding:"required"` // "2006-01-02"
	EndDate   string `json:"end_date"   binding:"required"`
}

// HolidayResponse 假期区间响应
type HolidayResponse struct {
	HolidayID string `json:"holiday_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
