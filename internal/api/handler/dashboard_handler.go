package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/service"
	"school-portal/backend/pkg/response"
)

// DashboardHandler 学生端课表模块 Handler（只读）
type DashboardHandler struct {
	svc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler 实例
func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetWeeklyTimetable 读取班级周课表
// GET /api/v1/dashboard/classes/:classId/timetable?date=2006-01-02
//
// 学生角色忽略路径中的班级，以 Token 中的 class_id 为准；
// date 缺省为今天，用于推算所在周与假期覆盖
func (h *DashboardHandler) GetWeeklyTimetable(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	classID := c.Param("classId")
	if role == "student" {
		tokenClassID := GetClassID(c)
		if tokenClassID == "" {
			response.Forbidden(c, 22000, "学生账号未关联班级")
			return
		}
		classID = tokenClassID
	}

	reference := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, 22001, "日期格式无效，应为 YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	resp, err := h.svc.GetWeeklyTimetable(c.Request.Context(), classID, reference)
	if err != nil {
		handleDashboardError(c, err)
		return
	}
	response.OK(c, resp)
}

// handleDashboardError 统一学生端模块错误映射
func handleDashboardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPeriodSettingsNotFound):
		response.NotFound(c, 20001, err.Error())
	default:
		response.InternalError(c)
	}
}
