package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/service"
	"school-portal/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportXLSX 导出班级周课表为 Excel
// GET /api/v1/export/classes/:classId/timetable.xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportTimetableXLSX(c.Request.Context(), c.Param("classId"))
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ExportICS 导出所在周课表为 iCalendar
// GET /api/v1/export/classes/:classId/timetable.ics?date=2006-01-02
func (h *ExportHandler) ExportICS(c *gin.Context) {
	reference := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, 24000, "日期格式无效，应为 YYYY-MM-DD")
			return
		}
		reference = parsed
	}

	content, filename, err := h.exportSvc.ExportTimetableICS(c.Request.Context(), c.Param("classId"), reference)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportClassNotFound):
		response.NotFound(c, 24001, "班级不存在")
	case errors.Is(err, service.ErrExportNoEntries):
		response.BadRequest(c, 24002, "该班级暂无课表条目")
	case errors.Is(err, service.ErrPeriodSettingsNotFound):
		response.NotFound(c, 20001, "节次配置未初始化")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
