package handler

import (
	"github.com/gin-gonic/gin"

	"school-portal/backend/internal/service"
	"school-portal/backend/pkg/response"
)

// DirectoryHandler 参照数据模块 Handler
// 编辑器下拉框用的班级 / 科目 / 教师列表
type DirectoryHandler struct {
	svc service.DirectoryService
}

// NewDirectoryHandler 创建 DirectoryHandler 实例
func NewDirectoryHandler(svc service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// ListClasses 列出启用中的班级
// GET /api/v1/classes
func (h *DirectoryHandler) ListClasses(c *gin.Context) {
	resp, err := h.svc.ListClasses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListSubjects 列出启用中的科目
// GET /api/v1/subjects
func (h *DirectoryHandler) ListSubjects(c *gin.Context) {
	resp, err := h.svc.ListSubjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}

// ListTeachers 列出启用中的教师
// GET /api/v1/teachers
func (h *DirectoryHandler) ListTeachers(c *gin.Context) {
	resp, err := h.svc.ListTeachers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, resp)
}
