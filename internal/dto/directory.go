package dto

// ── 参照数据模块 DTO ──

// DirectoryItemResponse 班级/科目/教师下拉项
type DirectoryItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
