package service

import (
	"context"

	"go.uber.org/zap"

	"school-portal/backend/internal/dto"
	"school-portal/backend/internal/repository"
)

// ── 参照数据服务 ────────────────────────────────────────────

// DirectoryService 编辑器下拉框用的班级 / 科目 / 教师列表
// 均仅返回启用中的记录，按名称排序；维护入口在教务 CRUD 模块
type DirectoryService interface {
	ListClasses(ctx context.Context) ([]dto.DirectoryItemResponse, error)
	ListSubjects(ctx context.Context) ([]dto.DirectoryItemResponse, error)
	ListTeachers(ctx context.Context) ([]dto.DirectoryItemResponse, error)
}

type directoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDirectoryService 创建参照数据服务实例
func NewDirectoryService(repo *repository.Repository, logger *zap.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

func (s *directoryService) ListClasses(ctx context.Context) ([]dto.DirectoryItemResponse, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DirectoryItemResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, dto.DirectoryItemResponse{ID: c.ClassID, Name: c.Name})
	}
	return out, nil
}

func (s *directoryService) ListSubjects(ctx context.Context) ([]dto.DirectoryItemResponse, error) {
	subjects, err := s.repo.Subject.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DirectoryItemResponse, 0, len(subjects))
	for _, sub := range subjects {
		out = append(out, dto.DirectoryItemResponse{ID: sub.SubjectID, Name: sub.Name})
	}
	return out, nil
}

func (s *directoryService) ListTeachers(ctx context.Context) ([]dto.DirectoryItemResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DirectoryItemResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, dto.DirectoryItemResponse{ID: t.TeacherID, Name: t.Name})
	}
	return out, nil
}
