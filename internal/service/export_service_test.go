package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"school-portal/backend/internal/model"
)

// ════════════════════════════════════════════════════════════
// 导出服务测试
// ════════════════════════════════════════════════════════════

func newTestExport(t *testing.T) (ExportService, TimetableService, *testRepos) {
	t.Helper()
	repos := newTestRepos()
	repos.class.add("class-1", "一年级1班")
	repos.subject.add("subject-math", "数学")
	repos.teacher.add("teacher-wang", "王老师")
	export := NewExportService(repos.aggregate(), time.UTC, zap.NewNop())
	editor := NewTimetableService(repos.aggregate(), zap.NewNop())
	return export, editor, repos
}

func TestExportTimetableXLSX(t *testing.T) {
	export, editor, _ := newTestExport(t)
	ctx := context.Background()

	room := "A101"
	req := saveReq("subject-math", "teacher-wang")
	req.RoomNumber = &room
	if _, err := editor.SaveCell(ctx, "class-1", model.Monday, 1, req, "admin-1"); err != nil {
		t.Fatalf("排课失败: %v", err)
	}

	buf, filename, err := export.ExportTimetableXLSX(ctx, "class-1")
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if filename != "课表_一年级1班.xlsx" {
		t.Errorf("文件名期望 课表_一年级1班.xlsx, 实际 %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("课表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 标题 + 表头 + 9 个时间槽行
	if len(rows) < 11 {
		t.Fatalf("期望至少 11 行, 实际 %d 行", len(rows))
	}

	// 第一个数据行：第1节 / 周一格子
	firstPeriod := rows[2]
	if firstPeriod[0] != "第1节" || firstPeriod[1] != "08:00-08:45" {
		t.Errorf("首行期望 第1节 / 08:00-08:45, 实际 %v", firstPeriod[:2])
	}
	if firstPeriod[2] != "数学 / 王老师 (A101)" {
		t.Errorf("周一格子期望 数学 / 王老师 (A101), 实际 %q", firstPeriod[2])
	}

	// 午休行（默认配置在第 4 节后）
	lunchRow := rows[6]
	if lunchRow[0] != "午休" || lunchRow[1] != "11:00-12:00" {
		t.Errorf("午休行期望 午休 / 11:00-12:00, 实际 %v", lunchRow[:2])
	}
}

func TestExportTimetableXLSX_Errors(t *testing.T) {
	export, _, _ := newTestExport(t)
	ctx := context.Background()

	if _, _, err := export.ExportTimetableXLSX(ctx, "class-404"); !errors.Is(err, ErrExportClassNotFound) {
		t.Errorf("期望班级不存在, 实际 %v", err)
	}
	if _, _, err := export.ExportTimetableXLSX(ctx, "class-1"); !errors.Is(err, ErrExportNoEntries) {
		t.Errorf("空课表期望无条目错误, 实际 %v", err)
	}
}

func TestExportTimetableICS(t *testing.T) {
	export, editor, repos := newTestExport(t)
	ctx := context.Background()

	if _, err := editor.SaveCell(ctx, "class-1", model.Monday, 1, saveReq("subject-math", "teacher-wang"), "admin-1"); err != nil {
		t.Fatalf("排课失败: %v", err)
	}
	if _, err := editor.SaveCell(ctx, "class-1", model.Tuesday, 1, saveReq("subject-math", "teacher-wang"), "admin-1"); err != nil {
		t.Fatalf("排课失败: %v", err)
	}

	// 假期覆盖该周周二
	if err := repos.holiday.Create(ctx, &model.Holiday{
		Name: "校庆", StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 10),
	}); err != nil {
		t.Fatalf("创建假期失败: %v", err)
	}

	content, filename, err := export.ExportTimetableICS(ctx, "class-1", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if filename != "课表_一年级1班.ics" {
		t.Errorf("文件名期望 课表_一年级1班.ics, 实际 %s", filename)
	}

	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("缺少 VCALENDAR 头")
	}
	if !strings.Contains(content, "SUMMARY:数学") {
		t.Error("缺少课程事件")
	}
	// 周一事件落在 2026-03-09，周二被假期跳过
	if !strings.Contains(content, "20260309") {
		t.Error("缺少周一（2026-03-09）的事件")
	}
	if strings.Contains(content, "20260310") {
		t.Error("假期日（2026-03-10）的事件应被跳过")
	}
	if strings.Count(content, "BEGIN:VEVENT") != 1 {
		t.Errorf("期望 1 个 VEVENT, 实际 %d", strings.Count(content, "BEGIN:VEVENT"))
	}
}
