package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"school-portal/backend/internal/model"
)

// ════════════════════════════════════════════════════════════
// 学生端课表服务测试
// ════════════════════════════════════════════════════════════

func newTestDashboard(t *testing.T) (DashboardService, TimetableService, *testRepos) {
	t.Helper()
	repos := newTestRepos()
	repos.class.add("class-1", "一年级1班")
	repos.subject.add("subject-math", "数学")
	repos.subject.add("subject-eng", "英语")
	repos.teacher.add("teacher-wang", "王老师")
	repos.teacher.add("teacher-li", "李老师")
	dashboard := NewDashboardService(repos.aggregate(), zap.NewNop())
	editor := NewTimetableService(repos.aggregate(), zap.NewNop())
	return dashboard, editor, repos
}

func TestGetWeeklyTimetable_AgreesWithEditor(t *testing.T) {
	dashboard, editor, _ := newTestDashboard(t)
	ctx := context.Background()

	grid, err := editor.SaveCell(ctx, "class-1", model.Monday, 1, saveReq("subject-math", "teacher-wang"), "admin-1")
	if err != nil {
		t.Fatalf("排课失败: %v", err)
	}
	entry := grid.Entries[0]

	// 2026-03-11 周三
	week, err := dashboard.GetWeeklyTimetable(ctx, "class-1", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("读取周课表失败: %v", err)
	}

	if len(week.Days) != 6 {
		t.Fatalf("期望 6 天（周一至周六）, 实际 %d 天", len(week.Days))
	}
	if len(week.Slots) != 9 {
		t.Errorf("期望与编辑器相同的 9 个时间槽, 实际 %d", len(week.Slots))
	}

	monday := week.Days[0]
	if monday.DayOfWeek != model.Monday || monday.Date != "2026-03-09" {
		t.Errorf("周一日期期望 2026-03-09, 实际 %s", monday.Date)
	}
	if len(monday.Cells) != 1 {
		t.Fatalf("周一期望 1 个单元, 实际 %d", len(monday.Cells))
	}
	cell := monday.Cells[0]
	// 与编辑器展示同一冻结时刻
	if cell.StartTime != entry.StartTime || cell.EndTime != entry.EndTime {
		t.Errorf("学生端时间 %s-%s 与编辑器 %s-%s 不一致",
			cell.StartTime, cell.EndTime, entry.StartTime, entry.EndTime)
	}
	if cell.SubjectName != "数学" || cell.TeacherName != "王老师" {
		t.Errorf("期望 数学/王老师, 实际 %s/%s", cell.SubjectName, cell.TeacherName)
	}
}

func TestGetWeeklyTimetable_HolidaySuppression(t *testing.T) {
	dashboard, editor, repos := newTestDashboard(t)
	ctx := context.Background()

	if _, err := editor.SaveCell(ctx, "class-1", model.Tuesday, 1, saveReq("subject-math", "teacher-wang"), "admin-1"); err != nil {
		t.Fatalf("排课失败: %v", err)
	}

	// 覆盖 2026-03-10（该周周二）的假期
	holiday := &model.Holiday{Name: "校庆", StartDate: date(2026, 3, 10), EndDate: date(2026, 3, 10)}
	if err := repos.holiday.Create(ctx, holiday); err != nil {
		t.Fatalf("创建假期失败: %v", err)
	}

	week, err := dashboard.GetWeeklyTimetable(ctx, "class-1", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("读取周课表失败: %v", err)
	}
	tuesday := week.Days[1]
	if !tuesday.IsHoliday || tuesday.HolidayName != "校庆" {
		t.Errorf("周二应标记为假期 校庆, 实际 %+v", tuesday)
	}
	if len(tuesday.Cells) != 0 {
		t.Errorf("假期日单元应为空, 实际 %d 个", len(tuesday.Cells))
	}

	// 删除假期后恢复展示（条目从未被改动）
	if err := repos.holiday.Delete(ctx, holiday.HolidayID); err != nil {
		t.Fatalf("删除假期失败: %v", err)
	}
	week, err = dashboard.GetWeeklyTimetable(ctx, "class-1", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("读取周课表失败: %v", err)
	}
	tuesday = week.Days[1]
	if tuesday.IsHoliday || len(tuesday.Cells) != 1 {
		t.Errorf("假期删除后周二应恢复 1 个单元, 实际 %+v", tuesday)
	}
}

func TestGetWeeklyTimetable_TeacherProjection(t *testing.T) {
	dashboard, editor, _ := newTestDashboard(t)
	ctx := context.Background()

	// 王老师教数学与英语，李老师教英语（两处排课只算一次）
	seed := []struct {
		day, period      int
		subject, teacher string
	}{
		{model.Monday, 1, "subject-math", "teacher-wang"},
		{model.Monday, 2, "subject-eng", "teacher-wang"},
		{model.Tuesday, 1, "subject-eng", "teacher-li"},
		{model.Wednesday, 1, "subject-eng", "teacher-li"},
	}
	for _, s := range seed {
		if _, err := editor.SaveCell(ctx, "class-1", s.day, s.period, saveReq(s.subject, s.teacher), "admin-1"); err != nil {
			t.Fatalf("排课失败: %v", err)
		}
	}

	week, err := dashboard.GetWeeklyTimetable(ctx, "class-1", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("读取周课表失败: %v", err)
	}

	if len(week.Teachers) != 2 {
		t.Fatalf("期望 2 位教师, 实际 %d", len(week.Teachers))
	}
	// 按姓名排序：李老师在前
	li := week.Teachers[0]
	if li.TeacherName != "李老师" || len(li.Subjects) != 1 || li.Subjects[0] != "英语" {
		t.Errorf("期望 李老师: [英语], 实际 %+v", li)
	}
	wang := week.Teachers[1]
	if wang.TeacherName != "王老师" || len(wang.Subjects) != 2 {
		t.Errorf("期望 王老师 授 2 门科目, 实际 %+v", wang)
	}
}

func TestGetWeeklyTimetable_EmptyClass(t *testing.T) {
	dashboard, _, _ := newTestDashboard(t)

	week, err := dashboard.GetWeeklyTimetable(context.Background(), "class-unknown", date(2026, 3, 11))
	if err != nil {
		t.Fatalf("未知班级不应报错: %v", err)
	}
	for _, day := range week.Days {
		if len(day.Cells) != 0 {
			t.Errorf("未知班级第 %d 天应无单元", day.DayOfWeek)
		}
	}
	if len(week.Teachers) != 0 {
		t.Errorf("未知班级教师列表应为空, 实际 %d", len(week.Teachers))
	}
}
