package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"school-portal/backend/internal/model"
	"school-portal/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportClassNotFound = errors.New("班级不存在")
	ErrExportNoEntries     = errors.New("该班级暂无课表条目")
	ErrExportGenerateFail  = errors.New("生成导出文件失败")
)

// ExportService 课表导出业务接口
//
// 设计说明：
//   - Excel 导出：9 个时间槽为行（含午休行），周一 ~ 周六为列，
//     时间槽按当前节次配置推导，单元格时间用条目的冻结值
//   - ICS 导出：以参考时刻所在周为窗口生成一周的 VEVENT 日历，
//     假期覆盖的日子整日跳过
//   - 导出以 bytes.Buffer / 字符串返回，由 Handler 层设置
//     HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTimetableXLSX 导出班级周课表为 Excel
	ExportTimetableXLSX(ctx context.Context, classID string) (*bytes.Buffer, string, error)
	// ExportTimetableICS 导出参考时刻所在周的课表为 iCalendar
	ExportTimetableICS(ctx context.Context, classID string, reference time.Time) (string, string, error)
}

type exportService struct {
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, loc *time.Location, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, loc: loc, logger: logger}
}

var exportDayNames = map[int]string{1: "周一", 2: "周二", 3: "周三", 4: "周四", 5: "周五", 6: "周六"}

// ═══════════════════════════════════════════════════════════
// ExportTimetableXLSX 导出班级周课表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 行头：节次（"第N节" / "午休"）+ 时间槽起止
//   - 列头：周一 ~ 周六
//   - 单元格：科目 / 教师 (教室)
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportTimetableXLSX(ctx context.Context, classID string) (*bytes.Buffer, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, "", err
	}

	settings, err := s.repo.PeriodSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPeriodSettingsNotFound
		}
		return nil, "", err
	}
	slots, err := GeneratePeriodGrid(settings)
	if err != nil {
		return nil, "", err
	}

	entries, err := s.repo.Timetable.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("查询课表条目失败", zap.Error(err))
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoEntries
	}

	// 数据索引: "dayOfWeek:periodNumber" → 单元格文本
	entryIndex := make(map[string]string, len(entries))
	for i := range entries {
		entry := &entries[i]
		text := ""
		if entry.Subject != nil {
			text = entry.Subject.Name
		}
		if entry.Teacher != nil {
			text += " / " + entry.Teacher.Name
		}
		if entry.RoomNumber != nil && *entry.RoomNumber != "" {
			text += " (" + *entry.RoomNumber + ")"
		}
		entryIndex[fmt.Sprintf("%d:%d", entry.DayOfWeek, entry.PeriodNumber)] = text
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "课表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：节次 / 时间 / 周一 ~ 周六
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 14)
	for i := 0; i < model.Saturday; i++ {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetColWidth(sheetName, col, col, 20)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — 周课表", class.Name))
	f.MergeCell(sheetName, "A1", fmt.Sprintf("%s1", colName(1+model.Saturday)))
	titleCell, _ := excelize.CoordinatesToCellName(1, 1)
	f.SetCellStyle(sheetName, titleCell, titleCell, headerStyle)

	// 表头
	row := 2
	f.SetCellValue(sheetName, cell("A", row), "节次")
	f.SetCellValue(sheetName, cell("B", row), "时间")
	for day := model.Monday; day <= model.Saturday; day++ {
		f.SetCellValue(sheetName, cell(colName(1+day), row), exportDayNames[day])
	}

	// 数据行：每个时间槽一行，午休行整行留白
	row = 3
	for _, slot := range slots {
		label := fmt.Sprintf("第%d节", slot.PeriodNumber)
		if slot.IsLunch {
			label = "午休"
		}
		f.SetCellValue(sheetName, cell("A", row), label)
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", slot.StartTime, slot.EndTime))

		if !slot.IsLunch {
			for day := model.Monday; day <= model.Saturday; day++ {
				key := fmt.Sprintf("%d:%d", day, slot.PeriodNumber)
				if text, ok := entryIndex[key]; ok {
					f.SetCellValue(sheetName, cell(colName(1+day), row), text)
				} else {
					f.SetCellValue(sheetName, cell(colName(1+day), row), "-")
				}
			}
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("课表_%s.xlsx", class.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportTimetableICS 导出所在周课表为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个课表条目生成一个 VEVENT，事件时间取条目的冻结起止时刻
// 叠加该星期在参考周中对应的日期；落入假期区间的日子整日跳过

func (s *exportService) ExportTimetableICS(ctx context.Context, classID string, reference time.Time) (string, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrExportClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return "", "", err
	}

	entries, err := s.repo.Timetable.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("查询课表条目失败", zap.Error(err))
		return "", "", err
	}
	if len(entries) == 0 {
		return "", "", ErrExportNoEntries
	}
	holidays, err := s.repo.Holiday.List(ctx)
	if err != nil {
		return "", "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//school-portal//timetable//EN")

	now := time.Now()
	for i := range entries {
		entry := &entries[i]

		date := weekdayDate(reference, entry.DayOfWeek)
		if matched, _ := matchHoliday(date, holidays); matched {
			continue
		}

		startMin, err := parseClock(entry.StartTime)
		if err != nil {
			continue
		}
		endMin, err := parseClock(entry.EndTime)
		if err != nil {
			continue
		}
		y, m, d := date.Date()
		eventStart := time.Date(y, m, d, startMin/60, startMin%60, 0, 0, s.loc)
		eventEnd := time.Date(y, m, d, endMin/60, endMin%60, 0, 0, s.loc)

		evt := cal.AddEvent(fmt.Sprintf("%s@school-portal", entry.EntryID))
		evt.SetCreatedTime(now)
		evt.SetDtStampTime(now)
		evt.SetStartAt(eventStart)
		evt.SetEndAt(eventEnd)
		if entry.Subject != nil {
			evt.SetSummary(entry.Subject.Name)
		}
		if entry.Teacher != nil {
			evt.SetDescription("教师: " + entry.Teacher.Name)
		}
		if entry.RoomNumber != nil && *entry.RoomNumber != "" {
			evt.SetLocation(*entry.RoomNumber)
		}
	}

	filename := fmt.Sprintf("课表_%s.ics", class.Name)
	return cal.Serialize(), filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
