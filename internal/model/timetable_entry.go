package model

// Weekday 取值 1-6（周一至周六）；周日不排课
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
)

// LunchPeriod 午休槽位的节次哨兵值；教学节次为 1-8
const LunchPeriod = 0

// TeachingPeriods 每天的教学节次数
const TeachingPeriods = 8

// TimetableEntry 课表条目表，对应 timetable_entries
// (ClassID, DayOfWeek, PeriodNumber) 唯一，即网格中一个格子至多一条记录。
// StartTime/EndTime 在创建或编辑时按当时的节次配置写入，此后配置变更也不重算
type TimetableEntry struct {
	EntryID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                json:"entry_id"`
	ClassID         string  `gorm:"type:uuid;not null;uniqueIndex:timetable_cell_unique"          json:"class_id"`
	DayOfWeek       int     `gorm:"type:smallint;not null;uniqueIndex:timetable_cell_unique"      json:"day_of_week"`
	PeriodNumber    int     `gorm:"type:smallint;not null;uniqueIndex:timetable_cell_unique"      json:"period_number"`
	SubjectID       string  `gorm:"type:uuid;not null"                                            json:"subject_id"`
	TeacherID       string  `gorm:"type:uuid;not null"                                            json:"teacher_id"`
	RoomNumber      *string `gorm:"type:varchar(50)"                                              json:"room_number,omitempty"`
	StartTime       string  `gorm:"type:time;not null"                                            json:"start_time"`
	EndTime         string  `gorm:"type:time;not null"                                            json:"end_time"`
	SettingsVersion int     `gorm:"not null;default:1"                                            json:"settings_version"`
	VersionedModel

	// 关联
	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (TimetableEntry) TableName() string { return "timetable_entries" }
