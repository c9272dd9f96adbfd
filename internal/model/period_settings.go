package model

// 节次配置的取值边界（域校验与数据库 CHECK 约束保持一致）
const (
	MinPeriodDuration = 30
	MaxPeriodDuration = 120
	MinLunchDuration  = 20
	MaxLunchDuration  = 120
	MinLunchAfter     = 1
	MaxLunchAfter     = 8
)

// PeriodSettings 全校节次配置表，对应 period_settings（单行强类型）
// 全校唯一一份当前值，保存时整体替换；Version 单调递增，
// 课表条目创建时记下当时的 Version，使"时间一经写入不再重算"可追溯
type PeriodSettings struct {
	Singleton             bool   `gorm:"primaryKey;default:true"            json:"-"`
	PeriodDurationMinutes int    `gorm:"type:smallint;not null;default:45"  json:"period_duration_minutes"`
	SchoolStartTime       string `gorm:"type:time;not null;default:'08:00'" json:"school_start_time"`
	LunchAfterPeriod      int    `gorm:"type:smallint;not null;default:4"   json:"lunch_after_period"`
	LunchDurationMinutes  int    `gorm:"type:smallint;not null;default:60"  json:"lunch_duration_minutes"`
	Version               int    `gorm:"not null;default:1"                 json:"version"`
	BaseModel
}

// TableName 指定表名
func (PeriodSettings) TableName() string { return "period_settings" }
