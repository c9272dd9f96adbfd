package model

import "time"

// Holiday 假期区间表，对应 holidays
// [StartDate, EndDate] 为闭区间；允许单日区间与区间重叠
type Holiday struct {
	HolidayID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"holiday_id"`
	Name      string    `gorm:"type:varchar(200);not null"                     json:"name"`
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

func (Holiday) TableName() string { return "holidays" }
