package model

import "time"

// ── 参照数据 ──
// 班级 / 科目 / 教师由教务 CRUD 模块维护，本服务只读，
// 用于编辑器下拉框与课表条目的外键校验

// Class 班级表，对应 classes
type Class struct {
	ClassID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (Class) TableName() string { return "classes" }

// Subject 科目表，对应 subjects
type Subject struct {
	SubjectID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (Subject) TableName() string { return "subjects" }

// Teacher 教师表，对应 teachers
type Teacher struct {
	TeacherID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	IsActive  bool      `gorm:"not null;default:true"                          json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

func (Teacher) TableName() string { return "teachers" }
