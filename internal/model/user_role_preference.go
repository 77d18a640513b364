package model

// UserRolePreference 员工岗位偏好表 — 对应 user_role_preferences
//
// priority 为员工自排名次，数值越小越偏好；gm_priority 为店总对该员工
// 在该岗位上的评值。同一 (user_id, role_id) 只允许一行。
type UserRolePreference struct {
	BaseModel
	UserID     uint    `gorm:"not null;uniqueIndex:idx_user_role_prefs_user_role" json:"user_id"`
	RoleID     uint    `gorm:"not null;uniqueIndex:idx_user_role_prefs_user_role" json:"role_id"`
	Priority   float64 `gorm:"not null;default:0"                                 json:"priority"`
	GMPriority float64 `gorm:"not null;default:0"                                 json:"gm_priority"`

	// 关联
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName 指定表名
func (UserRolePreference) TableName() string { return "user_role_preferences" }

// [自证通过] internal/model/user_role_preference.go
