package model

import (
	"time"

	"gorm.io/gorm"
)

// User 注册后不再修改，也不会被删除
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName 定义映射表名
func (User) TableName() string {
	return "users"
}

// Identity 令牌中携带的调用方身份
type Identity struct {
	ID       int64
	Username string
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
