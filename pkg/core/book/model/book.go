package model

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Book 创建后不支持修改和删除
type Book struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Author    string    `gorm:"type:varchar(255);not null;index" json:"author"`
	Genre     string    `gorm:"type:varchar(100);index" json:"genre"`
	CreatedBy int64     `gorm:"not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}

// ListFilter 列表查询条件，Author 为空表示不过滤
type ListFilter struct {
	Page   int
	Limit  int
	Author string
	Genre  string
}

// Offset 页码从 1 开始
func (f ListFilter) Offset() int {
	return PageOffset(f.Page, f.Limit)
}

// PageOffset 计算 (page-1)*limit；溢出时取 math.MaxInt，查询结果为空页而不是回绕到第一页
func PageOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Book{})
}
