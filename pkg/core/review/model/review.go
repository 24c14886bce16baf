package model

import (
	"time"

	"gorm.io/gorm"
)

// Review 每个用户对每本书至多一条，由联合唯一索引保证
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID    int64     `gorm:"not null;uniqueIndex:idx_review_book_user,priority:1" json:"book_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_review_book_user,priority:2;index" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// AuthoredReview 书籍详情页展示用，带评论者用户名
type AuthoredReview struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary 某本书的评分聚合，AvgRating 为 nil 表示还没有评论
type Summary struct {
	AvgRating *float64
	Total     int64
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Review{})
}
