package migrate

import (
	"gorm.io/gorm"

	bookmodel "book-review/pkg/core/book/model"
	reviewmodel "book-review/pkg/core/review/model"
	usermodel "book-review/pkg/core/user/model"
)

// AutoMigrate 按依赖顺序建表：用户 -> 书籍 -> 评论
func AutoMigrate(db *gorm.DB) error {
	steps := []func(*gorm.DB) error{
		usermodel.AutoMigrate,
		bookmodel.AutoMigrate,
		reviewmodel.AutoMigrate,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}
	return nil
}
