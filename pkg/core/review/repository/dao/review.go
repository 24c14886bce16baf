package dao

import (
	"context"

	"book-review/pkg/core/review/model"
)

type ReviewRepository interface {
	// CreateOnce 在同一事务内检查书籍存在性与重复评论后写入
	CreateOnce(ctx context.Context, review *model.Review) error
	// UpdateOwned 仅当 userID 为作者时更新，返回更新后的记录
	UpdateOwned(ctx context.Context, id, userID int64, rating int, comment string) (*model.Review, error)
	// DeleteOwned 仅当 userID 为作者时删除
	DeleteOwned(ctx context.Context, id, userID int64) error
	Summarize(ctx context.Context, bookID int64) (model.Summary, error)
	ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]model.AuthoredReview, error)
}
