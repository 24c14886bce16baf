package dao

import (
	"context"
	"database/sql"
	"math"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	apperrors "book-review/pkg/common/errors"
	bookmodel "book-review/pkg/core/book/model"
	"book-review/pkg/core/review/model"
	"book-review/pkg/core/review/repository/dao"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) dao.ReviewRepository {
	return &GormReviewRepository{db: db}
}

// CreateOnce 存在性检查、重复检查与插入在同一事务中；
// 并发重复提交由 (book_id, user_id) 唯一索引兜底
func (r *GormReviewRepository) CreateOnce(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&bookmodel.Book{}).Where("id = ?", review.BookID).Count(&count).Error; err != nil {
			return errors.Wrap(apperrors.WrapGormError(err), "book lookup failed")
		}
		if count == 0 {
			return apperrors.ErrBookNotFound
		}

		if err := tx.Model(&model.Review{}).
			Where("book_id = ? AND user_id = ?", review.BookID, review.UserID).
			Count(&count).Error; err != nil {
			return errors.Wrap(apperrors.WrapGormError(err), "review lookup failed")
		}
		if count > 0 {
			return apperrors.ErrAlreadyReviewed
		}

		if err := tx.Create(review).Error; err != nil {
			if apperrors.IsDuplicateError(err) {
				return apperrors.ErrAlreadyReviewed
			}
			return errors.Wrap(apperrors.WrapGormError(err), "review creation failed")
		}
		return nil
	})
}

// UpdateOwned 归属条件写在 UPDATE 的 WHERE 中，检查与写入是同一条语句。
// MySQL DSN 设置了 clientFoundRows，值未变化的行仍计入匹配数
func (r *GormReviewRepository) UpdateOwned(ctx context.Context, id, userID int64, rating int, comment string) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Review{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]interface{}{
				"rating":  rating,
				"comment": comment,
			})
		if result.Error != nil {
			return errors.Wrap(apperrors.WrapGormError(result.Error), "review update failed")
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrReviewForbidden
		}

		if err := tx.Where("id = ?", id).First(&review).Error; err != nil {
			return errors.Wrap(apperrors.WrapGormError(err), "review reload failed")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) DeleteOwned(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Review{})
	if result.Error != nil {
		return errors.Wrap(apperrors.WrapGormError(result.Error), "review deletion failed")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrReviewForbidden
	}
	return nil
}

// Summarize 平均分保留一位小数
func (r *GormReviewRepository) Summarize(ctx context.Context, bookID int64) (model.Summary, error) {
	var row struct {
		AvgRating sql.NullFloat64
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("AVG(rating) AS avg_rating, COUNT(*) AS total").
		Where("book_id = ?", bookID).
		Scan(&row).Error
	if err != nil {
		return model.Summary{}, errors.Wrap(apperrors.WrapGormError(err), "rating summary failed")
	}

	summary := model.Summary{Total: row.Total}
	if row.AvgRating.Valid {
		avg := math.Round(row.AvgRating.Float64*10) / 10
		summary.AvgRating = &avg
	}
	return summary, nil
}

// ListByBook 按时间倒序，同一时刻创建的评论按 id 排序
func (r *GormReviewRepository) ListByBook(ctx context.Context, bookID int64, limit, offset int) ([]model.AuthoredReview, error) {
	reviews := make([]model.AuthoredReview, 0)
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.id, r.user_id, u.username, r.rating, r.comment, r.created_at").
		Joins("JOIN users AS u ON r.user_id = u.id").
		Where("r.book_id = ?", bookID).
		Order("r.created_at DESC, r.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&reviews).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.WrapGormError(err), "review list failed")
	}
	return reviews, nil
}
