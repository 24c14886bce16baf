package dao

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/core/book/model"
	"book-review/pkg/core/book/repository/dao"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) dao.BookRepository {
	return &GormBookRepository{db: db}
}

// Create 书名、作者不做唯一约束，直接插入
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return errors.Wrap(apperrors.WrapGormError(err), "book creation failed")
	}
	return nil
}

// List 作者按子串忽略大小写匹配，类型精确匹配
func (r *GormBookRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Book, error) {
	query := r.db.WithContext(ctx).Model(&model.Book{})
	if filter.Author != "" {
		query = query.Where("LOWER(author) LIKE ? ESCAPE '!'", likePattern(filter.Author))
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}

	books := make([]model.Book, 0)
	err := query.Order("id").
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Find(&books).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.WrapGormError(err), "book list failed")
	}
	return books, nil
}

// Search 空关键字匹配全部书籍
func (r *GormBookRepository) Search(ctx context.Context, query string) ([]model.Book, error) {
	pattern := likePattern(query)

	books := make([]model.Book, 0)
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(author) LIKE ? ESCAPE '!'", pattern, pattern).
		Order("id").
		Find(&books).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.WrapGormError(err), "book search failed")
	}
	return books, nil
}

func (r *GormBookRepository) QueryByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.WrapGormError(err), "book query failed")
	}
	return &book, nil
}

// likeEscaper 用 '!' 作转义符，MySQL/Postgres/SQLite 均支持且无需处理反斜杠
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern 子串匹配，输入中的 % 和 _ 按字面量处理
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
