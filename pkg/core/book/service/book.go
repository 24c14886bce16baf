package service

import (
	"context"
	"errors"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/core/book/model"
	"book-review/pkg/core/book/repository/dao"
	reviewmodel "book-review/pkg/core/review/model"
	reviewdao "book-review/pkg/core/review/repository/dao"
)

type BookService interface {
	Create(ctx context.Context, title, author, genre string, creatorID int64) (*model.Book, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	GetByID(ctx context.Context, id int64, page, limit int) (*Detail, error)
}

// Detail 书籍详情：评分聚合加一页评论
type Detail struct {
	Book       *model.Book
	AvgRating  *float64
	Reviews    []reviewmodel.AuthoredReview
	Total      int64
	Page       int
	Limit      int
	TotalPages int64
}

type bookService struct {
	books   dao.BookRepository
	reviews reviewdao.ReviewRepository
}

func NewBookService(books dao.BookRepository, reviews reviewdao.ReviewRepository) BookService {
	return &bookService{books: books, reviews: reviews}
}

func (s *bookService) Create(ctx context.Context, title, author, genre string, creatorID int64) (*model.Book, error) {
	book := &model.Book{
		Title:     title,
		Author:    author,
		Genre:     genre,
		CreatedBy: creatorID,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context, filter model.ListFilter) ([]model.Book, error) {
	return s.books.List(ctx, filter)
}

func (s *bookService) Search(ctx context.Context, query string) ([]model.Book, error) {
	return s.books.Search(ctx, query)
}

func (s *bookService) GetByID(ctx context.Context, id int64, page, limit int) (*Detail, error) {
	book, err := s.books.QueryByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, err
	}

	summary, err := s.reviews.Summarize(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByBook(ctx, id, limit, model.PageOffset(page, limit))
	if err != nil {
		return nil, err
	}

	return &Detail{
		Book:       book,
		AvgRating:  summary.AvgRating,
		Reviews:    reviews,
		Total:      summary.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(summary.Total, limit),
	}, nil
}

// TotalPages 即 ceil(total/limit)
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
