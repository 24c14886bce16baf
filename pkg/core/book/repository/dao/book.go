package dao

import (
	"context"

	"book-review/pkg/core/book/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	List(ctx context.Context, filter model.ListFilter) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	QueryByID(ctx context.Context, id int64) (*model.Book, error)
}
