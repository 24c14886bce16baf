package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	apperrors "book-review/pkg/common/errors"
	bookmodel "book-review/pkg/core/book/model"
	bookservice "book-review/pkg/core/book/service"
	reviewservice "book-review/pkg/core/review/service"
	"book-review/pkg/web/model"
)

type BookHandler struct {
	books        bookservice.BookService
	reviews      reviewservice.ReviewService
	defaultLimit int
}

func NewBookHandler(books bookservice.BookService, reviews reviewservice.ReviewService, defaultLimit int) *BookHandler {
	if defaultLimit < 1 {
		defaultLimit = 10
	}
	return &BookHandler{books: books, reviews: reviews, defaultLimit: defaultLimit}
}

// Create POST /books
func (h *BookHandler) Create(ctx context.Context, c *app.RequestContext) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}

	var req model.CreateBookReq
	if err := bindAndValidate(c, &req); err != nil {
		respondError(ctx, c, err)
		return
	}

	book, err := h.books.Create(ctx, req.Title, req.Author, req.Genre, identity.ID)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusCreated, book)
}

// List GET /books?page=&limit=&author=&genre=
func (h *BookHandler) List(ctx context.Context, c *app.RequestContext) {
	page, limit := pagination(c, h.defaultLimit)

	books, err := h.books.List(ctx, bookmodel.ListFilter{
		Page:   page,
		Limit:  limit,
		Author: c.Query("author"),
		Genre:  c.Query("genre"),
	})
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, books)
}

// Search GET /books/search?query=
func (h *BookHandler) Search(ctx context.Context, c *app.RequestContext) {
	books, err := h.books.Search(ctx, c.Query("query"))
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, books)
}

// Get GET /books/:id?page=&limit=
func (h *BookHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, ok := pathID(c)
	if !ok {
		respondError(ctx, c, apperrors.ErrBookNotFound)
		return
	}
	page, limit := pagination(c, h.defaultLimit)

	detail, err := h.books.GetByID(ctx, id, page, limit)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, model.BookDetailRes{
		Book:      *detail.Book,
		AvgRating: detail.AvgRating,
		Reviews:   detail.Reviews,
		ReviewPage: model.ReviewPage{
			Total:      detail.Total,
			Page:       detail.Page,
			Limit:      detail.Limit,
			TotalPages: detail.TotalPages,
		},
	})
}

// SubmitReview POST /books/:id/reviews
func (h *BookHandler) SubmitReview(ctx context.Context, c *app.RequestContext) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}

	bookID, ok := pathID(c)
	if !ok {
		respondError(ctx, c, apperrors.ErrBookNotFound)
		return
	}

	var req model.ReviewReq
	if err := bindAndValidate(c, &req); err != nil {
		respondError(ctx, c, err)
		return
	}

	review, err := h.reviews.Submit(ctx, bookID, identity.ID, req.Rating, req.Comment)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusCreated, review)
}
