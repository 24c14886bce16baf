package model

import (
	bookmodel "book-review/pkg/core/book/model"
	reviewmodel "book-review/pkg/core/review/model"
)

type (
	CreateBookReq struct {
		Title  string `json:"title" validate:"required,max=255"`
		Author string `json:"author" validate:"required,max=255"`
		Genre  string `json:"genre" validate:"max=100"`
	}

	ReviewReq struct {
		Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
		Comment string `json:"comment" validate:"max=2000"`
	}

	ReviewPage struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int64 `json:"totalPages"`
	}

	// BookDetailRes 书籍字段平铺，后面附加评分和评论分页
	BookDetailRes struct {
		bookmodel.Book
		AvgRating  *float64                     `json:"avg_rating"`
		Reviews    []reviewmodel.AuthoredReview `json:"reviews"`
		ReviewPage ReviewPage                   `json:"review_page"`
	}
)
