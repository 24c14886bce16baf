package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"book-review/pkg/core/review/model"
	"book-review/pkg/core/review/repository/dao"
)

type ReviewService interface {
	Submit(ctx context.Context, bookID, userID int64, rating int, comment string) (*model.Review, error)
	Update(ctx context.Context, reviewID int64, rating int, comment string, callerID int64) (*model.Review, error)
	Delete(ctx context.Context, reviewID, callerID int64) error
}

type reviewService struct {
	repo dao.ReviewRepository
}

func NewReviewService(repo dao.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) Submit(ctx context.Context, bookID, userID int64, rating int, comment string) (*model.Review, error) {
	review := &model.Review{
		BookID:  bookID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.repo.CreateOnce(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update 不存在与非本人评论返回同一个错误，避免泄露评论是否存在
func (s *reviewService) Update(ctx context.Context, reviewID int64, rating int, comment string, callerID int64) (*model.Review, error) {
	review, err := s.repo.UpdateOwned(ctx, reviewID, callerID, rating, comment)
	if err != nil {
		return nil, err
	}
	hlog.CtxDebugf(ctx, "review %d updated by user %d", reviewID, callerID)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID, callerID int64) error {
	if err := s.repo.DeleteOwned(ctx, reviewID, callerID); err != nil {
		return err
	}
	hlog.CtxDebugf(ctx, "review %d deleted by user %d", reviewID, callerID)
	return nil
}
