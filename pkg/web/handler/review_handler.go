package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	apperrors "book-review/pkg/common/errors"
	"book-review/pkg/core/review/service"
	"book-review/pkg/web/model"
)

type ReviewHandler struct {
	reviews service.ReviewService
}

func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Update PUT /reviews/:id，仅作者本人可修改
func (h *ReviewHandler) Update(ctx context.Context, c *app.RequestContext) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}

	id, ok := pathID(c)
	if !ok {
		respondError(ctx, c, apperrors.ErrReviewForbidden)
		return
	}

	var req model.ReviewReq
	if err := bindAndValidate(c, &req); err != nil {
		respondError(ctx, c, err)
		return
	}

	review, err := h.reviews.Update(ctx, id, req.Rating, req.Comment, identity.ID)
	if err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, review)
}

// Delete DELETE /reviews/:id，仅作者本人可删除
func (h *ReviewHandler) Delete(ctx context.Context, c *app.RequestContext) {
	identity, ok := currentIdentity(c)
	if !ok {
		c.AbortWithStatus(consts.StatusUnauthorized)
		return
	}

	id, ok := pathID(c)
	if !ok {
		respondError(ctx, c, apperrors.ErrReviewForbidden)
		return
	}

	if err := h.reviews.Delete(ctx, id, identity.ID); err != nil {
		respondError(ctx, c, err)
		return
	}

	c.JSON(consts.StatusOK, model.MessageRes{Message: "Review deleted successfully"})
}
