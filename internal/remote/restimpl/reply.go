package restimpl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

type replyDTO struct {
	ID              int64     `json:"id"`
	ParentCommentID int64     `json:"parentCommentId"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Author          memberDTO `json:"author"`
	Liked           bool      `json:"likedByMe"`
	LikeCount       *int      `json:"likeCount"`
}

type createReplyDTO struct {
	Content string `json:"content"`
}

func (d replyDTO) toDomain() *domain.Reply {
	// Older backend versions omit likeCount on reply payloads; treat
	// absent as zero rather than propagating garbage.
	count := 0
	if d.LikeCount != nil && *d.LikeCount > 0 {
		count = *d.LikeCount
	}
	return &domain.Reply{
		ID:              d.ID,
		ParentCommentID: d.ParentCommentID,
		Content:         d.Content,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Author:          d.Author.toDomain(),
		Like: domain.LikeState{
			Liked: d.Liked,
			Count: count,
		},
	}
}

func (c *RestImpl) CreateReply(ctx context.Context, parentCommentID int64, content string) (*domain.Reply, error) {
	path := fmt.Sprintf("/api/v1/comments/%d/replies", parentCommentID)

	var out replyDTO
	if err := c.call(ctx, "CreateReply", http.MethodPost, path, createReplyDTO{Content: content}, &out); err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}

func (c *RestImpl) UpdateReply(ctx context.Context, replyID int64, content string) (*domain.Reply, error) {
	path := fmt.Sprintf("/api/v1/replies/%d", replyID)

	var out replyDTO
	if err := c.call(ctx, "UpdateReply", http.MethodPatch, path, createReplyDTO{Content: content}, &out); err != nil {
		return nil, err
	}

	return out.toDomain(), nil
}

func (c *RestImpl) DeleteReply(ctx context.Context, replyID int64) error {
	path := fmt.Sprintf("/api/v1/replies/%d", replyID)
	return c.call(ctx, "DeleteReply", http.MethodDelete, path, nil, nil)
}

func (c *RestImpl) ListReplies(ctx context.Context, parentCommentID int64) ([]*domain.Reply, error) {
	path := fmt.Sprintf("/api/v1/comments/%d/replies", parentCommentID)

	var out struct {
		Replies []replyDTO `json:"replies"`
	}
	if err := c.call(ctx, "ListReplies", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	replies := make([]*domain.Reply, 0, len(out.Replies))
	for _, r := range out.Replies {
		replies = append(replies, r.toDomain())
	}

	return replies, nil
}
