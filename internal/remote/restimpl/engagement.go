package restimpl

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

type likeStatusDTO struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

type memberDTO struct {
	MemberID  int64  `json:"memberId"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

type likeDetailsDTO struct {
	LikeCount    int         `json:"likeCount"`
	LikedMembers []memberDTO `json:"likedMembers"`
}

func kindSegment(kind domain.EntityKind) string {
	switch kind {
	case domain.EntityKindComment:
		return "comments"
	case domain.EntityKindReply:
		return "replies"
	default:
		return "posts"
	}
}

func (m memberDTO) toDomain() domain.Member {
	return domain.Member{
		ID:        m.MemberID,
		Nickname:  m.Nickname,
		AvatarURL: m.AvatarURL,
	}
}

func (c *RestImpl) ToggleEntityLike(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeStatus, error) {
	path := fmt.Sprintf("/api/v1/%s/%d/like", kindSegment(kind), id)

	var out likeStatusDTO
	if err := c.call(ctx, "ToggleEntityLike", http.MethodPost, path, nil, &out); err != nil {
		return domain.LikeStatus{}, err
	}

	return domain.LikeStatus{Liked: out.Liked, Count: out.LikeCount}, nil
}

func (c *RestImpl) FetchEntityLikeDetails(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeDetails, error) {
	path := fmt.Sprintf("/api/v1/%s/%d/likes", kindSegment(kind), id)

	var out likeDetailsDTO
	if err := c.call(ctx, "FetchEntityLikeDetails", http.MethodGet, path, nil, &out); err != nil {
		return domain.LikeDetails{}, err
	}

	members := make([]domain.Member, 0, len(out.LikedMembers))
	for _, m := range out.LikedMembers {
		members = append(members, m.toDomain())
	}

	return domain.LikeDetails{Count: out.LikeCount, Members: members}, nil
}
