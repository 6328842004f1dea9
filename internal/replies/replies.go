package replies

import (
	"context"
	"errors"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

var ErrNotFound = errors.New("reply not found")

// Store is the nested-reply container: CRUD over replies grouped by parent
// comment, with like behavior delegated to the engagement store. Reply ids
// are global; the per-parent grouping is a secondary index.
type Store interface {
	// LoadReplies fetches the replies for one parent comment and replaces
	// the cached group wholesale.
	LoadReplies(ctx context.Context, parentCommentID int64) ([]domain.Reply, error)

	// AddReply validates the content before any network call and appends
	// the created reply at the end of its group.
	AddReply(ctx context.Context, parentCommentID int64, content string) (domain.Reply, error)

	// EditReply updates a reply in place, preserving its position.
	EditReply(ctx context.Context, replyID int64, newContent string) error

	// RemoveReply deletes a reply from whichever group holds it.
	RemoveReply(ctx context.Context, replyID int64) error

	// ToggleLike and FetchLikeDetails delegate to the engagement store and
	// write the result back onto the cached reply. The parent id is a
	// locality hint; a global search is the fallback.
	ToggleLike(ctx context.Context, replyID, parentCommentID int64) (domain.LikeStatus, error)
	FetchLikeDetails(ctx context.Context, replyID, parentCommentID int64) (domain.LikeDetails, error)

	// Replies returns the cached group for one parent comment.
	Replies(parentCommentID int64) []domain.Reply
}
