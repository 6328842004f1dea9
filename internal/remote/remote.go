package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

var (
	// ErrAuthRequired is returned when no valid session token is attached
	// to the request. Stores propagate it unchanged and mutate nothing.
	ErrAuthRequired = errors.New("authentication required")
	ErrNotFound     = errors.New("resource not found")
)

// CallError wraps a failed backend call with the operation name and, when
// the server answered at all, the HTTP status code.
type CallError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *CallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

//go:generate go run go.uber.org/mock/mockgen -source=remote.go -destination=mocks/mock.go -package=mocks

// Service is the remote data collaborator every store and the story player
// depend on. The transport behind it is conventional JSON over HTTPS with
// bearer-token auth; callers only see domain values and errors.
type Service interface {
	ToggleEntityLike(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeStatus, error)
	FetchEntityLikeDetails(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeDetails, error)

	FetchStoryFeed(ctx context.Context) (domain.StoryFeed, error)
	MarkStoryViewed(ctx context.Context, itemID string) error
	FetchStoryViewers(ctx context.Context, itemID string) ([]domain.StoryViewer, error)
	EditStoryItem(ctx context.Context, itemID string, media domain.StoryMedia, caption string) error
	DeleteStoryItem(ctx context.Context, itemID string) error

	CreateReply(ctx context.Context, parentCommentID int64, content string) (*domain.Reply, error)
	UpdateReply(ctx context.Context, replyID int64, content string) (*domain.Reply, error)
	DeleteReply(ctx context.Context, replyID int64) error
	ListReplies(ctx context.Context, parentCommentID int64) ([]*domain.Reply, error)
}
