package replies

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pawtrail/pawtrail-core/internal/domain"
	"github.com/pawtrail/pawtrail-core/internal/engagement"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/pkg/errors"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"go.uber.org/fx"
)

// MemoryStore keeps the reply index: parent comment id to replies in
// creation order. A group whose last reply is removed is dropped from the
// index entirely.
type MemoryStore struct {
	service remote.Service
	likes   engagement.Store
	logger  logger.Logger

	mu    sync.RWMutex
	index map[int64][]domain.Reply
}

type Opts struct {
	fx.In

	Service remote.Service
	Likes   engagement.Store
	Logger  logger.Logger
}

func NewMemoryStore(opts Opts) *MemoryStore {
	return &MemoryStore{
		service: opts.Service,
		likes:   opts.Likes,
		logger:  opts.Logger.WithComponent("ReplyStore"),
		index:   make(map[int64][]domain.Reply),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) LoadReplies(ctx context.Context, parentCommentID int64) ([]domain.Reply, error) {
	fetched, err := s.service.ListReplies(ctx, parentCommentID)
	if err != nil {
		return nil, err
	}

	group := make([]domain.Reply, 0, len(fetched))
	for _, r := range fetched {
		if r == nil {
			continue
		}
		reply := *r
		normalizeReply(&reply, parentCommentID)
		group = append(group, reply)
	}

	s.mu.Lock()
	s.index[parentCommentID] = group
	s.mu.Unlock()

	return append([]domain.Reply(nil), group...), nil
}

func (s *MemoryStore) AddReply(ctx context.Context, parentCommentID int64, content string) (domain.Reply, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Reply{}, errors.Wrap(errors.ErrInvalidInput, "reply content is empty")
	}

	created, err := s.service.CreateReply(ctx, parentCommentID, content)
	if err != nil {
		return domain.Reply{}, err
	}

	reply := *created
	normalizeReply(&reply, parentCommentID)

	s.mu.Lock()
	s.index[parentCommentID] = append(s.index[parentCommentID], reply)
	s.mu.Unlock()

	return reply, nil
}

func (s *MemoryStore) EditReply(ctx context.Context, replyID int64, newContent string) error {
	if strings.TrimSpace(newContent) == "" {
		return errors.Wrap(errors.ErrInvalidInput, "reply content is empty")
	}

	s.mu.RLock()
	_, _, found := s.locate(replyID)
	s.mu.RUnlock()
	if !found {
		return ErrNotFound
	}

	updated, err := s.service.UpdateReply(ctx, replyID, newContent)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, i, found := s.locate(replyID)
	if !found {
		return nil
	}
	reply := &s.index[parentID][i]
	reply.Content = newContent
	reply.UpdatedAt = time.Now()
	if updated != nil && !updated.UpdatedAt.IsZero() {
		reply.UpdatedAt = updated.UpdatedAt
	}
	return nil
}

func (s *MemoryStore) RemoveReply(ctx context.Context, replyID int64) error {
	s.mu.RLock()
	_, _, found := s.locate(replyID)
	s.mu.RUnlock()
	if !found {
		return ErrNotFound
	}

	if err := s.service.DeleteReply(ctx, replyID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parentID, i, found := s.locate(replyID)
	if !found {
		return nil
	}
	group := s.index[parentID]
	s.index[parentID] = append(group[:i], group[i+1:]...)
	if len(s.index[parentID]) == 0 {
		delete(s.index, parentID)
	}
	return nil
}

func (s *MemoryStore) ToggleLike(ctx context.Context, replyID, parentCommentID int64) (domain.LikeStatus, error) {
	status, err := s.likes.ToggleLike(ctx, domain.EntityKindReply, replyID)
	if err != nil {
		return domain.LikeStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if reply := s.find(replyID, parentCommentID); reply != nil {
		reply.Like.Liked = status.Liked
		reply.Like.Count = status.Count
	}
	return status, nil
}

func (s *MemoryStore) FetchLikeDetails(ctx context.Context, replyID, parentCommentID int64) (domain.LikeDetails, error) {
	details, err := s.likes.FetchLikeDetails(ctx, domain.EntityKindReply, replyID)
	if err != nil {
		return domain.LikeDetails{}, err
	}

	// The engagement store already derived the liked flag from the member
	// list; mirror its state onto the cached reply.
	state, _ := s.likes.State(domain.EntityKindReply, replyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if reply := s.find(replyID, parentCommentID); reply != nil {
		reply.Like = state
	}
	return details, nil
}

func (s *MemoryStore) Replies(parentCommentID int64) []domain.Reply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Reply(nil), s.index[parentCommentID]...)
}

// find resolves a reply pointer, trying the hinted group before scanning
// every group.
func (s *MemoryStore) find(replyID, parentHint int64) *domain.Reply {
	if group, ok := s.index[parentHint]; ok {
		for i := range group {
			if group[i].ID == replyID {
				return &group[i]
			}
		}
	}
	parentID, i, found := s.locate(replyID)
	if !found {
		return nil
	}
	return &s.index[parentID][i]
}

func (s *MemoryStore) locate(replyID int64) (parentID int64, index int, found bool) {
	for pid, group := range s.index {
		for i := range group {
			if group[i].ID == replyID {
				return pid, i, true
			}
		}
	}
	return 0, 0, false
}

func normalizeReply(r *domain.Reply, parentCommentID int64) {
	if r.ParentCommentID == 0 {
		r.ParentCommentID = parentCommentID
	}
	if r.Like.Count < 0 {
		r.Like.Count = 0
	}
}
