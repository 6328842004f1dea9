package engagement

import (
	"context"
	"sync"

	"github.com/pawtrail/pawtrail-core/internal/domain"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/formatter"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"go.uber.org/fx"
)

type key struct {
	kind domain.EntityKind
	id   int64
}

// MemoryStore keeps one LikeState per entity that has been viewed or
// interacted with. Entries are never evicted; the map is bounded by the UI
// lifetime. Overlapping calls on the same id resolve last-write-wins.
type MemoryStore struct {
	service  remote.Service
	logger   logger.Logger
	memberID int64

	mu     sync.RWMutex
	states map[key]domain.LikeState
}

type Opts struct {
	fx.In

	Service remote.Service
	Logger  logger.Logger
	Config  *config.Config
}

func NewMemoryStore(opts Opts) *MemoryStore {
	return &MemoryStore{
		service:  opts.Service,
		logger:   opts.Logger.WithComponent("EngagementStore"),
		memberID: opts.Config.Session.MemberID,
		states:   make(map[key]domain.LikeState),
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) ToggleLike(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeStatus, error) {
	status, err := s.service.ToggleEntityLike(ctx, kind, id)
	if err != nil {
		return domain.LikeStatus{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{kind: kind, id: id}
	state := s.states[k]
	state.Liked = status.Liked
	state.Count = status.Count
	// The member list is left as-is. It is stale now, but the next
	// FetchLikeDetails reconciles it; toggling does not refetch.
	s.states[k] = state

	return status, nil
}

func (s *MemoryStore) FetchLikeDetails(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeDetails, error) {
	details, err := s.service.FetchEntityLikeDetails(ctx, kind, id)
	if err != nil {
		return domain.LikeDetails{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{kind: kind, id: id}
	state := s.states[k]
	state.Count = details.Count
	// A fetched-but-empty member list is kept non-nil so it reads as
	// fetched, not absent.
	members := make([]domain.Member, 0, len(details.Members))
	state.Members = append(members, details.Members...)
	if s.memberID != 0 {
		state.Liked = containsMember(details.Members, s.memberID)
	}
	s.states[k] = state

	return details, nil
}

func (s *MemoryStore) State(kind domain.EntityKind, id int64) (domain.LikeState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[key{kind: kind, id: id}]
	if !ok {
		return domain.LikeState{}, false
	}
	// Copy without collapsing a fetched-but-empty list back to nil.
	if state.Members != nil {
		members := make([]domain.Member, len(state.Members))
		copy(members, state.Members)
		state.Members = members
	}
	return state, true
}

func (s *MemoryStore) Summary(kind domain.EntityKind, id int64) Summary {
	s.mu.RLock()
	state := s.states[key{kind: kind, id: id}]
	s.mu.RUnlock()

	return Summary{
		Liked:   state.Liked,
		Count:   state.Count,
		Display: formatter.CompactCount(state.Count),
		Full:    formatter.FormatNumber(state.Count),
	}
}

func containsMember(members []domain.Member, memberID int64) bool {
	for _, m := range members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}
