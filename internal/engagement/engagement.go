package engagement

import (
	"context"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

// Summary is the UI-facing projection of one entity's like state.
type Summary struct {
	Liked   bool
	Count   int
	Display string
	Full    string
}

//go:generate go run go.uber.org/mock/mockgen -source=engagement.go -destination=mocks/mock.go -package=mocks

// Store is the generalized like container shared by posts, comments and
// replies. The entity kind only selects the backend resource; the state
// transitions are identical for all three.
type Store interface {
	// ToggleLike flips the like through the backend and stores the
	// authoritative pair from the response. Nothing is written before the
	// call succeeds, so a failed toggle leaves the cached state untouched.
	ToggleLike(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeStatus, error)

	// FetchLikeDetails refreshes the count and the member list for one
	// entity, overwriting whatever was cached.
	FetchLikeDetails(ctx context.Context, kind domain.EntityKind, id int64) (domain.LikeDetails, error)

	// State returns the cached like state and whether the entity has been
	// seen at all.
	State(kind domain.EntityKind, id int64) (domain.LikeState, bool)

	// Summary renders the cached state for display.
	Summary(kind domain.EntityKind, id int64) Summary
}
