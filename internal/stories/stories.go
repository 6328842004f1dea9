package stories

import (
	"context"
	"errors"
	"time"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

var (
	ErrViewerClosed = errors.New("story viewer is not open")
	ErrNotOwner     = errors.New("current story belongs to another member")
)

// Cursor is the transient playback position while the viewer is open. It is
// created on Open, mutated by ticks and navigation, and discarded on Close.
type Cursor struct {
	Group   int
	Item    int
	Elapsed float64
}

// Player drives the story viewer: linear advance and retreat through one
// owner's items and across the feed, timed auto-advance, view tracking and
// owner-only mutation of the current item.
type Player interface {
	// Open starts a viewing session at the first item of the given group.
	// An empty feed or an out-of-range index is rejected and the player
	// stays closed.
	Open(feed domain.StoryFeed, startGroup int) error
	Close()
	IsOpen() bool

	// Tick moves playback forward by deltaSeconds of wall time. Crossing
	// the current item's duration advances to the next item.
	Tick(deltaSeconds float64)
	Advance()
	Retreat()

	// ReportMediaDuration overrides the default item duration once the
	// media player knows the real length of the current video item.
	ReportMediaDuration(itemID string, d time.Duration)

	EditCurrentItem(ctx context.Context, media domain.StoryMedia, caption string) error
	DeleteCurrentItem(ctx context.Context) error

	// Viewers is a pull-through query; the player caches nothing for it.
	Viewers(ctx context.Context, itemID string) ([]domain.StoryViewer, error)

	Cursor() (Cursor, bool)
	Current() (domain.StoryItem, bool)
	CurrentGroup() (domain.StoryGroup, bool)
}
