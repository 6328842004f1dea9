package stories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pawtrail/pawtrail-core/internal/domain"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/errors"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Service remote.Service
	Logger  logger.Logger
	Config  *config.Config
}

// PlayerImpl holds the state of at most one open viewing session. All state
// lives behind the mutex because the auto-advance ticker runs on its own
// goroutine.
type PlayerImpl struct {
	service remote.Service
	logger  logger.Logger

	defaultDuration time.Duration
	tickInterval    time.Duration
	viewerID        int64

	mu       sync.Mutex
	open     bool
	feed     domain.StoryFeed
	cursor   Cursor
	duration time.Duration
	elapsed  float64
	viewed   map[string]struct{}
	stop     chan struct{}
	session  uuid.UUID
}

// progressEpsilon absorbs float drift when fractional tick deltas sum up to
// the item duration without ever reaching it exactly.
const progressEpsilon = 1e-9

func New(opts Opts) *PlayerImpl {
	return &PlayerImpl{
		service:         opts.Service,
		logger:          opts.Logger.WithComponent("StoryPlayer"),
		defaultDuration: time.Duration(opts.Config.Stories.ItemDurationSeconds) * time.Second,
		tickInterval:    time.Duration(opts.Config.Stories.TickIntervalMs) * time.Millisecond,
		viewerID:        opts.Config.Session.MemberID,
	}
}

var _ Player = (*PlayerImpl)(nil)

func (p *PlayerImpl) Open(feed domain.StoryFeed, startGroup int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(feed) == 0 {
		return errors.Wrap(errors.ErrInvalidInput, "story feed is empty")
	}
	if startGroup < 0 || startGroup >= len(feed) {
		return errors.Wrap(errors.ErrInvalidInput, "start group index out of range")
	}
	for _, g := range feed {
		if len(g.Items) == 0 {
			return errors.Wrap(errors.ErrInvalidInput, "story group has no items")
		}
	}

	if p.open {
		p.closeLocked()
	}

	p.feed = cloneFeed(feed)
	p.cursor = Cursor{Group: startGroup}
	p.duration = p.defaultDuration
	p.elapsed = 0
	p.viewed = make(map[string]struct{})
	p.session = uuid.New()
	p.open = true

	if p.tickInterval > 0 {
		stop := make(chan struct{})
		p.stop = stop
		go p.runTicker(stop)
	}

	p.markViewedLocked(&p.feed[startGroup].Items[0])
	p.logger.Info("Story viewer opened",
		"session", p.session.String(),
		"groups", len(p.feed),
		"start_group", startGroup)
	return nil
}

func (p *PlayerImpl) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		p.closeLocked()
	}
}

func (p *PlayerImpl) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *PlayerImpl) Tick(deltaSeconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || deltaSeconds <= 0 {
		return
	}

	// Elapsed time is summed in whole seconds, not as a running fraction:
	// adding delta/duration per tick drifts below 1.0 when duration does
	// not divide the deltas exactly.
	p.elapsed += deltaSeconds
	p.cursor.Elapsed = p.elapsed / p.duration.Seconds()
	if p.elapsed+progressEpsilon >= p.duration.Seconds() {
		p.advanceLocked()
	}
}

func (p *PlayerImpl) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		p.advanceLocked()
	}
}

func (p *PlayerImpl) Retreat() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}

	switch {
	case p.cursor.Item > 0:
		p.moveToLocked(p.cursor.Group, p.cursor.Item-1)
	case p.cursor.Group == 0:
		// Swiping back past the very first item leaves the viewer.
		p.closeLocked()
	default:
		g := p.cursor.Group - 1
		p.moveToLocked(g, len(p.feed[g].Items)-1)
	}
}

func (p *PlayerImpl) ReportMediaDuration(itemID string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || d <= 0 {
		return
	}

	cur := &p.feed[p.cursor.Group].Items[p.cursor.Item]
	if cur.ID != itemID || cur.MediaKind != domain.MediaKindVideo {
		return
	}
	p.duration = d
	p.cursor.Elapsed = p.elapsed / d.Seconds()
}

func (p *PlayerImpl) EditCurrentItem(ctx context.Context, media domain.StoryMedia, caption string) error {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return ErrViewerClosed
	}
	if p.feed[p.cursor.Group].OwnerID != p.viewerID {
		p.mu.Unlock()
		return ErrNotOwner
	}
	itemID := p.feed[p.cursor.Group].Items[p.cursor.Item].ID
	p.mu.Unlock()

	if err := p.service.EditStoryItem(ctx, itemID, media, caption); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return nil
	}
	for g := range p.feed {
		for i := range p.feed[g].Items {
			item := &p.feed[g].Items[i]
			if item.ID != itemID {
				continue
			}
			item.MediaURL = media.URL
			item.MediaKind = media.Kind
			item.Caption = caption
			if g == p.cursor.Group && i == p.cursor.Item {
				// Replaced media plays from the start.
				p.cursor.Elapsed = 0
				p.elapsed = 0
				p.duration = p.defaultDuration
			}
			return nil
		}
	}
	return nil
}

func (p *PlayerImpl) DeleteCurrentItem(ctx context.Context) error {
	p.mu.Lock()
	if !p.open {
		p.mu.Unlock()
		return ErrViewerClosed
	}
	if p.feed[p.cursor.Group].OwnerID != p.viewerID {
		p.mu.Unlock()
		return ErrNotOwner
	}
	g, i := p.cursor.Group, p.cursor.Item
	itemID := p.feed[g].Items[i].ID
	p.mu.Unlock()

	if err := p.service.DeleteStoryItem(ctx, itemID); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return nil
	}

	items := p.feed[g].Items
	p.feed[g].Items = append(items[:i], items[i+1:]...)
	p.logger.Info("Story item deleted", "session", p.session.String(), "story_id", itemID)

	if len(p.feed[g].Items) == 0 {
		p.feed = append(p.feed[:g], p.feed[g+1:]...)
		if g < len(p.feed) {
			p.moveToLocked(g, 0)
		} else {
			p.closeLocked()
		}
		return nil
	}

	if i < len(p.feed[g].Items) {
		p.moveToLocked(g, i)
		return nil
	}
	if g+1 < len(p.feed) {
		p.moveToLocked(g+1, 0)
		return nil
	}
	p.closeLocked()
	return nil
}

func (p *PlayerImpl) Viewers(ctx context.Context, itemID string) ([]domain.StoryViewer, error) {
	return p.service.FetchStoryViewers(ctx, itemID)
}

func (p *PlayerImpl) Cursor() (Cursor, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return Cursor{}, false
	}
	return p.cursor, true
}

func (p *PlayerImpl) Current() (domain.StoryItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return domain.StoryItem{}, false
	}
	return p.feed[p.cursor.Group].Items[p.cursor.Item], true
}

func (p *PlayerImpl) CurrentGroup() (domain.StoryGroup, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return domain.StoryGroup{}, false
	}
	group := p.feed[p.cursor.Group]
	group.Items = append([]domain.StoryItem(nil), group.Items...)
	return group, true
}

// advanceLocked moves to the next item, the next group, or closes at the
// end of the feed.
func (p *PlayerImpl) advanceLocked() {
	g := p.cursor.Group
	if p.cursor.Item+1 < len(p.feed[g].Items) {
		p.moveToLocked(g, p.cursor.Item+1)
		return
	}
	if g+1 < len(p.feed) {
		p.moveToLocked(g+1, 0)
		return
	}
	p.closeLocked()
}

func (p *PlayerImpl) moveToLocked(g, i int) {
	p.cursor = Cursor{Group: g, Item: i}
	p.duration = p.defaultDuration
	p.elapsed = 0
	p.markViewedLocked(&p.feed[g].Items[i])
}

// markViewedLocked issues the view-tracking request at most once per item
// per session. The request carries its own context: closing the viewer does
// not abort an in-flight mark.
func (p *PlayerImpl) markViewedLocked(item *domain.StoryItem) {
	if _, ok := p.viewed[item.ID]; ok {
		return
	}
	p.viewed[item.ID] = struct{}{}
	item.Viewed = true

	id := item.ID
	log := p.logger
	svc := p.service
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := svc.MarkStoryViewed(ctx, id); err != nil {
			log.Warn("Failed to mark story viewed", "story_id", id, "error", err)
		}
	}()
}

func (p *PlayerImpl) closeLocked() {
	p.open = false
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	p.feed = nil
	p.viewed = nil
	p.cursor = Cursor{}
	p.elapsed = 0
	p.logger.Info("Story viewer closed", "session", p.session.String())
}

func (p *PlayerImpl) runTicker(stop chan struct{}) {
	ticker := time.NewTicker(p.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.Tick(p.tickInterval.Seconds())
		}
	}
}

func cloneFeed(feed domain.StoryFeed) domain.StoryFeed {
	out := make(domain.StoryFeed, len(feed))
	copy(out, feed)
	for i := range out {
		out[i].Items = append([]domain.StoryItem(nil), out[i].Items...)
	}
	return out
}
