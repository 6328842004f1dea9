package refresher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/pawtrail/pawtrail-core/internal/domain"
	"github.com/pawtrail/pawtrail-core/internal/engagement"
	"github.com/pawtrail/pawtrail-core/internal/remote"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"go.uber.org/fx"
)

// Refresher keeps a current snapshot of the story feed while the app runs
// and warms the engagement cache for entities about to hit the screen. A
// failed refresh keeps the previous snapshot: stale beats empty.
type Refresher struct {
	service  remote.Service
	likes    engagement.Store
	logger   logger.Logger
	interval time.Duration

	mu   sync.RWMutex
	feed domain.StoryFeed

	scheduler gocron.Scheduler
}

type Opts struct {
	fx.In

	Service remote.Service
	Likes   engagement.Store
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) *Refresher {
	return &Refresher{
		service:  opts.Service,
		likes:    opts.Likes,
		logger:   opts.Logger.WithComponent("FeedRefresher"),
		interval: time.Duration(opts.Config.Stories.RefreshMinutes) * time.Minute,
	}
}

// Start schedules the periodic feed refresh.
func (r *Refresher) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create feed scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				r.logger.Info("Context cancelled, stopping feed refresh job")
				return
			}

			taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			if err := r.Refresh(taskCtx); err != nil {
				r.logger.Error("Story feed refresh failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}

	r.scheduler = scheduler
	scheduler.Start()
	return nil
}

// Stop shuts the scheduler down. In-flight refreshes finish on their own.
func (r *Refresher) Stop() error {
	if r.scheduler == nil {
		return nil
	}
	return r.scheduler.Shutdown()
}

// Refresh fetches the feed once and swaps the snapshot on success.
func (r *Refresher) Refresh(ctx context.Context) error {
	feed, err := r.service.FetchStoryFeed(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.feed = feed
	r.mu.Unlock()

	r.logger.Info("Story feed refreshed", "groups", len(feed), "items", feed.TotalItems())
	return nil
}

// Feed returns the latest snapshot.
func (r *Refresher) Feed() domain.StoryFeed {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(domain.StoryFeed, len(r.feed))
	copy(out, r.feed)
	for i := range out {
		out[i].Items = append([]domain.StoryItem(nil), out[i].Items...)
	}
	return out
}

// WarmEngagement prefetches like details for a batch of entity ids with a
// bounded worker pool, so a screen full of posts renders with counts
// already cached.
func (r *Refresher) WarmEngagement(ctx context.Context, kind domain.EntityKind, ids []int64) {
	if len(ids) == 0 {
		return
	}

	var wg sync.WaitGroup
	pool, _ := ants.NewPool(5, ants.WithPreAlloc(true))
	defer pool.Release()

	for _, id := range ids {
		wg.Add(1)
		entityID := id

		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			default:
				if _, err := r.likes.FetchLikeDetails(ctx, kind, entityID); err != nil {
					r.logger.Warn("Failed to warm like details", "kind", kind, "id", entityID, "error", err)
				}
			}
		})
		if err != nil {
			wg.Done()
			r.logger.Error("Failed to submit warm-up job", "id", entityID, "error", err)
		}
	}

	wg.Wait()
}
