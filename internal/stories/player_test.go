package stories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pawtrail/pawtrail-core/internal/domain"
	"github.com/pawtrail/pawtrail-core/pkg/config"
	"github.com/pawtrail/pawtrail-core/pkg/errors"
	"github.com/pawtrail/pawtrail-core/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	mu        sync.Mutex
	viewed    []string
	deleted   []string
	edited    []string
	editErr   error
	deleteErr error
	viewers   []domain.StoryViewer
}

func (f *fakeService) MarkStoryViewed(_ context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.viewed = append(f.viewed, itemID)
	return nil
}

func (f *fakeService) DeleteStoryItem(_ context.Context, itemID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, itemID)
	return nil
}

func (f *fakeService) EditStoryItem(_ context.Context, itemID string, _ domain.StoryMedia, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return f.editErr
	}
	f.edited = append(f.edited, itemID)
	return nil
}

func (f *fakeService) FetchStoryViewers(_ context.Context, _ string) ([]domain.StoryViewer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewers, nil
}

func (f *fakeService) FetchStoryFeed(context.Context) (domain.StoryFeed, error) {
	return nil, nil
}

func (f *fakeService) ToggleEntityLike(context.Context, domain.EntityKind, int64) (domain.LikeStatus, error) {
	return domain.LikeStatus{}, nil
}

func (f *fakeService) FetchEntityLikeDetails(context.Context, domain.EntityKind, int64) (domain.LikeDetails, error) {
	return domain.LikeDetails{}, nil
}

func (f *fakeService) CreateReply(context.Context, int64, string) (*domain.Reply, error) {
	return nil, nil
}

func (f *fakeService) UpdateReply(context.Context, int64, string) (*domain.Reply, error) {
	return nil, nil
}

func (f *fakeService) DeleteReply(context.Context, int64) error { return nil }

func (f *fakeService) ListReplies(context.Context, int64) ([]*domain.Reply, error) {
	return nil, nil
}

func (f *fakeService) viewedCount(itemID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range f.viewed {
		if id == itemID {
			n++
		}
	}
	return n
}

func (f *fakeService) viewedTotal() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.viewed)
}

func newTestPlayer(svc *fakeService, tickMs int) *PlayerImpl {
	cfg := &config.Config{}
	cfg.Stories.ItemDurationSeconds = 10
	cfg.Stories.TickIntervalMs = tickMs
	cfg.Session.MemberID = 7

	return New(Opts{
		Service: svc,
		Logger:  logger.NewNop(),
		Config:  cfg,
	})
}

func group(ownerID int64, itemIDs ...string) domain.StoryGroup {
	g := domain.StoryGroup{OwnerID: ownerID, OwnerNickname: "owner"}
	for _, id := range itemIDs {
		g.Items = append(g.Items, domain.StoryItem{
			ID:        id,
			MediaURL:  "https://cdn.example/" + id + ".jpg",
			MediaKind: domain.MediaKindImage,
		})
	}
	return g
}

func TestOpenValidation(t *testing.T) {
	tests := []struct {
		name       string
		feed       domain.StoryFeed
		startGroup int
		wantOpen   bool
	}{
		{name: "empty feed", feed: nil, startGroup: 0, wantOpen: false},
		{name: "negative index", feed: domain.StoryFeed{group(1, "a1")}, startGroup: -1, wantOpen: false},
		{name: "index past end", feed: domain.StoryFeed{group(1, "a1")}, startGroup: 1, wantOpen: false},
		{name: "valid start", feed: domain.StoryFeed{group(1, "a1"), group(2, "b1")}, startGroup: 1, wantOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := newTestPlayer(&fakeService{}, 0)
			err := player.Open(tt.feed, tt.startGroup)

			if !tt.wantOpen {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidInput(err))
				assert.False(t, player.IsOpen())
				return
			}

			require.NoError(t, err)
			require.True(t, player.IsOpen())
			cursor, ok := player.Cursor()
			require.True(t, ok)
			assert.Equal(t, Cursor{Group: tt.startGroup, Item: 0, Elapsed: 0}, cursor)
		})
	}
}

func TestAdvanceWalksEveryItemThenCloses(t *testing.T) {
	feed := domain.StoryFeed{group(1, "a1", "a2"), group(2, "b1", "b2", "b3")}
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(feed, 0))

	total := feed.TotalItems()
	for i := 0; i < total-1; i++ {
		player.Advance()
		require.True(t, player.IsOpen(), "viewer closed after %d advances", i+1)
	}

	player.Advance()
	assert.False(t, player.IsOpen())
}

func TestRetreatFromFirstItemCloses(t *testing.T) {
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(1, "a1", "a2")}, 0))

	player.Retreat()
	assert.False(t, player.IsOpen())
}

func TestRetreatCrossesGroupBoundary(t *testing.T) {
	feed := domain.StoryFeed{group(1, "a1", "a2", "a3"), group(2, "b1")}
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(feed, 1))

	player.Retreat()

	require.True(t, player.IsOpen())
	cursor, _ := player.Cursor()
	assert.Equal(t, Cursor{Group: 0, Item: 2, Elapsed: 0}, cursor)
}

func TestTickAccumulatesAgainstItemDuration(t *testing.T) {
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(1, "a1", "a2")}, 0))

	player.Tick(1.0)
	cursor, _ := player.Cursor()
	assert.Equal(t, 0, cursor.Item)
	assert.InDelta(t, 0.1, cursor.Elapsed, 1e-9)

	for i := 0; i < 9; i++ {
		player.Tick(1.0)
	}
	cursor, _ = player.Cursor()
	assert.Equal(t, 1, cursor.Item, "ten full seconds should advance exactly once")
	assert.Zero(t, cursor.Elapsed)
}

func TestTickFractionalDeltasAdvanceExactlyOnce(t *testing.T) {
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(1, "a1", "a2")}, 0))

	// 0.1 is not exactly representable; a hundred of them sum to just
	// under ten seconds in floats. The item must still advance at the
	// ten second mark, and only then.
	for i := 0; i < 99; i++ {
		player.Tick(0.1)
	}
	cursor, _ := player.Cursor()
	assert.Equal(t, 0, cursor.Item)

	player.Tick(0.1)
	cursor, _ = player.Cursor()
	assert.Equal(t, 1, cursor.Item)
	assert.Zero(t, cursor.Elapsed)
}

func TestReopenDiscardsElapsedProgress(t *testing.T) {
	feed := domain.StoryFeed{group(1, "a1", "a2")}
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(feed, 0))

	for i := 0; i < 5; i++ {
		player.Tick(1.0)
	}
	player.Close()
	require.False(t, player.IsOpen())

	require.NoError(t, player.Open(feed, 0))
	cursor, _ := player.Cursor()
	assert.Zero(t, cursor.Elapsed)

	player.Tick(1.0)
	cursor, _ = player.Cursor()
	assert.Equal(t, 0, cursor.Item)
	assert.InDelta(t, 0.1, cursor.Elapsed, 1e-9)
}

func TestFullWalkthrough(t *testing.T) {
	feed := domain.StoryFeed{
		group(1, "img1", "img2"),
		{
			OwnerID: 2,
			Items: []domain.StoryItem{
				{ID: "vid1", MediaKind: domain.MediaKindVideo},
			},
		},
	}
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(feed, 0))

	player.Advance()
	cursor, _ := player.Cursor()
	assert.Equal(t, Cursor{Group: 0, Item: 1}, cursor)

	player.Advance()
	cursor, _ = player.Cursor()
	assert.Equal(t, Cursor{Group: 1, Item: 0}, cursor)

	player.Advance()
	assert.False(t, player.IsOpen())
}

func TestMarkViewedAtMostOncePerSession(t *testing.T) {
	svc := &fakeService{}
	feed := domain.StoryFeed{group(1, "a1", "a2")}
	player := newTestPlayer(svc, 0)
	require.NoError(t, player.Open(feed, 0))

	player.Advance()
	player.Retreat() // revisit a1 within the same session

	require.Eventually(t, func() bool {
		return svc.viewedTotal() == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, svc.viewedCount("a1"))
	assert.Equal(t, 1, svc.viewedCount("a2"))

	// A new session starts a fresh visited set.
	player.Close()
	require.NoError(t, player.Open(feed, 0))
	require.Eventually(t, func() bool {
		return svc.viewedCount("a1") == 2
	}, time.Second, 5*time.Millisecond)
}

func TestCurrentItemMarkedViewedLocally(t *testing.T) {
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(1, "a1")}, 0))

	item, ok := player.Current()
	require.True(t, ok)
	assert.True(t, item.Viewed)
}

func TestVideoDurationOverride(t *testing.T) {
	feed := domain.StoryFeed{
		{
			OwnerID: 1,
			Items: []domain.StoryItem{
				{ID: "vid1", MediaKind: domain.MediaKindVideo},
				{ID: "img1", MediaKind: domain.MediaKindImage},
			},
		},
	}
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(feed, 0))

	player.ReportMediaDuration("vid1", 5*time.Second)
	for i := 0; i < 5; i++ {
		player.Tick(1.0)
	}
	cursor, _ := player.Cursor()
	assert.Equal(t, 1, cursor.Item, "five seconds should finish a five second video")

	// Reports for an image, or for an item that is not current, are ignored.
	player.ReportMediaDuration("img1", time.Second)
	player.ReportMediaDuration("vid1", time.Second)
	player.Tick(1.0)
	cursor, _ = player.Cursor()
	assert.Equal(t, 1, cursor.Item)
	assert.InDelta(t, 0.1, cursor.Elapsed, 1e-9)
}

func TestAutoAdvanceTickerStopsOnClose(t *testing.T) {
	svc := &fakeService{}
	feed := domain.StoryFeed{
		{
			OwnerID: 1,
			Items: []domain.StoryItem{
				{ID: "vid1", MediaKind: domain.MediaKindVideo},
				{ID: "img1", MediaKind: domain.MediaKindImage},
			},
		},
	}
	player := newTestPlayer(svc, 10)
	require.NoError(t, player.Open(feed, 0))

	// Shrink the current video so the internal ticker crosses it quickly.
	player.ReportMediaDuration("vid1", 30*time.Millisecond)
	require.Eventually(t, func() bool {
		cursor, ok := player.Cursor()
		return ok && cursor.Item == 1
	}, time.Second, 5*time.Millisecond)

	player.Close()
	require.False(t, player.IsOpen())

	marks := svc.viewedTotal()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, marks, svc.viewedTotal(), "no timer effect may land after close")
	assert.False(t, player.IsOpen())
}

func TestEditCurrentItemRequiresOwnership(t *testing.T) {
	svc := &fakeService{}
	player := newTestPlayer(svc, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(99, "x1")}, 0))

	err := player.EditCurrentItem(context.Background(), domain.StoryMedia{URL: "u"}, "c")
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, svc.edited)

	err = player.DeleteCurrentItem(context.Background())
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, svc.deleted)
}

func TestEditCurrentItemReplacesMediaInPlace(t *testing.T) {
	svc := &fakeService{}
	player := newTestPlayer(svc, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(7, "m1", "m2")}, 0))
	player.Tick(3.0)

	media := domain.StoryMedia{URL: "https://cdn.example/new.mp4", Kind: domain.MediaKindVideo}
	require.NoError(t, player.EditCurrentItem(context.Background(), media, "new caption"))

	item, _ := player.Current()
	assert.Equal(t, "m1", item.ID, "cursor stays on the edited item")
	assert.Equal(t, media.URL, item.MediaURL)
	assert.Equal(t, media.Kind, item.MediaKind)
	assert.Equal(t, "new caption", item.Caption)

	cursor, _ := player.Cursor()
	assert.Zero(t, cursor.Elapsed, "replaced media plays from the start")
	assert.Equal(t, []string{"m1"}, svc.edited)
}

func TestEditFailureLeavesItemUntouched(t *testing.T) {
	svc := &fakeService{editErr: context.DeadlineExceeded}
	player := newTestPlayer(svc, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(7, "m1")}, 0))

	err := player.EditCurrentItem(context.Background(), domain.StoryMedia{URL: "u"}, "c")
	require.Error(t, err)

	item, _ := player.Current()
	assert.Empty(t, item.Caption)
	assert.NotEqual(t, "u", item.MediaURL)
}

func TestDeleteCurrentItemAdvances(t *testing.T) {
	svc := &fakeService{}
	feed := domain.StoryFeed{group(7, "a1", "a2"), group(9, "b1")}
	player := newTestPlayer(svc, 0)
	require.NoError(t, player.Open(feed, 0))

	require.NoError(t, player.DeleteCurrentItem(context.Background()))
	item, _ := player.Current()
	assert.Equal(t, "a2", item.ID)

	// Deleting the last item of the group skips to the next group.
	require.NoError(t, player.DeleteCurrentItem(context.Background()))
	item, _ = player.Current()
	assert.Equal(t, "b1", item.ID)
	assert.Equal(t, []string{"a1", "a2"}, svc.deleted)
}

func TestDeleteLastItemOfFeedCloses(t *testing.T) {
	player := newTestPlayer(&fakeService{}, 0)
	require.NoError(t, player.Open(domain.StoryFeed{group(7, "only")}, 0))

	require.NoError(t, player.DeleteCurrentItem(context.Background()))
	assert.False(t, player.IsOpen())
}

func TestViewersIsPullThrough(t *testing.T) {
	svc := &fakeService{viewers: []domain.StoryViewer{{MemberID: 3, Nickname: "miko"}}}
	player := newTestPlayer(svc, 0)

	// Works even with the viewer closed: nothing is cached on the player.
	viewers, err := player.Viewers(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, viewers, 1)
	assert.Equal(t, int64(3), viewers[0].MemberID)
}
