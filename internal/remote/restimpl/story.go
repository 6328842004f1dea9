package restimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pawtrail/pawtrail-core/internal/domain"
)

type storyItemDTO struct {
	ID        string    `json:"id"`
	MediaURL  string    `json:"mediaUrl"`
	MediaKind string    `json:"mediaKind"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
	Expired   bool      `json:"expired"`
	Viewed    bool      `json:"viewedByMe"`
}

type storyGroupDTO struct {
	OwnerID        int64          `json:"ownerId"`
	OwnerNickname  string         `json:"ownerNickname"`
	OwnerAvatarURL string         `json:"ownerAvatarUrl"`
	Items          []storyItemDTO `json:"items"`
}

type storyFeedDTO struct {
	Groups []storyGroupDTO `json:"groups"`
}

type storyViewerDTO struct {
	ViewerID  int64  `json:"viewerId"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
}

type editStoryDTO struct {
	MediaURL  string `json:"mediaUrl"`
	MediaKind string `json:"mediaKind"`
	Caption   string `json:"caption"`
}

func (d storyItemDTO) toDomain() domain.StoryItem {
	kind := domain.MediaKindImage
	if d.MediaKind == string(domain.MediaKindVideo) {
		kind = domain.MediaKindVideo
	}
	return domain.StoryItem{
		ID:        d.ID,
		MediaURL:  d.MediaURL,
		MediaKind: kind,
		Caption:   d.Caption,
		CreatedAt: d.CreatedAt,
		Expired:   d.Expired,
		Viewed:    d.Viewed,
	}
}

func (c *RestImpl) FetchStoryFeed(ctx context.Context) (domain.StoryFeed, error) {
	var out storyFeedDTO
	if err := c.call(ctx, "FetchStoryFeed", http.MethodGet, "/api/v1/stories/feed", nil, &out); err != nil {
		return nil, err
	}

	feed := make(domain.StoryFeed, 0, len(out.Groups))
	for _, g := range out.Groups {
		items := make([]domain.StoryItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, it.toDomain())
		}
		feed = append(feed, domain.StoryGroup{
			OwnerID:        g.OwnerID,
			OwnerNickname:  g.OwnerNickname,
			OwnerAvatarURL: g.OwnerAvatarURL,
			Items:          items,
		})
	}

	return feed, nil
}

func (c *RestImpl) MarkStoryViewed(ctx context.Context, itemID string) error {
	path := fmt.Sprintf("/api/v1/stories/%s/view", url.PathEscape(itemID))
	return c.call(ctx, "MarkStoryViewed", http.MethodPost, path, nil, nil)
}

func (c *RestImpl) FetchStoryViewers(ctx context.Context, itemID string) ([]domain.StoryViewer, error) {
	path := fmt.Sprintf("/api/v1/stories/%s/viewers", url.PathEscape(itemID))

	var out struct {
		Viewers []storyViewerDTO `json:"viewers"`
	}
	if err := c.call(ctx, "FetchStoryViewers", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	viewers := make([]domain.StoryViewer, 0, len(out.Viewers))
	for _, v := range out.Viewers {
		viewers = append(viewers, domain.StoryViewer{
			MemberID:  v.ViewerID,
			Nickname:  v.Nickname,
			AvatarURL: v.AvatarURL,
		})
	}

	return viewers, nil
}

func (c *RestImpl) EditStoryItem(ctx context.Context, itemID string, media domain.StoryMedia, caption string) error {
	path := fmt.Sprintf("/api/v1/stories/%s", url.PathEscape(itemID))
	body := editStoryDTO{
		MediaURL:  media.URL,
		MediaKind: string(media.Kind),
		Caption:   caption,
	}
	return c.call(ctx, "EditStoryItem", http.MethodPatch, path, body, nil)
}

func (c *RestImpl) DeleteStoryItem(ctx context.Context, itemID string) error {
	path := fmt.Sprintf("/api/v1/stories/%s", url.PathEscape(itemID))
	return c.call(ctx, "DeleteStoryItem", http.MethodDelete, path, nil, nil)
}
