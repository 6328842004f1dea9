package domain

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// StoryItem is a single ephemeral media post inside an owner's story reel.
type StoryItem struct {
	ID        string
	MediaURL  string
	MediaKind MediaKind
	Caption   string
	CreatedAt time.Time
	Expired   bool
	Viewed    bool
}

// StoryGroup holds one owner's story items in creation order, oldest first.
type StoryGroup struct {
	OwnerID        int64
	OwnerNickname  string
	OwnerAvatarURL string
	Items          []StoryItem
}

// StoryFeed is the server-ordered sequence of story groups shown in the tray.
type StoryFeed []StoryGroup

// TotalItems counts the story items across every group of the feed.
func (f StoryFeed) TotalItems() int {
	total := 0
	for _, g := range f {
		total += len(g.Items)
	}
	return total
}

// StoryMedia is the replacement payload for editing a story item.
type StoryMedia struct {
	URL  string
	Kind MediaKind
}

type StoryViewer struct {
	MemberID  int64
	Nickname  string
	AvatarURL string
}
