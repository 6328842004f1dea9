package domain

// EntityKind tags which backend resource a like operation targets.
type EntityKind string

const (
	EntityKindPost    EntityKind = "post"
	EntityKindComment EntityKind = "comment"
	EntityKindReply   EntityKind = "reply"
)

type Member struct {
	ID        int64
	Nickname  string
	AvatarURL string
}

// LikeStatus is the authoritative pair returned by a like toggle.
type LikeStatus struct {
	Liked bool
	Count int
}

// LikeDetails is the full like state fetched for one entity.
type LikeDetails struct {
	Count   int
	Members []Member
}

// LikeState is the cached like state for one entity. Members stays nil until
// the member list has been fetched at least once; Count and Members may
// diverge transiently when only one of the two was refreshed.
type LikeState struct {
	Liked   bool
	Count   int
	Members []Member
}
