package domain

import "time"

// Reply is a comment-on-comment. The id space is global; ParentCommentID is
// the grouping key used by the reply index.
type Reply struct {
	ID              int64
	ParentCommentID int64
	Content         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Author          Member
	Like            LikeState
}
