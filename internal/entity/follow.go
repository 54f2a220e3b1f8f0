package entity

import "time"

// Follow is one directed edge of the follow graph: the follower sees the
// followee's posts in their feed.
type Follow struct {
	ID         string    `json:"id"`
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
