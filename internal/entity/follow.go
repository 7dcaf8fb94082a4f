package entity

import "time"

// Follow is a directed edge: FollowerID receives FollowingID's activity.
type Follow struct {
	ID            string    `json:"id"`
	FollowerID    string    `json:"follower_id"`
	FollowerName  string    `json:"follower_name"`
	FollowingID   string    `json:"following_id"`
	FollowingName string    `json:"following_name"`
	CreatedAt     time.Time `json:"created_at"`
}
