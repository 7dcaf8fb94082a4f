// Package view holds the public projections of domain entities. Each
// projection is a pure function of (entity, viewerID) so the ownership flag
// is computed the same way on every surface that renders the kind.
package view

import (
	"time"

	"recipebook/internal/entity"
)

type RecipeView struct {
	ID            string    `json:"id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Ingredients   string    `json:"ingredients"`
	Instructions  string    `json:"instructions"`
	ImageURL      string    `json:"image_url,omitempty"`
	CategoryID    *string   `json:"category"`
	CategoryName  string    `json:"category_name"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	IsAuthor      bool      `json:"is_author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func Recipe(r *entity.Recipe, viewerID string) RecipeView {
	return RecipeView{
		ID:            r.ID,
		Author:        r.AuthorName,
		Title:         r.Title,
		Description:   r.Description,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		ImageURL:      r.ImageURL,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		LikesCount:    r.LikesCount,
		CommentsCount: r.CommentsCount,
		IsAuthor:      viewerID != "" && r.AuthorID == viewerID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type CommentView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Recipe    string    `json:"recipe"`
	Content   string    `json:"content"`
	IsAuthor  bool      `json:"is_author"`
	CreatedAt time.Time `json:"created_at"`
}

func Comment(c *entity.Comment, viewerID string) CommentView {
	return CommentView{
		ID:        c.ID,
		Author:    c.AuthorName,
		Recipe:    c.RecipeID,
		Content:   c.Content,
		IsAuthor:  viewerID != "" && c.AuthorID == viewerID,
		CreatedAt: c.CreatedAt,
	}
}

type LikeView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Recipe    string    `json:"recipe"`
	CreatedAt time.Time `json:"created_at"`
}

func Like(l *entity.Like) LikeView {
	return LikeView{
		ID:        l.ID,
		Author:    l.UserName,
		Recipe:    l.RecipeID,
		CreatedAt: l.CreatedAt,
	}
}

type FollowView struct {
	ID            string    `json:"id"`
	Follower      string    `json:"follower"`
	FollowerName  string    `json:"follower_name"`
	Following     string    `json:"following"`
	FollowingName string    `json:"following_name"`
	CreatedAt     time.Time `json:"created_at"`
}

func Follow(f *entity.Follow) FollowView {
	return FollowView{
		ID:            f.ID,
		Follower:      f.FollowerID,
		FollowerName:  f.FollowerName,
		Following:     f.FollowingID,
		FollowingName: f.FollowingName,
		CreatedAt:     f.CreatedAt,
	}
}

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func User(u *entity.User) UserView {
	return UserView{ID: u.ID, Username: u.Username}
}

// FeedItem is one entry of the aggregated feed: the kind tag, the activity
// timestamp used for ranking, and the kind's public view.
type FeedItem struct {
	Type      string      `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
	Data      interface{} `json:"data"`
}
