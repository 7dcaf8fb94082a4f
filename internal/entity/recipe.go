package entity

import "time"

// Recipe is the core authored entity. AuthorName, CategoryName, LikesCount and
// CommentsCount are read-model fields populated by the repository on fetch;
// they are never written back.
type Recipe struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	ImageURL     string    `json:"image_url,omitempty"`
	CategoryID   *string   `json:"category_id"`
	CategoryName string    `json:"category_name"`
	LikesCount   int64     `json:"likes_count"`
	CommentsCount int64    `json:"comments_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
