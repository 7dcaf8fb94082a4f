package entity

import "time"

type Comment struct {
	ID         string    `json:"id"`
	RecipeID   string    `json:"recipe_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
