package entity

import "time"

type Like struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
