package entity

const (
	FeedKindRecipe  = "recipe"
	FeedKindLike    = "like"
	FeedKindComment = "comment"
	FeedKindFollow  = "follow"
)

// ToggleResult reports which side of a toggle ran. Handlers render different
// status codes for the two outcomes.
type ToggleResult int

const (
	ToggleCreated ToggleResult = iota
	ToggleRemoved
)
