package models

// Recipe lifecycle operations published as events.
const (
	RecipeCreated = "created"
	RecipeUpdated = "updated"
	RecipeDeleted = "deleted"
)

// RecipeEvent describes a change to a recipe, including the acting user and operation type.
type RecipeEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the change happened.
	RecipeID  int64  `json:"recipe_id"` // RecipeID is the recipe that changed.
	UserID    int64  `json:"user_id"`   // UserID is the owner who made the change.
	Operation string `json:"operation"` // Operation is one of "created", "updated" or "deleted".
}
