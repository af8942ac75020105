package model

import "time"

// Diet tags accepted on recipe creation.
const (
	DietVeg    = "veg"
	DietNonVeg = "non-veg"
)

// Recipe represents a recipe in the database. Ingredients and instructions
// are stored as JSON arrays so their order survives the round trip.
type Recipe struct {
	ID           int64
	RecipeID     string
	OwnerID      int64
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
	ImageURL     string
	Diet         string
	CookingTime  int
	CreatedAt    time.Time
}

// CreateRecipeRequest represents a recipe creation request. The owner is
// taken from the authenticated identity, never from the body.
type CreateRecipeRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
	Diet         string   `json:"diet"`
	CookingTime  int      `json:"cookingTime"`
}

// RecipeResponse represents a recipe in API responses.
type RecipeResponse struct {
	RecipeID     string    `json:"recipeID"`
	OwnerID      int64     `json:"userOwner"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	ImageURL     string    `json:"imageUrl"`
	Diet         string    `json:"diet"`
	CookingTime  int       `json:"cookingTime"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SaveRecipeRequest represents a save-favorite request.
type SaveRecipeRequest struct {
	RecipeID string `json:"recipeID"`
}

// SavedRecipeIDsResponse carries the ordered list of a user's saved recipe IDs.
type SavedRecipeIDsResponse struct {
	SavedRecipes []string `json:"savedRecipes"`
}

// SavedRecipesResponse carries the resolved recipes a user has saved.
type SavedRecipesResponse struct {
	SavedRecipes []RecipeResponse `json:"savedRecipes"`
}
