package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/recipenest/recipenest-go/internal/model"
	"github.com/recipenest/recipenest-go/internal/repository"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidDiet        = errors.New("diet must be veg or non-veg")
	ErrInvalidCookingTime = errors.New("cooking time must not be negative")
)

// RecipeService handles the recipe catalog.
type RecipeService struct {
	repo *repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo *repository.RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// Create validates and persists a new recipe owned by the authenticated user.
// The public recipe ID is assigned here.
func (s *RecipeService) Create(ctx context.Context, ownerID int64, req model.CreateRecipeRequest) (model.RecipeResponse, error) {
	if req.Name == "" {
		return model.RecipeResponse{}, ErrNameRequired
	}
	if req.Diet != model.DietVeg && req.Diet != model.DietNonVeg {
		return model.RecipeResponse{}, ErrInvalidDiet
	}
	if req.CookingTime < 0 {
		return model.RecipeResponse{}, ErrInvalidCookingTime
	}

	recipe := model.Recipe{
		RecipeID:     uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		Diet:         req.Diet,
		CookingTime:  req.CookingTime,
	}

	if err := s.repo.Create(ctx, &recipe); err != nil {
		return model.RecipeResponse{}, err
	}
	recipe.CreatedAt = time.Now().UTC()

	return recipeToResponse(recipe), nil
}

// ListAll returns the whole catalog. The catalog is public.
func (s *RecipeService) ListAll(ctx context.Context) ([]model.RecipeResponse, error) {
	recipes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return recipesToResponse(recipes), nil
}

// ListByOwner returns the recipes created by the given user. An unknown
// owner yields an empty list, not an error.
func (s *RecipeService) ListByOwner(ctx context.Context, ownerID int64) ([]model.RecipeResponse, error) {
	recipes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return recipesToResponse(recipes), nil
}

// recipeToResponse converts a Recipe to its API representation. Ingredient
// and instruction lists are never null in responses.
func recipeToResponse(r model.Recipe) model.RecipeResponse {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	instructions := r.Instructions
	if instructions == nil {
		instructions = []string{}
	}

	return model.RecipeResponse{
		RecipeID:     r.RecipeID,
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		Description:  r.Description,
		Ingredients:  ingredients,
		Instructions: instructions,
		ImageURL:     r.ImageURL,
		Diet:         r.Diet,
		CookingTime:  r.CookingTime,
		CreatedAt:    r.CreatedAt,
	}
}

// recipesToResponse converts a slice of Recipe to a slice of RecipeResponse.
func recipesToResponse(recipes []model.Recipe) []model.RecipeResponse {
	result := make([]model.RecipeResponse, len(recipes))
	for i, r := range recipes {
		result[i] = recipeToResponse(r)
	}
	return result
}
