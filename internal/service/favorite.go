package service

import (
	"context"
	"errors"

	"github.com/recipenest/recipenest-go/internal/model"
	"github.com/recipenest/recipenest-go/internal/repository"
)

var (
	ErrRecipeIDRequired = errors.New("recipeID is required")
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrUserNotFound     = errors.New("user not found")
)

// FavoriteService handles a user's saved recipes.
type FavoriteService struct {
	favorites *repository.FavoriteRepository
	recipes   *repository.RecipeRepository
	users     *repository.UserRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(favorites *repository.FavoriteRepository, recipes *repository.RecipeRepository, users *repository.UserRepository) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		recipes:   recipes,
		users:     users,
	}
}

// Save appends a recipe to the authenticated user's saved list and returns
// the updated ordered ID list. Both the user and the recipe must exist.
// Saving an already-saved recipe is a no-op.
func (s *FavoriteService) Save(ctx context.Context, userID int64, req model.SaveRecipeRequest) (model.SavedRecipeIDsResponse, error) {
	if req.RecipeID == "" {
		return model.SavedRecipeIDsResponse{}, ErrRecipeIDRequired
	}

	if _, err := s.recipes.GetByRecipeID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return model.SavedRecipeIDsResponse{}, ErrRecipeNotFound
		}
		return model.SavedRecipeIDsResponse{}, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SavedRecipeIDsResponse{}, ErrUserNotFound
		}
		return model.SavedRecipeIDsResponse{}, err
	}

	if err := s.favorites.Add(ctx, userID, req.RecipeID); err != nil {
		return model.SavedRecipeIDsResponse{}, err
	}

	return s.ListIDs(ctx, userID)
}

// ListIDs returns the user's saved recipe IDs in insertion order.
func (s *FavoriteService) ListIDs(ctx context.Context, userID int64) (model.SavedRecipeIDsResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SavedRecipeIDsResponse{}, ErrUserNotFound
		}
		return model.SavedRecipeIDsResponse{}, err
	}

	ids, err := s.favorites.ListIDs(ctx, userID)
	if err != nil {
		return model.SavedRecipeIDsResponse{}, err
	}
	if ids == nil {
		ids = []string{}
	}

	return model.SavedRecipeIDsResponse{SavedRecipes: ids}, nil
}

// ListRecipes resolves the user's saved recipes in insertion order. A saved
// ID whose recipe no longer exists is omitted from the result.
func (s *FavoriteService) ListRecipes(ctx context.Context, userID int64) (model.SavedRecipesResponse, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.SavedRecipesResponse{}, ErrUserNotFound
		}
		return model.SavedRecipesResponse{}, err
	}

	recipes, err := s.favorites.ListRecipes(ctx, userID)
	if err != nil {
		return model.SavedRecipesResponse{}, err
	}

	return model.SavedRecipesResponse{SavedRecipes: recipesToResponse(recipes)}, nil
}
