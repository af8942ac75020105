package repository

import (
	"context"
	"database/sql"

	"github.com/recipenest/recipenest-go/internal/model"
)

// FavoriteRepository handles the saved-recipes relation between users and
// recipes. The relation is a join table with a unique (user_id, recipe_id)
// key; appends are a single INSERT IGNORE, so concurrent saves for the same
// user cannot lose updates and saving the same recipe twice is a no-op.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add appends a recipe to the user's saved list if it is not already there.
// The append is atomic at the store layer; no read-modify-write.
func (r *FavoriteRepository) Add(ctx context.Context, userID int64, recipeID string) error {
	query := `INSERT IGNORE INTO saved_recipes (user_id, recipe_id) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, userID, recipeID)
	return err
}

// ListIDs retrieves the user's saved recipe IDs in insertion order. IDs of
// recipes deleted out-of-band are still returned here; only the resolving
// read filters them out.
func (r *FavoriteRepository) ListIDs(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT recipe_id FROM saved_recipes WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListRecipes resolves the user's saved recipes in insertion order. The join
// silently drops dangling references, so a recipe removed from the catalog
// disappears from the list instead of failing it.
func (r *FavoriteRepository) ListRecipes(ctx context.Context, userID int64) ([]model.Recipe, error) {
	query := `SELECT r.id, r.recipe_id, r.owner_id, r.name, r.description, r.ingredients, r.instructions, r.image_url, r.diet, r.cooking_time, r.created_at
		FROM saved_recipes s
		JOIN recipes r ON r.recipe_id = s.recipe_id
		WHERE s.user_id = ?
		ORDER BY s.id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}
