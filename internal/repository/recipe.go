package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/recipenest/recipenest-go/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

const recipeColumns = `id, recipe_id, owner_id, name, description, ingredients, instructions, image_url, diet, cooking_time, created_at`

// RecipeRepository handles recipe persistence operations. Recipes are
// immutable after creation; there are no update or delete queries.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a new recipe and sets the generated row ID on the struct.
// Ingredient and instruction lists are stored as JSON arrays to keep their order.
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return err
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return err
	}

	query := `INSERT INTO recipes (recipe_id, owner_id, name, description, ingredients, instructions, image_url, diet, cooking_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		recipe.RecipeID,
		recipe.OwnerID,
		recipe.Name,
		recipe.Description,
		ingredients,
		instructions,
		recipe.ImageURL,
		recipe.Diet,
		recipe.CookingTime,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	recipe.ID = id
	return nil
}

// GetByRecipeID retrieves a recipe by its public identifier.
func (r *RecipeRepository) GetByRecipeID(ctx context.Context, recipeID string) (*model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE recipe_id = ?`

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, recipeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	return recipe, nil
}

// ListAll retrieves every recipe in the catalog, newest first.
func (r *RecipeRepository) ListAll(ctx context.Context) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY id DESC`
	return r.queryRecipes(ctx, query)
}

// ListByOwner retrieves all recipes created by the given user, newest first.
func (r *RecipeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE owner_id = ? ORDER BY id DESC`
	return r.queryRecipes(ctx, query, ownerID)
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*model.Recipe, error) {
	var (
		recipe       model.Recipe
		ingredients  []byte
		instructions []byte
	)

	err := row.Scan(
		&recipe.ID, &recipe.RecipeID, &recipe.OwnerID, &recipe.Name,
		&recipe.Description, &ingredients, &instructions, &recipe.ImageURL,
		&recipe.Diet, &recipe.CookingTime, &recipe.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(instructions, &recipe.Instructions); err != nil {
		return nil, err
	}

	return &recipe, nil
}
