package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/recipenest/recipenest-go/internal/model"
	"github.com/recipenest/recipenest-go/internal/repository"
)

func newTestFavoriteService() *FavoriteService {
	return NewFavoriteService(
		repository.NewFavoriteRepository(nil),
		repository.NewRecipeRepository(nil),
		repository.NewUserRepository(nil),
	)
}

func newMockFavoriteService(t *testing.T) (*FavoriteService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewFavoriteService(
		repository.NewFavoriteRepository(db),
		repository.NewRecipeRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, mock
}

func recipeRows(recipeID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "recipe_id", "owner_id", "name", "description",
		"ingredients", "instructions", "image_url", "diet", "cooking_time", "created_at",
	}).AddRow(
		int64(1), recipeID, int64(2), "Dal Tadka", "Comfort food",
		[]byte(`["lentils"]`), []byte(`["boil"]`),
		"https://example.com/dal.jpg", "veg", 30, time.Now(),
	)
}

func testUserRows(id int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "auth_hash", "created_at", "updated_at"}).
		AddRow(id, "alice", "hash", now, now)
}

// expectSave queues the full statement sequence of one Save call: recipe
// lookup, user lookup, atomic append, then the ID list read.
func expectSave(mock sqlmock.Sqlmock, userID int64, recipeID string, rowsAffected int64, savedIDs []string) {
	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipes WHERE recipe_id = ?`)).
		WithArgs(recipeID).
		WillReturnRows(recipeRows(recipeID))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = ?`)).
		WithArgs(userID).
		WillReturnRows(testUserRows(userID))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT IGNORE INTO saved_recipes (user_id, recipe_id) VALUES (?, ?)`)).
		WithArgs(userID, recipeID).
		WillReturnResult(sqlmock.NewResult(0, rowsAffected))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = ?`)).
		WithArgs(userID).
		WillReturnRows(testUserRows(userID))

	idRows := sqlmock.NewRows([]string{"recipe_id"})
	for _, id := range savedIDs {
		idRows.AddRow(id)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT recipe_id FROM saved_recipes WHERE user_id = ? ORDER BY id ASC`)).
		WithArgs(userID).
		WillReturnRows(idRows)
}

func TestSave_EmptyRecipeID(t *testing.T) {
	svc := newTestFavoriteService()

	_, err := svc.Save(context.Background(), 1, model.SaveRecipeRequest{
		RecipeID: "",
	})

	if err != ErrRecipeIDRequired {
		t.Errorf("expected ErrRecipeIDRequired, got %v", err)
	}
}

func TestSave_SameRecipeTwiceKeepsSingleID(t *testing.T) {
	svc, mock := newMockFavoriteService(t)

	expectSave(mock, 1, "r-1", 1, []string{"r-1"})
	// Second save: the unique key absorbs the append and the list is unchanged.
	expectSave(mock, 1, "r-1", 0, []string{"r-1"})

	first, err := svc.Save(context.Background(), 1, model.SaveRecipeRequest{RecipeID: "r-1"})
	if err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if len(first.SavedRecipes) != 1 || first.SavedRecipes[0] != "r-1" {
		t.Errorf("SavedRecipes = %v, want [r-1]", first.SavedRecipes)
	}

	second, err := svc.Save(context.Background(), 1, model.SaveRecipeRequest{RecipeID: "r-1"})
	if err != nil {
		t.Fatalf("Save() unexpected error on duplicate save: %v", err)
	}
	if len(second.SavedRecipes) != 1 || second.SavedRecipes[0] != "r-1" {
		t.Errorf("SavedRecipes after duplicate save = %v, want [r-1]", second.SavedRecipes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSave_RecipeNotFound(t *testing.T) {
	svc, mock := newMockFavoriteService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipes WHERE recipe_id = ?`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "recipe_id", "owner_id", "name", "description",
			"ingredients", "instructions", "image_url", "diet", "cooking_time", "created_at",
		}))

	_, err := svc.Save(context.Background(), 1, model.SaveRecipeRequest{RecipeID: "missing"})

	if err != ErrRecipeNotFound {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFavoriteSentinelErrors(t *testing.T) {
	if ErrRecipeNotFound.Error() != "recipe not found" {
		t.Errorf("unexpected error message: %s", ErrRecipeNotFound.Error())
	}
	if ErrUserNotFound.Error() != "user not found" {
		t.Errorf("unexpected error message: %s", ErrUserNotFound.Error())
	}
}
