package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

const insertSavedRecipe = `INSERT IGNORE INTO saved_recipes (user_id, recipe_id) VALUES (?, ?)`

func newMockFavoriteRepository(t *testing.T) (*FavoriteRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewFavoriteRepository(db), mock
}

func TestFavoriteAdd_AppendIfAbsent(t *testing.T) {
	repo, mock := newMockFavoriteRepository(t)

	insert := regexp.QuoteMeta(insertSavedRecipe)
	mock.ExpectExec(insert).WithArgs(int64(1), "r-1").WillReturnResult(sqlmock.NewResult(1, 1))
	// The second save of the same recipe hits the unique (user_id, recipe_id)
	// key: INSERT IGNORE affects no rows and reports no error.
	mock.ExpectExec(insert).WithArgs(int64(1), "r-1").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Add(context.Background(), 1, "r-1"); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}
	if err := repo.Add(context.Background(), 1, "r-1"); err != nil {
		t.Fatalf("Add() unexpected error on duplicate save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFavoriteListIDs_InsertionOrder(t *testing.T) {
	repo, mock := newMockFavoriteRepository(t)

	query := regexp.QuoteMeta(`SELECT recipe_id FROM saved_recipes WHERE user_id = ? ORDER BY id ASC`)
	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow("r-1").AddRow("r-2"))

	ids, err := repo.ListIDs(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListIDs() unexpected error: %v", err)
	}

	if len(ids) != 2 || ids[0] != "r-1" || ids[1] != "r-2" {
		t.Errorf("ListIDs() = %v, want [r-1 r-2]", ids)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFavoriteListRecipes_OmitsDanglingReferences(t *testing.T) {
	repo, mock := newMockFavoriteRepository(t)

	// The user has two saved IDs but one recipe was removed from the catalog
	// out-of-band, so the join resolves only the surviving row. The dangling
	// ID is dropped without an error.
	rows := sqlmock.NewRows([]string{
		"id", "recipe_id", "owner_id", "name", "description",
		"ingredients", "instructions", "image_url", "diet", "cooking_time", "created_at",
	}).AddRow(
		int64(1), "r-1", int64(2), "Dal Tadka", "Comfort food",
		[]byte(`["lentils","ghee"]`), []byte(`["boil","temper"]`),
		"https://example.com/dal.jpg", "veg", 30, time.Now(),
	)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM saved_recipes s JOIN recipes r`)).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	recipes, err := repo.ListRecipes(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRecipes() unexpected error: %v", err)
	}

	if len(recipes) != 1 {
		t.Fatalf("ListRecipes() returned %d recipes, want 1", len(recipes))
	}
	if recipes[0].RecipeID != "r-1" {
		t.Errorf("RecipeID = %q, want %q", recipes[0].RecipeID, "r-1")
	}
	if len(recipes[0].Ingredients) != 2 || recipes[0].Ingredients[0] != "lentils" {
		t.Errorf("Ingredients = %v, want [lentils ghee]", recipes[0].Ingredients)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
