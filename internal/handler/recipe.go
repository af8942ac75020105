package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/recipenest/recipenest-go/internal/middleware"
	"github.com/recipenest/recipenest-go/internal/model"
	"github.com/recipenest/recipenest-go/internal/service"
)

// RecipeHandler handles HTTP requests for the recipe catalog and a user's
// saved recipes.
type RecipeHandler struct {
	recipes   *service.RecipeService
	favorites *service.FavoriteService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService, favorites *service.FavoriteService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, favorites: favorites}
}

// HandleListRecipes handles GET /recipes requests. The catalog is public.
func (h *RecipeHandler) HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if recipes == nil {
		recipes = []model.RecipeResponse{}
	}

	writeJSON(w, http.StatusOK, recipes)
}

// HandleCreateRecipe handles POST /recipes requests. The owner is the
// authenticated user.
func (h *RecipeHandler) HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.recipes.Create(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrInvalidDiet),
			errors.Is(err, service.ErrInvalidCookingTime):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleSaveRecipe handles PUT /recipes requests: it appends a recipe to the
// authenticated user's saved list and returns the updated ID list.
func (h *RecipeHandler) HandleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SaveRecipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.favorites.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeIDRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSavedRecipes handles GET /recipes/myRecipes/{userID} requests: the
// user's saved recipes resolved to full documents. Public, as in the
// original application.
func (h *RecipeHandler) HandleSavedRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.favorites.ListRecipes(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSavedRecipeIDs handles GET /recipes/savedRecipes/ids/{userID} requests.
func (h *RecipeHandler) HandleSavedRecipeIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.favorites.ListIDs(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUserRecipes handles GET /recipes/userRecipes/{userID} requests: the
// recipes a user has created. An unknown user yields an empty array.
func (h *RecipeHandler) HandleUserRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	recipes, err := h.recipes.ListByOwner(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if recipes == nil {
		recipes = []model.RecipeResponse{}
	}

	writeJSON(w, http.StatusOK, recipes)
}

// userIDParam parses the {userID} URL parameter, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid user id"))
		return 0, false
	}
	return userID, true
}
