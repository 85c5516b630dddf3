package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessSearchRecipes    = "success search recipes"
	MessageSuccessUploadImage      = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	CreateRecipeRequest struct {
		Title        string  `json:"title" validate:"required"`
		Description  *string `json:"description"`
		Ingredients  string  `json:"ingredients" validate:"required"`
		CookingTime  *int    `json:"cooking_time" validate:"omitempty,gt=0"`
		Difficulty   string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Category     *string `json:"category"`
		Instructions string  `json:"instructions" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Title        *string `json:"title" validate:"omitempty,min=1"`
		Description  *string `json:"description"`
		Ingredients  *string `json:"ingredients" validate:"omitempty,min=1"`
		CookingTime  *int    `json:"cooking_time" validate:"omitempty,gt=0"`
		Difficulty   *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Category     *string `json:"category"`
		Instructions *string `json:"instructions" validate:"omitempty,min=1"`
	}

	RecipeOwner struct {
		Username *string `json:"username"`
		FullName *string `json:"full_name"`
	}

	RecipeResponse struct {
		ID           string       `json:"id"`
		CreatedAt    time.Time    `json:"created_at"`
		UserID       string       `json:"user_id"`
		Title        string       `json:"title"`
		Description  *string      `json:"description"`
		Ingredients  string       `json:"ingredients"`
		CookingTime  *int         `json:"cooking_time"`
		Difficulty   string       `json:"difficulty"`
		Category     *string      `json:"category"`
		Instructions string       `json:"instructions"`
		ImageURL     *string      `json:"image_url,omitempty"`
		Owner        *RecipeOwner `json:"owner,omitempty"`
	}

	RecipeSearchFilters struct {
		Category       string
		Difficulty     string
		MaxCookingTime int
	}
)
