package recipe

import (
	"Tastebook-Backend/domain"
	"Tastebook-Backend/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		Create(ctx context.Context, recipe *entities.Recipe) error
		GetByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		Update(ctx context.Context, id string, updates map[string]interface{}) (*entities.Recipe, error)
		Delete(ctx context.Context, id string) error
		GetOwnerID(ctx context.Context, recipeID string) (string, error)
		Search(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update applies a partial column update. user_id is never part of the update
// map; ownership is fixed at creation.
func (r *recipeRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*entities.Recipe, error) {
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetOwnerID(ctx context.Context, recipeID string) (string, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Select("id", "user_id").
		Where("id = ?", recipeID).
		First(&recipe).Error; err != nil {
		return "", err
	}
	return recipe.UserID.String(), nil
}

// Search performs a case-insensitive substring match across title, description
// and ingredients, AND-combined with the optional filters.
func (r *recipeRepository) Search(ctx context.Context, query string, filters domain.RecipeSearchFilters) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	pattern := "%" + strings.ToLower(query) + "%"

	q := r.db.WithContext(ctx).
		Preload("User").
		Where(
			"(LOWER(title) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ? OR LOWER(ingredients) LIKE ?)",
			pattern, pattern, pattern,
		)

	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.Difficulty != "" {
		q = q.Where("difficulty = ?", filters.Difficulty)
	}
	if filters.MaxCookingTime > 0 {
		q = q.Where("cooking_time <= ?", filters.MaxCookingTime)
	}

	if err := q.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
