package social

import (
	"Tastebook-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SocialRepository interface {
		GetRecipeComments(ctx context.Context, recipeID string) ([]entities.CommentWithUser, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		UpdateComment(ctx context.Context, id string, content string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id string) error

		GetRecipeLikes(ctx context.Context, recipeID string) ([]entities.Like, error)
		LikeRecipe(ctx context.Context, like *entities.Like) error
		UnlikeRecipe(ctx context.Context, userID, recipeID string) error
		GetRecipeLikeCount(ctx context.Context, recipeID string) (int64, error)
		GetRecipeCommentCount(ctx context.Context, recipeID string) (int64, error)
		HasUserLikedRecipe(ctx context.Context, userID, recipeID string) (bool, error)

		GetRecipeStats(ctx context.Context, recipeID string) (*entities.RecipeStats, error)
		GetRecipesWithStats(ctx context.Context, limit, offset int) ([]entities.RecipeStats, error)
		GetStatsForRecipes(ctx context.Context, recipeIDs []string) ([]entities.RecipeStats, error)
		GetUserLikedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
	}

	socialRepository struct {
		db *gorm.DB
	}
)

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) GetRecipeComments(ctx context.Context, recipeID string) ([]entities.CommentWithUser, error) {
	var comments []entities.CommentWithUser
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *socialRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *socialRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *socialRepository) UpdateComment(ctx context.Context, id string, content string) (*entities.Comment, error) {
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return nil, err
	}
	return r.GetCommentByID(ctx, id)
}

func (r *socialRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}

func (r *socialRepository) GetRecipeLikes(ctx context.Context, recipeID string) ([]entities.Like, error) {
	var likes []entities.Like
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *socialRepository) LikeRecipe(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *socialRepository) UnlikeRecipe(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Like{}).Error
}

// The count and membership checks delegate to the store's named aggregate
// functions rather than counting rows client-side.
func (r *socialRepository) GetRecipeLikeCount(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT get_recipe_like_count(?::uuid)", recipeID).
		Scan(&count).Error
	return count, err
}

func (r *socialRepository) GetRecipeCommentCount(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Raw("SELECT get_recipe_comment_count(?::uuid)", recipeID).
		Scan(&count).Error
	return count, err
}

func (r *socialRepository) HasUserLikedRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).
		Raw("SELECT has_user_liked_recipe(?::uuid, ?::uuid)", recipeID, userID).
		Scan(&liked).Error
	return liked, err
}

func (r *socialRepository) GetRecipeStats(ctx context.Context, recipeID string) (*entities.RecipeStats, error) {
	var stats entities.RecipeStats
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *socialRepository) GetRecipesWithStats(ctx context.Context, limit, offset int) ([]entities.RecipeStats, error) {
	var stats []entities.RecipeStats
	if err := r.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at desc").
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// GetStatsForRecipes returns rows in no guaranteed order; callers index the
// result by recipe_id.
func (r *socialRepository) GetStatsForRecipes(ctx context.Context, recipeIDs []string) ([]entities.RecipeStats, error) {
	var stats []entities.RecipeStats
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", recipeIDs).
		Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *socialRepository) GetUserLikedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN likes ON recipes.id = likes.recipe_id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
