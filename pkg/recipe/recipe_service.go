package recipe

import (
	"Tastebook-Backend/domain"
	"Tastebook-Backend/entities"
	"Tastebook-Backend/internal/utils/storage"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// RecipeService applies the listing-area failure policy: read operations
	// degrade to an empty page, a not-found, or false instead of surfacing
	// backend errors. Failures are logged for operator visibility only.
	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64)
		GetRecipe(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetUserRecipes(ctx context.Context, userID string) []domain.RecipeResponse
		CreateRecipe(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id, userID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id, userID string) error
		IsRecipeCreator(ctx context.Context, recipeID, userID string) bool
		SearchRecipes(ctx context.Context, query string, filters domain.RecipeSearchFilters) []domain.RecipeResponse
		UploadRecipeImage(ctx context.Context, id, userID string, file *multipart.FileHeader) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// GetRecipes never fails: any backend error degrades to an empty page with a
// zero count.
func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]domain.RecipeResponse, int64) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		log.Errorf("error fetching recipes: %v", err)
		return []domain.RecipeResponse{}, 0
	}
	return toRecipeResponses(recipes), count
}

// GetRecipe folds every failure into ErrRecipeNotFound; absent and errored are
// the same signal to callers.
func (s *recipeService) GetRecipe(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetByID(ctx, id)
	if err != nil {
		log.Errorf("error fetching recipe %s: %v", id, err)
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string) []domain.RecipeResponse {
	recipes, err := s.recipeRepository.GetUserRecipes(ctx, userID)
	if err != nil {
		log.Errorf("error fetching recipes for user %s: %v", userID, err)
		return []domain.RecipeResponse{}
	}
	return toRecipeResponses(recipes)
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID string, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}

	recipe := &entities.Recipe{
		UserID:       ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		CookingTime:  req.CookingTime,
		Difficulty:   difficulty,
		Category:     req.Category,
		Instructions: req.Instructions,
	}
	if err := s.recipeRepository.Create(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id, userID string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	if !s.IsRecipeCreator(ctx, id, userID) {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	if req.CookingTime != nil {
		updates["cooking_time"] = *req.CookingTime
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Instructions != nil {
		updates["instructions"] = *req.Instructions
	}

	recipe, err := s.recipeRepository.Update(ctx, id, updates)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id, userID string) error {
	if !s.IsRecipeCreator(ctx, id, userID) {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return s.recipeRepository.Delete(ctx, id)
}

// IsRecipeCreator fails closed: a missing recipe or a backend error both read
// as "not the owner".
func (s *recipeService) IsRecipeCreator(ctx context.Context, recipeID, userID string) bool {
	ownerID, err := s.recipeRepository.GetOwnerID(ctx, recipeID)
	if err != nil {
		log.Errorf("error checking recipe ownership for %s: %v", recipeID, err)
		return false
	}
	return ownerID == userID
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string, filters domain.RecipeSearchFilters) []domain.RecipeResponse {
	recipes, err := s.recipeRepository.Search(ctx, query, filters)
	if err != nil {
		log.Errorf("error searching recipes: %v", err)
		return []domain.RecipeResponse{}
	}
	return toRecipeResponses(recipes)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id, userID string, file *multipart.FileHeader) (domain.RecipeResponse, error) {
	if !s.IsRecipeCreator(ctx, id, userID) {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	key := fmt.Sprintf("recipes/%s/%s%s", id, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := s.s3.UploadFile(ctx, key, file)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe, err := s.recipeRepository.Update(ctx, id, map[string]interface{}{"image_url": url})
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func toRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:           r.ID.String(),
		CreatedAt:    r.CreatedAt,
		UserID:       r.UserID.String(),
		Title:        r.Title,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		CookingTime:  r.CookingTime,
		Difficulty:   r.Difficulty,
		Category:     r.Category,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
	}
	if r.User != nil {
		res.Owner = &domain.RecipeOwner{
			Username: r.User.Username,
			FullName: r.User.FullName,
		}
	}
	return res
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}
	return res
}
