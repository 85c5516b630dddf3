package social

import (
	"Tastebook-Backend/domain"
	"Tastebook-Backend/entities"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// SocialService propagates backend errors to callers, unlike the recipe
	// listing area: comment and like mutations are expected to surface their
	// failures as user-visible messages.
	SocialService interface {
		GetRecipeComments(ctx context.Context, recipeID string) ([]entities.CommentWithUser, error)
		CreateComment(ctx context.Context, userID, recipeID string, req domain.CreateCommentRequest) (*entities.Comment, error)
		UpdateComment(ctx context.Context, userID, commentID string, req domain.UpdateCommentRequest) (*entities.Comment, error)
		DeleteComment(ctx context.Context, userID, commentID string) error

		ToggleRecipeLike(ctx context.Context, userID, recipeID string) (domain.ToggleLikeResponse, error)
		GetLikeStatus(ctx context.Context, userID, recipeID string) (domain.LikeStatusResponse, error)

		GetRecipeStats(ctx context.Context, recipeID string) (*entities.RecipeStats, error)
		GetRecipesWithStats(ctx context.Context, limit, offset int) ([]entities.RecipeStats, error)
		GetStatsForRecipes(ctx context.Context, recipeIDs []string) ([]entities.RecipeStats, error)
		GetUserLikedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
	}

	socialService struct {
		socialRepository SocialRepository
	}
)

func NewSocialService(socialRepository SocialRepository) SocialService {
	return &socialService{socialRepository: socialRepository}
}

func (s *socialService) GetRecipeComments(ctx context.Context, recipeID string) ([]entities.CommentWithUser, error) {
	return s.socialRepository.GetRecipeComments(ctx, recipeID)
}

func (s *socialService) CreateComment(ctx context.Context, userID, recipeID string, req domain.CreateCommentRequest) (*entities.Comment, error) {
	authorID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	targetID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	comment := &entities.Comment{
		UserID:   authorID,
		RecipeID: targetID,
		Content:  req.Content,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		comment.ParentID = &parentID
	}

	if err := s.socialRepository.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment fails closed: only the author may edit, and a missing comment
// reads as not found rather than leaking whether it exists.
func (s *socialService) UpdateComment(ctx context.Context, userID, commentID string, req domain.UpdateCommentRequest) (*entities.Comment, error) {
	comment, err := s.socialRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	if comment.UserID.String() != userID {
		return nil, domain.ErrNotCommentAuthor
	}

	return s.socialRepository.UpdateComment(ctx, commentID, req.Content)
}

func (s *socialService) DeleteComment(ctx context.Context, userID, commentID string) error {
	comment, err := s.socialRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	if comment.UserID.String() != userID {
		return domain.ErrNotCommentAuthor
	}

	return s.socialRepository.DeleteComment(ctx, commentID)
}

// ToggleRecipeLike reads the current like state, performs the opposite write,
// then re-reads the aggregate count. The sequence is not atomic: two
// concurrent toggles for the same (user, recipe) can interleave, and the
// composite unique index on likes is what holds the invariant. The returned
// state is the best-known post-write view.
func (s *socialService) ToggleRecipeLike(ctx context.Context, userID, recipeID string) (domain.ToggleLikeResponse, error) {
	liked, err := s.socialRepository.HasUserLikedRecipe(ctx, userID, recipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	if liked {
		err = s.socialRepository.UnlikeRecipe(ctx, userID, recipeID)
	} else {
		likerID, perr := uuid.Parse(userID)
		if perr != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}
		targetID, perr := uuid.Parse(recipeID)
		if perr != nil {
			return domain.ToggleLikeResponse{}, domain.ErrParseUUID
		}
		err = s.socialRepository.LikeRecipe(ctx, &entities.Like{
			UserID:   likerID,
			RecipeID: targetID,
		})
	}
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	count, err := s.socialRepository.GetRecipeLikeCount(ctx, recipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		Liked:     !liked,
		LikeCount: count,
	}, nil
}

func (s *socialService) GetLikeStatus(ctx context.Context, userID, recipeID string) (domain.LikeStatusResponse, error) {
	count, err := s.socialRepository.GetRecipeLikeCount(ctx, recipeID)
	if err != nil {
		return domain.LikeStatusResponse{}, err
	}

	liked := false
	if userID != "" {
		liked, err = s.socialRepository.HasUserLikedRecipe(ctx, userID, recipeID)
		if err != nil {
			return domain.LikeStatusResponse{}, err
		}
	}

	return domain.LikeStatusResponse{
		Liked:     liked,
		LikeCount: count,
	}, nil
}

// GetRecipeStats returns nil for a missing row; deleted recipes simply have no
// stats.
func (s *socialService) GetRecipeStats(ctx context.Context, recipeID string) (*entities.RecipeStats, error) {
	stats, err := s.socialRepository.GetRecipeStats(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Errorf("error fetching stats for recipe %s: %v", recipeID, err)
		return nil, err
	}
	return stats, nil
}

func (s *socialService) GetRecipesWithStats(ctx context.Context, limit, offset int) ([]entities.RecipeStats, error) {
	return s.socialRepository.GetRecipesWithStats(ctx, limit, offset)
}

func (s *socialService) GetStatsForRecipes(ctx context.Context, recipeIDs []string) ([]entities.RecipeStats, error) {
	if len(recipeIDs) == 0 {
		return []entities.RecipeStats{}, nil
	}
	return s.socialRepository.GetStatsForRecipes(ctx, recipeIDs)
}

func (s *socialService) GetUserLikedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.socialRepository.GetUserLikedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		item := domain.RecipeResponse{
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
			item.Owner = &domain.RecipeOwner{
				Username: r.User.Username,
				FullName: r.User.FullName,
			}
		}
		res = append(res, item)
	}
	return res, nil
}
