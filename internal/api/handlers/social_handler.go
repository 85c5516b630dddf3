package handlers

import (
	"Tastebook-Backend/domain"
	"Tastebook-Backend/internal/api/presenters"
	"Tastebook-Backend/pkg/social"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	SocialHandler interface {
		GetRecipeComments(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		GetLikeStatus(c *fiber.Ctx) error
		GetRecipeStats(c *fiber.Ctx) error
		GetRecipesWithStats(c *fiber.Ctx) error
		GetStatsForRecipes(c *fiber.Ctx) error
		GetLikedRecipes(c *fiber.Ctx) error
	}

	socialHandler struct {
		socialService social.SocialService
		validator     *validator.Validate
	}
)

func NewSocialHandler(socialService social.SocialService, validator *validator.Validate) SocialHandler {
	return &socialHandler{
		socialService: socialService,
		validator:     validator,
	}
}

func (h *socialHandler) GetRecipeComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	comments, err := h.socialService.GetRecipeComments(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, comments, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *socialHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	req := new(domain.CreateCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	// content bound is enforced here, before any persistence call
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	comment, err := h.socialService.CreateComment(c.Context(), userID, recipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, comment, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *socialHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	req := new(domain.UpdateCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	comment, err := h.socialService.UpdateComment(c.Context(), userID, commentID, *req)
	if err != nil {
		code := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrNotCommentAuthor):
			code = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, comment, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *socialHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.socialService.DeleteComment(c.Context(), userID, commentID); err != nil {
		code := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrNotCommentAuthor):
			code = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *socialHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.socialService.ToggleRecipeLike(c.Context(), userID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

// GetLikeStatus degrades to {liked: false, like_count: 0} on error; the badge
// is not worth an error page.
func (h *socialHandler) GetLikeStatus(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	userID, _ := c.Locals("user_id").(string)

	res, err := h.socialService.GetLikeStatus(c.Context(), userID, recipeID)
	if err != nil {
		log.Errorf("error fetching like status for recipe %s: %v", recipeID, err)
		res = domain.LikeStatusResponse{}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikeStatus)
}

func (h *socialHandler) GetRecipeStats(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	stats, err := h.socialService.GetRecipeStats(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeStats, err)
	}
	if stats == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeStats, domain.ErrStatsNotFound)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetRecipeStats)
}

func (h *socialHandler) GetRecipesWithStats(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	stats, err := h.socialService.GetRecipesWithStats(c.Context(), limit, offset)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetRecipeStats)
}

func (h *socialHandler) GetStatsForRecipes(c *fiber.Ctx) error {
	ids := strings.Split(c.Query("ids", ""), ",")
	recipeIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			recipeIDs = append(recipeIDs, id)
		}
	}

	stats, err := h.socialService.GetStatsForRecipes(c.Context(), recipeIDs)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetRecipeStats)
}

func (h *socialHandler) GetLikedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.socialService.GetUserLikedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLikedRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetLikedRecipes)
}
