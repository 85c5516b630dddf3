package domain

import (
	"errors"
)

var (
	MessageSuccessGetComments      = "success get comments"
	MessageSuccessCreateComment    = "comment created successfully"
	MessageSuccessUpdateComment    = "comment updated successfully"
	MessageSuccessDeleteComment    = "comment deleted successfully"
	MessageSuccessToggleLike       = "like toggled successfully"
	MessageSuccessGetLikeStatus    = "success get like status"
	MessageSuccessGetRecipeStats   = "success get recipe stats"
	MessageSuccessGetLikedRecipes  = "success get liked recipes"

	MessageFailedGetComments     = "failed to get comments"
	MessageFailedCreateComment   = "failed to create comment"
	MessageFailedUpdateComment   = "failed to update comment"
	MessageFailedDeleteComment   = "failed to delete comment"
	MessageFailedToggleLike      = "failed to toggle like"
	MessageFailedGetLikeStatus   = "failed to get like status"
	MessageFailedGetRecipeStats  = "failed to get recipe stats"
	MessageFailedGetLikedRecipes = "failed to get liked recipes"

	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("not the comment author")
	ErrStatsNotFound    = errors.New("recipe stats not found")
)

type (
	CreateCommentRequest struct {
		Content  string  `json:"content" validate:"required,min=1,max=1000"`
		ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
	}

	UpdateCommentRequest struct {
		Content string `json:"content" validate:"required,min=1,max=1000"`
	}

	ToggleLikeResponse struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}

	LikeStatusResponse struct {
		Liked     bool  `json:"liked"`
		LikeCount int64 `json:"like_count"`
	}
)
