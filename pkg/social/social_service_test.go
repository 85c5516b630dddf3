package social_test

import (
	migration "Tastebook-Backend/cmd/database/migrate"
	"Tastebook-Backend/domain"
	"Tastebook-Backend/entities"
	"Tastebook-Backend/pkg/social"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing. The
// store-side aggregate functions only exist on postgres, so the tests here
// stay on rows and views; social_integration_test.go covers the functions.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migration.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string) *entities.Profile {
	profile := &entities.Profile{
		ID:       uuid.New(),
		Email:    username + "@example.com",
		Username: &username,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	return profile
}

func seedRecipe(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title string) *entities.Recipe {
	r := &entities.Recipe{
		UserID:       ownerID,
		Title:        title,
		Ingredients:  "stuff",
		Instructions: "do things",
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("Failed to seed recipe: %v", err)
	}
	return r
}

func TestCommentLifecycle(t *testing.T) {
	db := setupTestDB(t)
	service := social.NewSocialService(social.NewSocialRepository(db))
	author := seedProfile(t, db, "commenter")
	reader := seedProfile(t, db, "reader")
	recipe := seedRecipe(t, db, author.ID, "Commented Recipe")

	first, err := service.CreateComment(context.Background(), author.ID.String(), recipe.ID.String(), domain.CreateCommentRequest{
		Content: "Looks delicious",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("Expected a generated comment id")
	}

	// force distinct timestamps so the ordering assertion is meaningful
	if err := db.Model(&entities.Comment{}).Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("Failed to backdate comment: %v", err)
	}

	second, err := service.CreateComment(context.Background(), reader.ID.String(), recipe.ID.String(), domain.CreateCommentRequest{
		Content: "Made it last night",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	comments, err := service.GetRecipeComments(context.Background(), recipe.ID.String())
	if err != nil {
		t.Fatalf("GetRecipeComments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].ID != first.ID || comments[1].ID != second.ID {
		t.Error("Expected comments ordered oldest first")
	}
	if comments[0].Username == nil || *comments[0].Username != "commenter" {
		t.Error("Expected author username joined onto the comment row")
	}

	// only the author may edit
	_, err = service.UpdateComment(context.Background(), reader.ID.String(), first.ID.String(), domain.UpdateCommentRequest{
		Content: "edited by someone else",
	})
	if !errors.Is(err, domain.ErrNotCommentAuthor) {
		t.Errorf("Expected ErrNotCommentAuthor, got %v", err)
	}

	updated, err := service.UpdateComment(context.Background(), author.ID.String(), first.ID.String(), domain.UpdateCommentRequest{
		Content: "Looks delicious (edited)",
	})
	if err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if updated.Content != "Looks delicious (edited)" {
		t.Errorf("Expected updated content, got %q", updated.Content)
	}

	if err := service.DeleteComment(context.Background(), reader.ID.String(), first.ID.String()); !errors.Is(err, domain.ErrNotCommentAuthor) {
		t.Errorf("Expected ErrNotCommentAuthor on delete, got %v", err)
	}
	if err := service.DeleteComment(context.Background(), author.ID.String(), first.ID.String()); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}

	comments, err = service.GetRecipeComments(context.Background(), recipe.ID.String())
	if err != nil {
		t.Fatalf("GetRecipeComments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != second.ID {
		t.Error("Expected only the second comment to remain")
	}
}

func TestCommentNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := social.NewSocialService(social.NewSocialRepository(db))
	user := seedProfile(t, db, "nobody")

	_, err := service.UpdateComment(context.Background(), user.ID.String(), uuid.New().String(), domain.UpdateCommentRequest{
		Content: "ghost edit",
	})
	if !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("Expected ErrCommentNotFound on update, got %v", err)
	}

	if err := service.DeleteComment(context.Background(), user.ID.String(), uuid.New().String()); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Errorf("Expected ErrCommentNotFound on delete, got %v", err)
	}
}

func TestReplyCommentKeepsParent(t *testing.T) {
	db := setupTestDB(t)
	service := social.NewSocialService(social.NewSocialRepository(db))
	author := seedProfile(t, db, "threader")
	recipe := seedRecipe(t, db, author.ID, "Threaded Recipe")

	parent, err := service.CreateComment(context.Background(), author.ID.String(), recipe.ID.String(), domain.CreateCommentRequest{
		Content: "top level",
	})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	parentID := parent.ID.String()
	reply, err := service.CreateComment(context.Background(), author.ID.String(), recipe.ID.String(), domain.CreateCommentRequest{
		Content:  "a reply",
		ParentID: &parentID,
	})
	if err != nil {
		t.Fatalf("CreateComment with parent failed: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != parent.ID {
		t.Error("Expected parent_id stored on the reply")
	}

	// replies surface in the same flat listing
	comments, err := service.GetRecipeComments(context.Background(), recipe.ID.String())
	if err != nil {
		t.Fatalf("GetRecipeComments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments in the flat listing, got %d", len(comments))
	}
}

func TestDuplicateLikeRejected(t *testing.T) {
	db := setupTestDB(t)
	repository := social.NewSocialRepository(db)
	liker := seedProfile(t, db, "liker")
	recipe := seedRecipe(t, db, liker.ID, "Liked Recipe")

	if err := repository.LikeRecipe(context.Background(), &entities.Like{
		UserID:   liker.ID,
		RecipeID: recipe.ID,
	}); err != nil {
		t.Fatalf("LikeRecipe failed: %v", err)
	}

	err := repository.LikeRecipe(context.Background(), &entities.Like{
		UserID:   liker.ID,
		RecipeID: recipe.ID,
	})
	if err == nil {
		t.Fatal("Expected unique index violation on duplicate like")
	}

	var count int64
	if err := db.Model(&entities.Like{}).
		Where("user_id = ? AND recipe_id = ?", liker.ID, recipe.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("Failed to count likes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one like row, got %d", count)
	}

	if err := repository.UnlikeRecipe(context.Background(), liker.ID.String(), recipe.ID.String()); err != nil {
		t.Fatalf("UnlikeRecipe failed: %v", err)
	}
	likes, err := repository.GetRecipeLikes(context.Background(), recipe.ID.String())
	if err != nil {
		t.Fatalf("GetRecipeLikes failed: %v", err)
	}
	if len(likes) != 0 {
		t.Errorf("Expected no likes after unlike, got %d", len(likes))
	}
}

func TestRecipeStatsView(t *testing.T) {
	db := setupTestDB(t)
	service := social.NewSocialService(social.NewSocialRepository(db))
	owner := seedProfile(t, db, "statowner")
	fan := seedProfile(t, db, "statfan")
	recipe := seedRecipe(t, db, owner.ID, "Measured Recipe")
	other := seedRecipe(t, db, owner.ID, "Quiet Recipe")

	for _, p := range []*entities.Profile{owner, fan} {
		if err := db.Create(&entities.Like{UserID: p.ID, RecipeID: recipe.ID}).Error; err != nil {
			t.Fatalf("Failed to seed like: %v", err)
		}
	}
	if _, err := service.CreateComment(context.Background(), fan.ID.String(), recipe.ID.String(), domain.CreateCommentRequest{
		Content: "counted",
	}); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	stats, err := service.GetRecipeStats(context.Background(), recipe.ID.String())
	if err != nil {
		t.Fatalf("GetRecipeStats failed: %v", err)
	}
	if stats == nil {
		t.Fatal("Expected a stats row")
	}
	if stats.LikeCount != 2 || stats.CommentCount != 1 {
		t.Errorf("Expected 2 likes and 1 comment, got %d and %d", stats.LikeCount, stats.CommentCount)
	}
	if stats.Title != "Measured Recipe" {
		t.Errorf("Expected recipe title on the stats row, got %q", stats.Title)
	}

	// unknown recipe is not an error, just no stats
	missing, err := service.GetRecipeStats(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetRecipeStats for unknown id failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil stats for an unknown recipe")
	}

	batch, err := service.GetStatsForRecipes(context.Background(), []string{recipe.ID.String(), other.ID.String()})
	if err != nil {
		t.Fatalf("GetStatsForRecipes failed: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("Expected 2 stats rows, got %d", len(batch))
	}
	byID := make(map[uuid.UUID]entities.RecipeStats, len(batch))
	for _, s := range batch {
		byID[s.RecipeID] = s
	}
	if byID[other.ID].LikeCount != 0 || byID[other.ID].CommentCount != 0 {
		t.Error("Expected zero counts for the untouched recipe")
	}

	empty, err := service.GetStatsForRecipes(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetStatsForRecipes with no ids failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result for empty input, got %d rows", len(empty))
	}
}

func TestGetUserLikedRecipesOrder(t *testing.T) {
	db := setupTestDB(t)
	service := social.NewSocialService(social.NewSocialRepository(db))
	owner := seedProfile(t, db, "likedowner")
	fan := seedProfile(t, db, "likedfan")

	first := seedRecipe(t, db, owner.ID, "Liked First")
	second := seedRecipe(t, db, owner.ID, "Liked Second")
	unliked := seedRecipe(t, db, owner.ID, "Never Liked")

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	likes := []*entities.Like{
		{UserID: fan.ID, RecipeID: first.ID, CreatedAt: base},
		{UserID: fan.ID, RecipeID: second.ID, CreatedAt: base.Add(time.Hour)},
	}
	for _, l := range likes {
		if err := db.Create(l).Error; err != nil {
			t.Fatalf("Failed to seed like: %v", err)
		}
	}

	liked, err := service.GetUserLikedRecipes(context.Background(), fan.ID.String())
	if err != nil {
		t.Fatalf("GetUserLikedRecipes failed: %v", err)
	}
	if len(liked) != 2 {
		t.Fatalf("Expected 2 liked recipes, got %d", len(liked))
	}
	if liked[0].Title != "Liked Second" || liked[1].Title != "Liked First" {
		t.Errorf("Expected most recently liked first, got %q then %q", liked[0].Title, liked[1].Title)
	}
	for _, r := range liked {
		if r.ID == unliked.ID.String() {
			t.Error("Expected the never-liked recipe to stay out of the list")
		}
	}
	if liked[0].Owner == nil || liked[0].Owner.Username == nil || *liked[0].Owner.Username != "likedowner" {
		t.Error("Expected owner info preloaded on liked recipes")
	}
}
