package handlers_test

import (
	migration "Tastebook-Backend/cmd/database/migrate"
	"Tastebook-Backend/entities"
	"Tastebook-Backend/internal/api/handlers"
	"Tastebook-Backend/pkg/recipe"
	"Tastebook-Backend/pkg/social"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestApp wires real services over an in-memory SQLite database and a
// middleware stand-in that injects the given user id, the way the auth
// middleware would after token validation.
func newTestApp(t *testing.T, userID string) (*fiber.App, *gorm.DB) {
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

	v := validator.New()
	recipeHandler := handlers.NewRecipeHandler(recipe.NewRecipeService(recipe.NewRecipeRepository(db), nil), v)
	socialHandler := handlers.NewSocialHandler(social.NewSocialService(social.NewSocialRepository(db)), v)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Get("/api/v1/recipes", recipeHandler.GetRecipes)
	app.Post("/api/v1/recipes", recipeHandler.CreateRecipe)
	app.Get("/api/v1/recipes/:id/comments", socialHandler.GetRecipeComments)
	app.Post("/api/v1/recipes/:id/comments", socialHandler.CreateComment)
	app.Put("/api/v1/comments/:id", socialHandler.UpdateComment)
	app.Delete("/api/v1/comments/:id", socialHandler.DeleteComment)

	return app, db
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

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateCommentEndpoint(t *testing.T) {
	author := uuid.New()
	app, db := newTestApp(t, author.String())
	if err := db.Create(&entities.Profile{ID: author, Email: "author@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	target := seedRecipe(t, db, author, "Commented Recipe")

	res, err := app.Test(jsonRequest(fiber.MethodPost,
		fmt.Sprintf("/api/v1/recipes/%s/comments", target.ID),
		fiber.Map{"content": "Lovely crust"}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", res.StatusCode)
	}

	var count int64
	if err := db.Model(&entities.Comment{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 stored comment, got %d", count)
	}
}

func TestCommentContentBoundRejectedBeforePersistence(t *testing.T) {
	author := uuid.New()
	app, db := newTestApp(t, author.String())
	if err := db.Create(&entities.Profile{ID: author, Email: "author@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	target := seedRecipe(t, db, author, "Strict Recipe")

	cases := map[string]string{
		"empty":    "",
		"too long": strings.Repeat("x", 1001),
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := app.Test(jsonRequest(fiber.MethodPost,
				fmt.Sprintf("/api/v1/recipes/%s/comments", target.ID),
				fiber.Map{"content": content}))
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			if res.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", res.StatusCode)
			}

			var count int64
			if err := db.Model(&entities.Comment{}).Count(&count).Error; err != nil {
				t.Fatalf("Failed to count comments: %v", err)
			}
			if count != 0 {
				t.Errorf("Expected no persisted comment, got %d", count)
			}
		})
	}

	// exactly at the bound still passes
	res, err := app.Test(jsonRequest(fiber.MethodPost,
		fmt.Sprintf("/api/v1/recipes/%s/comments", target.ID),
		fiber.Map{"content": strings.Repeat("x", 1000)}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Errorf("Expected 201 for 1000-char content, got %d", res.StatusCode)
	}
}

func TestUpdateCommentEndpointStatusCodes(t *testing.T) {
	author := uuid.New()
	app, db := newTestApp(t, author.String())
	if err := db.Create(&entities.Profile{ID: author, Email: "author@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}
	stranger := seedProfile(t, db, "stranger")
	target := seedRecipe(t, db, author, "Disputed Recipe")

	theirs := &entities.Comment{UserID: stranger.ID, RecipeID: target.ID, Content: "not yours"}
	if err := db.Create(theirs).Error; err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}

	res, err := app.Test(jsonRequest(fiber.MethodPut,
		fmt.Sprintf("/api/v1/comments/%s", theirs.ID),
		fiber.Map{"content": "hijack attempt"}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Errorf("Expected 403 for someone else's comment, got %d", res.StatusCode)
	}

	res, err = app.Test(jsonRequest(fiber.MethodPut,
		fmt.Sprintf("/api/v1/comments/%s", uuid.New()),
		fiber.Map{"content": "ghost edit"}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected 404 for a missing comment, got %d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest(fiber.MethodDelete,
		fmt.Sprintf("/api/v1/comments/%s", theirs.ID), nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Errorf("Expected 403 on foreign delete, got %d", res.StatusCode)
	}
}

func TestCreateRecipeEndpointValidation(t *testing.T) {
	author := uuid.New()
	app, db := newTestApp(t, author.String())
	if err := db.Create(&entities.Profile{ID: author, Email: "author@example.com"}).Error; err != nil {
		t.Fatalf("Failed to seed profile: %v", err)
	}

	// missing required fields
	res, err := app.Test(jsonRequest(fiber.MethodPost, "/api/v1/recipes",
		fiber.Map{"description": "a recipe with no title"}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for missing title, got %d", res.StatusCode)
	}

	res, err = app.Test(jsonRequest(fiber.MethodPost, "/api/v1/recipes", fiber.Map{
		"title":        "Valid Recipe",
		"ingredients":  "water",
		"instructions": "boil",
		"difficulty":   "impossible",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for unknown difficulty, got %d", res.StatusCode)
	}

	res, err = app.Test(jsonRequest(fiber.MethodPost, "/api/v1/recipes", fiber.Map{
		"title":        "Valid Recipe",
		"ingredients":  "water",
		"instructions": "boil",
	}))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("Expected 201, got %d", res.StatusCode)
	}

	var body struct {
		Data struct {
			ID         string `json:"id"`
			Difficulty string `json:"difficulty"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Data.Difficulty != "medium" {
		t.Errorf("Expected default difficulty medium, got %q", body.Data.Difficulty)
	}
	if body.Data.ID == "" {
		t.Error("Expected a recipe id in the response")
	}
}
