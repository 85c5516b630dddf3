package routes

import (
	"Tastebook-Backend/internal/api/handlers"
	"Tastebook-Backend/internal/middleware"
	"Tastebook-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	RecipeHandler handlers.RecipeHandler
	SocialHandler handlers.SocialHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Comments()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forgot", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Get("/me/liked-recipes", c.Middleware.AuthMiddleware(c.JWTService), c.SocialHandler.GetLikedRecipes)
		user.Get("/:id/recipes", c.RecipeHandler.GetUserRecipes)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// public reads
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Get("/stats", c.SocialHandler.GetRecipesWithStats)
	recipes.Get("/stats/batch", c.SocialHandler.GetStatsForRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Get("/:id/stats", c.SocialHandler.GetRecipeStats)
	recipes.Get("/:id/comments", c.SocialHandler.GetRecipeComments)
	recipes.Get("/:id/like", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.SocialHandler.GetLikeStatus)

	// owner-only writes
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", auth, c.RecipeHandler.UploadRecipeImage)

	// social writes
	recipes.Post("/:id/comments", auth, c.SocialHandler.CreateComment)
	recipes.Post("/:id/like", auth, c.SocialHandler.ToggleLike)
}

func (c *Config) Comments() {
	comments := c.App.Group("/api/v1/comments", c.Middleware.AuthMiddleware(c.JWTService))
	comments.Put("/:id", c.SocialHandler.UpdateComment)
	comments.Delete("/:id", c.SocialHandler.DeleteComment)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
