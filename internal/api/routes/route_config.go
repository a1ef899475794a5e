package routes

import (
	"RecipeHub/internal/api/handlers"
	"RecipeHub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App            *fiber.App
	HomeHandler    handlers.HomeHandler
	AccountHandler handlers.AccountHandler
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	CatalogHandler handlers.CatalogHandler
	AdminHandler   handlers.AdminHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.Identify())
	c.GuestRoute()
	c.Home()
	c.Account()
	c.User()
	c.Recipe()
	c.Catalog()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Home() {
	c.App.Get("/", c.HomeHandler.Index)
	c.App.Get("/Home/Index", c.HomeHandler.Index)
}

func (c *Config) Account() {
	auth := c.Middleware.AuthRequired()
	account := c.App.Group("/Account")
	{
		account.Get("/Register", c.AccountHandler.RegisterPage)
		account.Post("/Register", c.AccountHandler.Register)
		account.Get("/Login", c.AccountHandler.LoginPage)
		account.Post("/Login", c.AccountHandler.Login)
		account.Post("/Logout", c.AccountHandler.Logout)
		account.Get("/Verify", c.AccountHandler.VerifyEmail)
		account.Post("/ResendVerification", c.AccountHandler.ResendVerification)
		account.Get("/ForgotPassword", c.AccountHandler.ForgotPasswordPage)
		account.Post("/ForgotPassword", c.AccountHandler.ForgotPassword)
		account.Get("/ResetPassword", c.AccountHandler.ResetPasswordPage)
		account.Post("/ResetPassword", c.AccountHandler.ResetPassword)
		account.Post("/ChangePassword", auth, c.AccountHandler.ChangePassword)
	}
}

func (c *Config) User() {
	auth := c.Middleware.AuthRequired()
	user := c.App.Group("/User")
	{
		user.Get("/Profile/:id", c.UserHandler.Profile)
		user.Get("/Followers/:id", c.UserHandler.Followers)
		user.Get("/Following/:id", c.UserHandler.Following)
		user.Get("/Edit", auth, c.UserHandler.EditPage)
		user.Post("/Edit", auth, c.UserHandler.Edit)
		user.Post("/ToggleFollow", auth, c.UserHandler.ToggleFollow)
		user.Post("/Report", auth, c.UserHandler.Report)
	}
}

func (c *Config) Recipe() {
	auth := c.Middleware.AuthRequired()
	recipe := c.App.Group("/Recipe")
	{
		recipe.Get("/Detail/:id", c.RecipeHandler.Detail)
		recipe.Get("/Search", c.RecipeHandler.Search)

		recipe.Get("/Create", auth, c.RecipeHandler.CreatePage)
		recipe.Post("/Create", auth, c.RecipeHandler.Create)
		recipe.Get("/Edit/:id", auth, c.RecipeHandler.EditPage)
		recipe.Post("/Edit/:id", auth, c.RecipeHandler.Edit)
		recipe.Post("/Delete/:id", auth, c.RecipeHandler.Delete)
		recipe.Post("/ToggleLike", auth, c.RecipeHandler.ToggleLike)
		recipe.Post("/ToggleSave", auth, c.RecipeHandler.ToggleSave)
		recipe.Post("/Comment", auth, c.RecipeHandler.Comment)
		recipe.Post("/DeleteComment", auth, c.RecipeHandler.DeleteComment)
		recipe.Post("/Report", auth, c.RecipeHandler.Report)
		recipe.Get("/Notebook", auth, c.RecipeHandler.Notebook)
	}
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/Catalog")
	catalog.Get("/Ingredients", c.CatalogHandler.Ingredients)
	catalog.Get("/Categories", c.CatalogHandler.Categories)
}

func (c *Config) Admin() {
	admin := c.App.Group("/Admin", c.Middleware.AuthRequired(), c.Middleware.AdminRequired())
	{
		admin.Get("/Index", c.AdminHandler.Index)
		admin.Get("/Moderation", c.AdminHandler.Moderation)
		admin.Get("/RecipeReports/:id", c.AdminHandler.RecipeReports)

		admin.Post("/ApproveRecipe/:id", c.AdminHandler.ApproveRecipe)
		admin.Post("/BanRecipe/:id", c.AdminHandler.BanRecipe)
		admin.Post("/UnbanRecipe/:id", c.AdminHandler.UnbanRecipe)
		admin.Post("/FlagRecipe/:id", c.AdminHandler.FlagRecipe)
		admin.Post("/UnflagRecipe/:id", c.AdminHandler.UnflagRecipe)
		admin.Post("/ResolveReport/:id", c.AdminHandler.ResolveReport)
		admin.Post("/RejectReport/:id", c.AdminHandler.RejectReport)

		admin.Get("/UserReports", c.AdminHandler.UserReports)
		admin.Post("/ResolveUserReport/:id", c.AdminHandler.ResolveUserReport)
		admin.Post("/RejectUserReport/:id", c.AdminHandler.RejectUserReport)

		admin.Get("/Users", c.AdminHandler.Users)
		admin.Post("/BanUser/:id", c.AdminHandler.BanUser)
		admin.Post("/UnbanUser/:id", c.AdminHandler.UnbanUser)

		admin.Post("/AddIngredient", c.AdminHandler.AddIngredient)
		admin.Post("/AddCategory", c.AdminHandler.AddCategory)
	}
}
