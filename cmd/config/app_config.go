package config

import (
	"RecipeHub/internal/api/handlers"
	"RecipeHub/internal/api/routes"
	"RecipeHub/internal/middleware"
	"RecipeHub/internal/session"
	"RecipeHub/internal/utils"
	"RecipeHub/internal/utils/mailing"
	"RecipeHub/internal/utils/storage"
	"RecipeHub/internal/views"
	"RecipeHub/pkg/interaction"
	"RecipeHub/pkg/jwt"
	"RecipeHub/pkg/moderation"
	"RecipeHub/pkg/recipe"
	"RecipeHub/pkg/search"
	"RecipeHub/pkg/user"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()

	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	views.AddFuncs(engine)

	app := fiber.New(fiber.Config{
		AppName:      "RecipeHub",
		Views:        engine,
		BodyLimit:    8 * storage.MaxUploadSize,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Second,
	}))

	// sessions live in redis when configured, in memory otherwise
	var sessionStorage fiber.Storage
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		redisStorage, err := session.NewRedisStorage(addr, utils.GetConfig("REDIS_PASSWORD"))
		if err != nil {
			return nil, err
		}
		sessionStorage = redisStorage
	} else {
		zap.L().Warn("REDIS_ADDR not set, sessions are kept in memory")
	}
	idle := time.Duration(utils.GetSessionIdleMinutes()) * time.Minute
	store := session.NewStore(sessionStorage, idle, utils.GetConfig("APP_ENV") == "prod")
	app.Use(session.Middleware(store))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	interactionRepository := interaction.NewInteractionRepository(db)
	searchRepository := search.NewSearchRepository(db)
	moderationRepository := moderation.NewModerationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	interactionService := interaction.NewInteractionService(interactionRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, interactionService, s3)
	userService := user.NewUserService(userRepository, recipeService, jwtService, mailer, s3, utils.GetConfig("APP_URL"))
	searchService := search.NewSearchService(searchRepository)
	moderationService := moderation.NewModerationService(moderationRepository)

	// Handler
	homeHandler := handlers.NewHomeHandler(recipeService)
	accountHandler := handlers.NewAccountHandler(userService, validator)
	userHandler := handlers.NewUserHandler(userService, moderationService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, interactionService, searchService, moderationService, validator)
	catalogHandler := handlers.NewCatalogHandler(recipeService)
	adminHandler := handlers.NewAdminHandler(moderationService, recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		HomeHandler:    homeHandler,
		AccountHandler: accountHandler,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		CatalogHandler: catalogHandler,
		AdminHandler:   adminHandler,
		Middleware:     middleware.NewMiddleware(userService),
	}
	routesConfig.Setup()
	return app, nil
}
