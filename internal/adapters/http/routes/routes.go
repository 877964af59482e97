package routes

import (
	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/adapters/http/handlers"
	"promessas-api/internal/adapters/http/middleware"
	"promessas-api/internal/adapters/persistence/repositories"
	"promessas-api/internal/config"
	"promessas-api/internal/core/services"
	"promessas-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, appCache *cache.Cache, cfg *config.Config) {
	Register(app, db, repositories.NewRepositories(db), appCache, cfg)
}

// Register wires services and handlers on top of the given repositories
func Register(app *fiber.App, db *gorm.DB, repos repositories.Repositories, appCache *cache.Cache, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(repos.Users, cfg)
	referenceService := services.NewReferenceService(repos.States, repos.Cities, repos.Parties, appCache, cfg.Cache)
	officeService := services.NewOfficeService(repos.Offices, appCache, cfg.Cache.OfficesTTL)
	electionService := services.NewElectionService(repos.Elections, appCache, cfg.Cache.ElectionsTTL)
	candidateService := services.NewCandidateService(
		repos.Candidates,
		repos.Elections,
		repos.Parties,
		repos.Offices,
		repos.States,
		repos.Cities,
	)
	promiseService := services.NewPromiseService(repos.Promises, repos.Candidates)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, appCache, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	officeHandler := handlers.NewOfficeHandler(officeService)
	electionHandler := handlers.NewElectionHandler(electionService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	promiseHandler := handlers.NewPromiseHandler(promiseService)

	requireAuth := middleware.AuthMiddleware(cfg)
	referenceCache := middleware.CacheControl(cfg.Cache.StatesTTL)

	// ============================================================
	// Public routes
	// ============================================================
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Auth
	auth := api.Group("/auth", middleware.NoCacheHeaders())
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/me", requireAuth, authHandler.Me)

	// Reference data
	api.Get("/states", referenceCache, referenceHandler.ListStates)
	api.Get("/cities", referenceCache, referenceHandler.ListCities)
	api.Get("/political-parties", referenceCache, referenceHandler.ListParties)

	// Offices
	api.Get("/offices", officeHandler.List)
	api.Post("/offices", requireAuth, officeHandler.Create)
	api.Patch("/offices/:officeId", requireAuth, officeHandler.Update)

	// Elections
	api.Get("/elections", electionHandler.List)
	api.Post("/elections", requireAuth, electionHandler.Create)

	// Candidates and promises
	api.Get("/candidates", candidateHandler.List)
	api.Post("/candidates", requireAuth, candidateHandler.Create)
	api.Get("/candidates/:candidateId/promises", promiseHandler.ListByCandidate)
	api.Post("/candidates/:candidateId/promises", requireAuth, promiseHandler.Create)
	api.Patch("/promises/:promiseId", requireAuth, promiseHandler.Update)
	api.Post("/promises/:promiseId/comments", requireAuth, promiseHandler.AddComment)

	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Rota não encontrada.")
	})
}
