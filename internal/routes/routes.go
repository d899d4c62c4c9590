package routes

import (
	"time"

	"github.com/devforge/devforge-backend/internal/config"
	"github.com/devforge/devforge-backend/internal/handlers"
	"github.com/devforge/devforge-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	challengeHandler *handlers.ChallengeHandler,
	solutionHandler *handlers.SolutionHandler,
	evaluationHandler *handlers.EvaluationHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/:provider/callback", authHandler.OAuthCallback)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Challenges — listing and submission are public; authorship linkage of
	// the submitter is an open gap, see DESIGN.md.
	api.Get("/challenges", challengeHandler.List)
	api.Post("/challenges", challengeHandler.Create)

	// Solutions and evaluations
	api.Get("/solutions", solutionHandler.ListByChallenge)
	api.Post("/solutions", solutionHandler.Create)
	api.Post("/evaluations", evaluationHandler.Create)

	// Profile — requires a session
	api.Get("/users/me", middleware.JWTProtected(cfg), userHandler.Me)
	api.Post("/users/me/onboarding", middleware.JWTProtected(cfg), userHandler.CompleteOnboarding)
	api.Put("/users/:id", middleware.JWTProtected(cfg), userHandler.Update)
	api.Post("/users/:id/experience", middleware.JWTProtected(cfg), userHandler.GrantExperience)
}
