package routes

import (
	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"account-hub/internal/config"
	"account-hub/internal/delivery/http/handler"
	"account-hub/internal/delivery/http/middleware"
	"account-hub/internal/infrastructure/persistence/postgres"
	"account-hub/internal/pkg/password"
	"account-hub/internal/pkg/token"
	ucauth "account-hub/internal/usecase/auth"
	"account-hub/internal/usecase/directory"
)

// Register wires repositories, usecases and handlers onto the app. The auth
// routes are public; everything under /users requires a bearer token.
func Register(app *fiber.App, cfg config.Config, pool *pgxpool.Pool) {
	tokens := token.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	hasher := password.New(cfg.Auth.BcryptCost)

	accountRepo := postgres.NewAccountRepository(pool)
	authUC := ucauth.NewService(accountRepo, hasher, tokens)
	directoryUC := directory.NewService(accountRepo, hasher)

	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(directoryUC)

	authMw := middleware.NewAuthMiddleware(tokens)

	healthHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app.Group("/auth"))
	userHandler.RegisterRoutes(app.Group("/users", authMw.Middleware()))
}
