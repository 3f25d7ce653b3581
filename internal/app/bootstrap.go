package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"account-hub/internal/config"
	"account-hub/internal/delivery/http/middleware"
	"account-hub/internal/delivery/http/routes"
	"account-hub/internal/infrastructure/persistence/postgres"
)

type App struct {
	Fiber *fiber.App
	Pool  *pgxpool.Pool
}

// Bootstrap connects to the database and assembles the HTTP app. The
// returned cleanup releases the connection pool.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	// The access log must run outermost so it observes the status the
	// error middleware writes, not the pre-normalization default.
	accessMw := middleware.NewAccessLogMiddleware(nil)
	errMw := middleware.NewErrorMiddleware()
	f.Use(accessMw.Middleware())
	f.Use(errMw.Middleware())

	routes.Register(f, cfg, pool)

	app := &App{Fiber: f, Pool: pool}
	cleanup := func() error {
		pool.Close()
		return nil
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
