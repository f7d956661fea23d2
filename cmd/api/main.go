package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/clubhub-api/internal/application/auth"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clubhub-api/internal/interfaces/http"
	"github.com/jhoicas/clubhub-api/pkg/broadcast"
	"github.com/jhoicas/clubhub-api/pkg/config"
	"github.com/jhoicas/clubhub-api/pkg/logger"

	_ "github.com/jhoicas/clubhub-api/docs"
)

// @title           ClubHub API
// @version         1.0
// @description     Navegación y visibilidad de módulos por rol y club.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewRoleSettingsRepository(pool)
	overrideRepo := postgres.NewClubOverrideRepository(pool)
	layoutRepo := postgres.NewLayoutRepository(pool)
	groupRepo := postgres.NewGroupAssignmentRepository(pool)

	// Broadcaster de cambios de configuración: los consumidores se
	// suscriben por feature key, sin polling ni estado global compartido.
	bus := broadcast.New()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	navigationUC := usecase.NewNavigationUseCase(settingsRepo, overrideRepo, groupRepo, log)
	settingsUC := usecase.NewRoleSettingsUseCase(settingsRepo, bus)
	overrideUC := usecase.NewClubOverrideUseCase(overrideRepo, settingsRepo, bus)
	layoutUC := usecase.NewLayoutUseCase(layoutRepo, bus, log)
	groupsUC := usecase.NewGroupAssignmentUseCase(groupRepo, bus)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ClubHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		NavigationUC: navigationUC,
		SettingsUC:   settingsUC,
		OverrideUC:   overrideUC,
		LayoutUC:     layoutUC,
		GroupsUC:     groupsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
