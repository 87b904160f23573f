package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/vitrum-studio/vitrum-backend/api/controllers"
	"github.com/vitrum-studio/vitrum-backend/api/routes"
	"github.com/vitrum-studio/vitrum-backend/internal/components"
	"github.com/vitrum-studio/vitrum-backend/internal/packages"
	"github.com/vitrum-studio/vitrum-backend/pkg/config"
	"github.com/vitrum-studio/vitrum-backend/pkg/db"
	"github.com/vitrum-studio/vitrum-backend/pkg/logger"
	"github.com/vitrum-studio/vitrum-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	componentRepo := components.NewRepository(dbClient.DB())
	alternativeRepo := components.NewAlternativeRepository(dbClient.DB())
	membershipRepo := packages.NewMembershipRepository(dbClient.DB())
	packageRepo := packages.NewRepository(dbClient.DB())

	componentService, err := components.NewService(components.ServiceParams{
		ComponentRepo:   componentRepo,
		AlternativeRepo: alternativeRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create component service", err)
		os.Exit(1)
	}

	packageService, err := packages.NewService(packages.ServiceParams{
		DB:              dbClient,
		PackageRepo:     packageRepo,
		MembershipRepo:  membershipRepo,
		ComponentRepo:   componentRepo,
		AlternativeRepo: alternativeRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create package service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, controllers.Services{
			Packages:   packageService,
			Components: componentService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
