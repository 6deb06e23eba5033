// Package main provides the entry point for the HTTP server.
package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accountRouter "docshelf/internal/account/router"
	"docshelf/internal/apidoc"
	composerRouter "docshelf/internal/composer/router"
	"docshelf/internal/config"
	customerRouter "docshelf/internal/customer/router"
	"docshelf/internal/database"
	"docshelf/internal/database/migrate"
	"docshelf/internal/health"
	"docshelf/internal/middleware"
	personRouter "docshelf/internal/person/router"
	teamRouter "docshelf/internal/team/router"
	"docshelf/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New()
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			zl.Errorw("failed to close database", "error", closeErr)
		}
	}()

	if err := migrate.Migrate(db); err != nil {
		zl.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zl))
	r.Use(middleware.Logger(zl))
	r.Use(cors.Default())

	accountRouter.RegisterRoutes(r, db, zl)
	composerRouter.RegisterRoutes(r, db, zl)
	personRouter.RegisterRoutes(r, db, zl)
	customerRouter.RegisterRoutes(r, db, zl)
	teamRouter.RegisterRoutes(r, db, zl)
	apidoc.RegisterRoutes(r)

	healthHandler := health.New(db, zl)
	r.GET("/health", healthHandler.Check)

	addr := cfg.Server.GetAddress()
	zl.Infow("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		zl.Fatalw("server stopped", "error", err)
	}
}
