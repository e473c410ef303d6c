// Package main starts the PR reviewer assignment HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DragonCaesar2004/Code-review-assigner/internal/config"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/database"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/database/migrate"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/health"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/middleware"
	pullrequestrouter "github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/router"
	statisticsrouter "github.com/DragonCaesar2004/Code-review-assigner/internal/statistics/router"
	teamrouter "github.com/DragonCaesar2004/Code-review-assigner/internal/team/router"
	userrouter "github.com/DragonCaesar2004/Code-review-assigner/internal/user/router"
	"github.com/DragonCaesar2004/Code-review-assigner/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New()
	if err != nil {
		zlog.Fatalw("connect database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Up(db); err != nil {
		zlog.Fatalw("apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zlog), middleware.RequestLogger(zlog))

	r.GET("/health", health.New(db, zlog).Check)
	teamrouter.RegisterRoutes(r, db, zlog)
	userrouter.RegisterRoutes(r, db, zlog)
	pullrequestrouter.RegisterRoutes(r, db, zlog)
	statisticsrouter.RegisterRoutes(r, db, zlog)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	zlog.Infow("server starting", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatalw("server stopped", "error", err)
	}
}
