package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/wrenchworks/repair-shop-api/internal/config"
	dbpkg "github.com/wrenchworks/repair-shop-api/internal/db"
	"github.com/wrenchworks/repair-shop-api/internal/logger"
	"github.com/wrenchworks/repair-shop-api/internal/middleware"
	"github.com/wrenchworks/repair-shop-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db)

	slog.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
