package main

import (
	"context"
	"time"

	"museum-app/config"
	"museum-app/database"
	routes "museum-app/internal/app/http"
	"museum-app/internal/app/session"
	"museum-app/internal/infra/archive"
	"museum-app/internal/infra/curator"
	"museum-app/internal/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	if err := logging.Init(gin.Mode() == gin.ReleaseMode); err != nil {
		panic(err)
	}
	defer logging.Sync()

	db, err := database.Init(config.ARCHIVE_DB_URL)
	if err != nil {
		logging.L().Fatal("database init failed", zap.Error(err))
	}

	var ar archive.Archive
	if db != nil {
		ar = archive.NewPostgres(db, config.UPLOAD_DIR, config.PUBLIC_BASE_URL)
	} else {
		logging.L().Warn("no archive credentials configured, running with the mock collection")
		ar = archive.NewMock()
	}

	cur := curator.New(config.GEMINI_API_KEY, config.GEMINI_BASE_URL, config.GEMINI_MODEL)
	if !cur.Configured() {
		logging.L().Warn("no curator API key configured, analysis and chat are degraded")
	}

	sessions := session.NewManager(ar, cur, 30*time.Minute)
	go sessions.Sweep(context.Background())

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, sessions, ar, config.UPLOAD_DIR)

	if err := r.Run(":" + config.PORT); err != nil {
		logging.L().Fatal("server stopped", zap.Error(err))
	}
}
