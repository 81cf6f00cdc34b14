package main

import (
	"mwaniki-news/pkg/config"
	"mwaniki-news/pkg/handlers"
	"mwaniki-news/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Initialize config
	config.Init()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store := services.NewStore(config.DataPath, config.SeedPath, logger)
	handlers.Init(store, logger)

	r := gin.Default()

	// Session Setup
	sessionStore := cookie.NewStore([]byte(config.SessionSecret()))
	r.Use(sessions.Sessions("newsadmin", sessionStore))

	// Uploaded cover images
	r.Static(config.MediaURL, config.MediaDir)

	// --- Auth Routes ---
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// --- Public API ---
	api := r.Group("/api")
	{
		api.GET("/articles", handlers.GetArticles)
		api.GET("/article/:id", handlers.GetArticle)
		api.GET("/feed", handlers.GetFeed)
		api.GET("/search", handlers.SearchArticles)
		api.GET("/breaking", handlers.GetBreaking)
		api.GET("/home", handlers.GetHome)
		api.GET("/categories", handlers.GetCategories)
		api.GET("/config", handlers.GetSiteConfig)
	}

	// --- Admin API (Authorized) ---
	admin := r.Group("/api")
	admin.Use(handlers.AuthRequired)
	{
		admin.PUT("/articles", handlers.UpdateArticles)
		admin.POST("/article", handlers.SaveArticle)
		admin.DELETE("/article/:id", handlers.DeleteArticle)
		admin.GET("/media", handlers.ListMedia)
		admin.POST("/media", handlers.UploadMedia)
		admin.DELETE("/media", handlers.DeleteMedia)
	}

	logger.Info("starting server", zap.String("addr", config.ListenAddr))
	r.Run(config.ListenAddr)
}
