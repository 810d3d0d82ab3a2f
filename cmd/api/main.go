package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/growcircle/growcircle-backend/config"
	"github.com/growcircle/growcircle-backend/internal/ai/gemini"
	apihttp "github.com/growcircle/growcircle-backend/internal/api/http"
	"github.com/growcircle/growcircle-backend/internal/api/http/middleware"
	"github.com/growcircle/growcircle-backend/internal/api/http/routes"
	"github.com/growcircle/growcircle-backend/internal/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	firebaseClients, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("failed to initialize Firebase: %v", err)
	}
	defer firebaseClients.Firestore.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	geminiClient, err := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL)
	if err != nil {
		log.Fatalf("failed to initialize Gemini client: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apihttp.NewHealthHandler("growcircle-backend", cfg.App.Version, firebaseClients.Firestore, rdb).RegisterRoutes(r)

	err = routes.RegisterV1(r, routes.V1Deps{
		Firebase:    firebaseClients,
		Redis:       rdb,
		Generator:   geminiClient,
		GeminiModel: cfg.Gemini.Model,
		BucketName:  cfg.Firebase.StorageBucket,
	})
	if err != nil {
		log.Fatalf("failed to register routes: %v", err)
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
