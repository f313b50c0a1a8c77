package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"negobot/internal/adapter/api"
	"negobot/internal/adapter/api/handler"
	apimiddleware "negobot/internal/adapter/api/middleware"
	"negobot/internal/adapter/api/router"
	"negobot/internal/adapter/repository"
	"negobot/internal/infrastructure/completion"
	"negobot/internal/infrastructure/ratelimit"
	"negobot/internal/infrastructure/sessionlock"
	"negobot/internal/infrastructure/websocket"
	"negobot/internal/usecase"
	"negobot/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else if credentialsPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	itemRepo := repository.NewFirestoreItemRepository(firestoreClient)
	sessionStore := repository.NewRedisSessionStore(redisClient)

	completionClient := completion.NewClient(
		cfg.CompletionAPIKey,
		cfg.CompletionBaseURL,
		cfg.CompletionModel,
		cfg.CompletionMaxTokens,
		cfg.CompletionTemperature,
		cfg.CompletionTimeout,
	)

	locks := sessionlock.NewRegistry()
	stats := usecase.NewStatsAggregator()

	negotiationUseCase := usecase.NewNegotiationUseCase(
		itemRepo, sessionStore, completionClient, locks, stats, cfg.CatalogTimeout)
	itemUseCase := usecase.NewItemUseCase(itemRepo, sessionStore, stats)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Validator = api.NewValidator()

	negotiationHandler := handler.NewNegotiationHandler(negotiationUseCase)
	itemHandler := handler.NewItemHandler(itemUseCase)
	statusHandler := handler.NewStatusHandler(stats, negotiationUseCase, wsManager)
	wsHandler := handler.NewWebSocketHandler(wsManager, negotiationUseCase)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, negotiationHandler, itemHandler, statusHandler, wsHandler, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
