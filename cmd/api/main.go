package main

import (
	"context"
	"log"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/handlers"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/middleware"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/routes"
	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/config"
	"github.com/Techluminate-Academy/bsn-directory/internal/config/db"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/internal/store"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	ctx := context.Background()

	gormDB, err := db.Init()
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	if err := gormDB.AutoMigrate(&schema.FormVersion{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mongoClient, err := store.Connect(ctx, config.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	redisStore, err := cache.NewRedisStore(&cache.Config{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisStore.Close()

	uploader, err := blob.NewMinioUploader(ctx, blob.Config{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		UseSSL:    config.MinioUseSSL,
		Bucket:    config.MinioBucket,
		PublicURL: config.MinioPublicURL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to object store: %v", err)
	}

	airtableClient := airtable.NewClient(config.AirtableAPIKey, config.AirtableBaseID, config.AirtableTableID)

	repos := repository.NewRepositories(gormDB, mongoClient.Database(config.MongoDatabase))
	services := application.New(repos, application.Deps{
		API:      airtableClient,
		Cache:    redisStore,
		Uploader: uploader,
		CacheTTL: config.CacheTTL,
	})
	handlersInstance := handlers.New(services, uploader)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(monitoring.GinMiddleware())

	routes.RegisterRoutes(router, handlersInstance)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
