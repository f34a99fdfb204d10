package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/senaitabera/wellspring/internal/domain/contract"
	handlerHttp "github.com/senaitabera/wellspring/internal/handler/http"
	"github.com/senaitabera/wellspring/internal/infrastructure/config"
	database "github.com/senaitabera/wellspring/internal/infrastructure/database"
	"github.com/senaitabera/wellspring/internal/infrastructure/external_services"
	"github.com/senaitabera/wellspring/internal/infrastructure/jwt"
	"github.com/senaitabera/wellspring/internal/infrastructure/logger"
	"github.com/senaitabera/wellspring/internal/infrastructure/repository/mongodb"
	"github.com/senaitabera/wellspring/internal/infrastructure/store"
	"github.com/senaitabera/wellspring/internal/infrastructure/uuidgen"
	"github.com/senaitabera/wellspring/internal/infrastructure/validator"
	"github.com/senaitabera/wellspring/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize email service
	smtpHost := os.Getenv("EMAIL_HOST")
	smtpPort := os.Getenv("EMAIL_PORT")
	smtpUsername := os.Getenv("EMAIL_USERNAME")
	smtpPassword := os.Getenv("EMAIL_APP_PASSWORD")
	smtpFrom := os.Getenv("EMAIL_FROM")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	blogRepo := mongodb.NewBlogRepository(db)
	communityRepo := mongodb.NewCommunityRepository(db)
	consultationRepo := mongodb.NewConsultationRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	if err := blogRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create blog indexes: %v", err)
	}

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(smtpHost, smtpPort, smtpUsername, smtpPassword, smtpFrom)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()
	jwtManager := jwt.NewManager(jwtSecret)

	// Blog lookup cache: in-process by default, Redis when shared across
	// instances.
	var blogCache contract.IBlogCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := store.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		blogCache = store.NewRedisBlogCache(rdb, appConfig.GetBlogCacheTTL())
	} else {
		blogCache = store.NewMemoryBlogCache(appConfig.GetBlogCacheMaxKeys(), appConfig.GetBlogCacheTTL())
	}

	// Dependency Injection: Usecases
	blogUsecase := usecase.NewBlogUseCase(blogRepo, blogCache, uuidGenerator, appLogger)
	communityUsecase := usecase.NewCommunityUseCase(communityRepo, uuidGenerator, appLogger)
	consultationUsecase := usecase.NewConsultationUseCase(consultationRepo, mailService, appValidator, uuidGenerator, appLogger, appConfig.GetOfficeEmail())
	resourceUsecase := usecase.NewResourceUseCase(resourceRepo, uuidGenerator, appLogger, appConfig.GetResourceCacheTTL())
	commentUsecase := usecase.NewCommentUseCase(commentRepo, blogRepo, uuidGenerator, appLogger)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(blogUsecase, communityUsecase, consultationUsecase, resourceUsecase, commentUsecase, jwtManager)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
