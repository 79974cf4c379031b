package routes

import (
	"log"

	_ "bathroom_quote_saver/docs" // swagger metadata
	"bathroom_quote_saver/internal/adapter/http/handlers"
	repository "bathroom_quote_saver/internal/adapter/persistence/repository"
	"bathroom_quote_saver/internal/infrastructure/config"
	"bathroom_quote_saver/internal/infrastructure/database"
	"bathroom_quote_saver/internal/infrastructure/email"
	"bathroom_quote_saver/internal/infrastructure/llm"
	"bathroom_quote_saver/internal/infrastructure/pdf"
	"bathroom_quote_saver/internal/usecase"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewQuoteRequestDynamoRepository(ddb, cfg.Tables.QuoteRequests)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	adjustmentRepo := repository.NewCostAdjustmentDynamoRepository(ddb, cfg.Tables.CostAdjustments)
	projectRepo := repository.NewSavedProjectDynamoRepository(ddb, cfg.Tables.SavedProjects)

	var estimator interfaces.ICostEstimator
	openaiEstimator, err := llm.NewOpenAIEstimator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		log.Printf("Cost estimator not configured, using fallback pricing: %v", err)
	} else {
		estimator = openaiEstimator
	}

	emailGateway := email.NewSendGridGateway(cfg.Email.SendGridAPIKey, cfg.Email.SenderEmail, cfg.Email.SenderName)
	renderer := pdf.NewMarotoRenderer()

	quoteUseCase := usecase.NewQuoteUseCase(requestRepo, quoteRepo, adjustmentRepo, estimator)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo, requestRepo)
	documentUseCase := usecase.NewDocumentUseCase(quoteRepo, requestRepo, renderer, emailGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	supplierHandler := handlers.NewSupplierHandler()
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addQuotingRoutes(api, quoteHandler, supplierHandler, projectHandler, documentHandler)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
}
