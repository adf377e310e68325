package routes

import (
	"context"
	"os"
	"strconv"

	_ "servicevale/docs" // This will be auto-generated
	"servicevale/internal/adapter/http/dto/request"
	"servicevale/internal/adapter/http/handlers"
	repository "servicevale/internal/adapter/persistence/repository"
	"servicevale/internal/auth"
	"servicevale/internal/infrastructure/database"
	"servicevale/internal/infrastructure/storage"
	"servicevale/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	request.RegisterValidations()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger := logrus.StandardLogger()

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		logger.Fatalf("Failed to load AWS config: %v", err)
	}
	ddb := database.ConnectDynamoDB(awsCfg)
	objects := storage.NewS3ObjectStorage(awsCfg)

	tokens := auth.NewTokenService(os.Getenv("JWT_SECRET"), 0)
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@servicevale.in"
	}

	engineerRepo := repository.NewEngineerDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	billRepo := repository.NewBillDynamoRepository(ddb)
	photoSetRepo := repository.NewPhotoSetDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)

	authUseCase := usecase.NewAuthUseCase(accountRepo, tokens, logger)
	engineerUseCase := usecase.NewEngineerUseCase(engineerRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, engineerRepo, notificationRepo, adminEmail, logger)
	billUseCase := usecase.NewBillUseCase(billRepo, logger)
	photoUseCase := usecase.NewPhotoSetUseCase(photoSetRepo, objects, logger)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(billUseCase, orderRepo, notificationUseCase, logger)

	api := apiHandlers{
		auth:          handlers.NewAuthHandler(authUseCase),
		engineers:     handlers.NewEngineerHandler(engineerUseCase),
		orders:        handlers.NewOrderHandler(orderUseCase),
		bills:         handlers.NewBillHandler(billUseCase),
		photos:        handlers.NewPhotoHandler(photoUseCase),
		notifications: handlers.NewNotificationHandler(notificationUseCase),
		dashboard:     handlers.NewDashboardHandler(dashboardUseCase),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, tokens, api)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
