package main

import (
	"net/http"

	"pokehub/backend/internal/auth"
	"pokehub/backend/internal/config"
	"pokehub/backend/internal/database"
	"pokehub/backend/internal/handler"
	"pokehub/backend/internal/mail"
	"pokehub/backend/internal/notify"
	"pokehub/backend/internal/repository"
	"pokehub/backend/internal/service"
	"pokehub/backend/pkg/logger"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "pokehub/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
	logger.Init()
}

// @title           Pokehub API
// @version         1.0
// @description     This is the API for the Pokehub poke and habit reminder service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	defer logger.Sync()

	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	logger.Info("Database connection established")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceTokenRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	pokeRepo := repository.NewPokeRepository(db)
	habitRepo := repository.NewHabitRepository(db)

	// Outbound ports; push delivery runs off the request path.
	dispatcher := notify.NewAsyncDispatcher(notify.LogDispatcher{}, 256)
	defer dispatcher.Close()
	mailer := mail.LogSender{}

	// Services
	authService := service.NewAuthService(userRepo, mailer)
	userService := service.NewUserService(userRepo)
	deviceService := service.NewDeviceService(deviceRepo)
	friendshipService := service.NewFriendshipService(userRepo, friendshipRepo, deviceRepo, dispatcher, mailer)
	pokeService := service.NewPokeService(pokeRepo, userRepo, deviceRepo, friendshipRepo, dispatcher)
	habitService := service.NewHabitService(habitRepo, friendshipRepo, deviceRepo, dispatcher)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, deviceService)
	friendHandler := handler.NewFriendHandler(friendshipService)
	pokeHandler := handler.NewPokeHandler(pokeService)
	habitHandler := handler.NewHabitHandler(habitService)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/forgot_password", authHandler.ForgotPassword)
		}

		// Current user routes (protected)
		userRoutes := apiV1.Group("/user")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", userHandler.GetMe)
			userRoutes.PUT("", userHandler.UpdateMe)
			userRoutes.POST("/add_device_token", userHandler.AddDeviceToken)
			userRoutes.GET("/friend_requests", friendHandler.ListFriendRequests)
			userRoutes.GET("/friends", friendHandler.ListFriends)
			userRoutes.POST("/friend_requests/:id/accept", friendHandler.AcceptRequest)
			userRoutes.POST("/friend_requests/:id/decline", friendHandler.DeclineRequest)
		}

		// User directory routes (protected)
		usersRoutes := apiV1.Group("/users")
		usersRoutes.Use(auth.AuthMiddleware())
		{
			usersRoutes.GET("/search", userHandler.SearchUsers) // Must be before /:id
			usersRoutes.GET("/:id", userHandler.GetUserByID)
			usersRoutes.POST("/:id/send_request", friendHandler.SendRequest)
			usersRoutes.POST("/:id/unfriend", friendHandler.Unfriend)
		}

		// Poke routes (protected)
		pokeRoutes := apiV1.Group("/pokes")
		pokeRoutes.Use(auth.AuthMiddleware())
		{
			pokeRoutes.GET("/prototypes", pokeHandler.ListPrototypes)
			pokeRoutes.POST("/prototypes", pokeHandler.CreatePrototype)
			pokeRoutes.GET("/prototypes/:id", pokeHandler.GetPrototype)
			pokeRoutes.PUT("/prototypes/:id", pokeHandler.UpdatePrototype)
			pokeRoutes.DELETE("/prototypes/:id", pokeHandler.DeletePrototype)
			pokeRoutes.POST("/prototypes/:id/send", pokeHandler.SendPoke)

			// :id is the friend's user ID for GET, the poke ID for the
			// response routes (the route tree shares the segment name).
			pokeRoutes.GET("/:id", pokeHandler.ListPokes)
			pokeRoutes.POST("/:id/response", pokeHandler.RespondToPoke)
			pokeRoutes.POST("/:id/response/yes", pokeHandler.RespondYes)
			pokeRoutes.POST("/:id/response/no", pokeHandler.RespondNo)
		}

		// Habit routes (protected)
		habitRoutes := apiV1.Group("/habits")
		habitRoutes.Use(auth.AuthMiddleware())
		{
			habitRoutes.GET("", habitHandler.ListHabits)
			habitRoutes.POST("", habitHandler.CreateHabit)
			habitRoutes.POST("/:id/reject", habitHandler.RejectHabit)
			habitRoutes.POST("/:id/done", habitHandler.CompleteHabit)
		}
	}

	logger.Info("Server is running", "addr", config.AppConfig.ServerAddr)
	logger.Info("Swagger UI is available at /swagger/index.html")
	if err := router.Run(config.AppConfig.ServerAddr); err != nil {
		logger.Fatal("Server exited", err)
	}
}
