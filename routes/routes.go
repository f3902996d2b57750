package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	ai := services.NewGeminiService()
	weather := services.NewWeatherService()
	moodSvc := services.NewMoodService(config.DB)

	healthCtl := controllers.NewHealthController(services.NewHealthService(config.DB))
	moodCtl := controllers.NewMoodController(moodSvc)
	foodCtl := controllers.NewFoodController(services.NewFoodService(config.DB, ai))
	scheduleCtl := controllers.NewScheduleController(services.NewScheduleService(config.DB))
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(config.DB, weather, moodSvc))
	chatCtl := controllers.NewChatController(ai)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	health := r.Group("/health")
	health.Use(middlewares.AuthMiddleware())
	{
		health.POST("", healthCtl.LogDay)
		health.GET("", healthCtl.List)
		health.GET("/report", healthCtl.Report)
		health.POST("/simulate", healthCtl.SimulateDay)
	}

	mood := r.Group("/mood")
	mood.Use(middlewares.AuthMiddleware())
	{
		mood.POST("", moodCtl.LogMood)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("", foodCtl.LogFood)
		food.GET("/summary", foodCtl.TodaySummary)
		food.DELETE("/:id", foodCtl.DeleteFood)
	}

	schedule := r.Group("/schedule")
	schedule.Use(middlewares.AuthMiddleware())
	{
		schedule.POST("/events", scheduleCtl.AddEvent)
		schedule.GET("/events", scheduleCtl.ListEvents)
		schedule.DELETE("/events/:id", scheduleCtl.DeleteEvent)
		schedule.POST("/hobbies", scheduleCtl.AddHobby)
		schedule.GET("/hobbies", scheduleCtl.ListHobbies)
		schedule.DELETE("/hobbies/:id", scheduleCtl.DeleteHobby)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", dashboardCtl.GetInsights)
		dashboard.GET("/alerts", dashboardCtl.RecentAlerts)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/chat", chatCtl.Chat)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtl.AlertsWS)
	}

	return r
}
