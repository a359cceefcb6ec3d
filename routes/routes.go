package routes

import (
	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/middlewares"
	"nutritrack/services"
	"nutritrack/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(cfg *config.Config, log *logrus.Logger, st *store.Store) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery())

	authSvc := services.NewAuthService(st, cfg.JWTSecret)
	nutritionSvc := services.NewNutritionService(st)

	authCtl := controllers.NewAuthController(authSvc)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc)
	logCtl := controllers.NewLogController(st)
	foodCtl := controllers.NewFoodController(st)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected routes
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware([]byte(cfg.JWTSecret)))
	{
		authed.GET("/user/nutrition", nutritionCtl.GetNutritionReport)
		authed.GET("/users/:username/nutrition", nutritionCtl.GetNutritionReportByUsername)

		authed.POST("/user/logs", logCtl.CreateMacroLog)
		authed.POST("/user/micro-logs", logCtl.CreateMicroLog)

		authed.GET("/foods", foodCtl.ListFoods)
		authed.POST("/foods", foodCtl.CreateFood)
		authed.GET("/foods/:id/micronutrients", foodCtl.GetFoodMicronutrients)
	}

	if cfg.IsDevelopment() {
		dev := controllers.NewDevController(st)
		r.POST("/dev/seed", dev.SeedTestData)
	}

	return r
}
