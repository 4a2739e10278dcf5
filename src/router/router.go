package router

import (
	"user-analytics-service/src/controller"
	"user-analytics-service/src/rabbitmq"
	"user-analytics-service/src/repository"
	"user-analytics-service/src/service"

	"github.com/gin-gonic/gin"
)

// NewRouter sets up the router for the analytics service.
// It creates a new gin.Engine, wires the repository and services into the
// controller, and registers the analytics routes.
func NewRouter(repo *repository.UserRepository, publisher rabbitmq.Publisher) *gin.Engine {
	router := gin.Default()

	analytics := service.NewAnalyticsService(repo, publisher)
	controller := controller.NewAnalyticsController(analytics)

	router.POST("/register", controller.Register)
	router.POST("/recordSession", controller.RecordSession)
	router.GET("/totalActivity", controller.TotalActivity)
	router.GET("/inactiveUsers", controller.InactiveUsers)
	router.GET("/monthlyActivity", controller.MonthlyActivity)

	return router
}
