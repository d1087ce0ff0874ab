package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"cargocal/cmd/fx/account_fx"
	"cargocal/cmd/fx/activity_fx"
	"cargocal/cmd/fx/calendar_fx"
	"cargocal/cmd/fx/color_fx"
	"cargocal/cmd/fx/controllers_fx"
	"cargocal/cmd/fx/db_fx"
	"cargocal/cmd/fx/mail_fx"
	"cargocal/cmd/fx/memcache_fx"
	"cargocal/cmd/fx/progress_fx"
	"cargocal/cmd/fx/ws_fx"
	"cargocal/internal/api/controllers"
	"cargocal/internal/policy"
	"cargocal/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		ws_fx.Module,

		account_fx.Module,
		calendar_fx.Module,
		activity_fx.Module,
		progress_fx.Module,
		color_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	chargeController *controllers.ChargeController,
	trackingController *controllers.TrackingController,
	progressController *controllers.ProgressController,
	activityController *controllers.ActivityController,
	colorController *controllers.ColorController,
	wsController *controllers.WSController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		eventController,
		chargeController,
		trackingController,
		progressController,
		activityController,
		colorController,
		wsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	eventController *controllers.EventController,
	chargeController *controllers.ChargeController,
	trackingController *controllers.TrackingController,
	progressController *controllers.ProgressController,
	activityController *controllers.ActivityController,
	colorController *controllers.ColorController,
	wsController *controllers.WSController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/login", accountController.Login)
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/forgot-password", accountController.RequestPasswordReset)
	authGroup.POST("/reset-password", accountController.ResetPassword)

	calendarGroup := r.Group("/calendar")
	calendarGroup.Use(middleware.JWTAuthMiddleware())

	calendarGroup.GET("/events", eventController.ListEvents)
	calendarGroup.GET("/events/:eventId", eventController.GetEventById)
	calendarGroup.POST("/events", eventController.CreateEvent)
	calendarGroup.PUT("/events/:eventId", eventController.UpdateEvent)
	calendarGroup.DELETE("/events/:eventId", eventController.DeleteEvent)

	calendarGroup.PUT("/charges/:chargeId/status", chargeController.UpdateChargeStatus)
	calendarGroup.GET("/charges/:chargeId/tracking", trackingController.GetTrackingForCharge)
	calendarGroup.GET("/events/:eventId/tracking", trackingController.GetTrackingForActivity)

	calendarGroup.GET("/activities", activityController.ListActivities)
	calendarGroup.GET("/colors", colorController.ListColors)

	assignGroup := calendarGroup.Group("")
	assignGroup.Use(middleware.RequireRole(policy.CanManageAssignments))
	assignGroup.POST("/events/:eventId/responsables", chargeController.AddResponsable)
	assignGroup.DELETE("/events/:eventId/responsables/:userId", chargeController.RemoveResponsable)

	progressGroup := calendarGroup.Group("")
	progressGroup.Use(middleware.RequireRole(policy.CanViewTeamProgress))
	progressGroup.GET("/progress", progressController.GetProgress)

	catalogGroup := calendarGroup.Group("")
	catalogGroup.Use(middleware.RequireRole(policy.CanManageCatalog))
	catalogGroup.POST("/activities", activityController.CreateActivity)
	catalogGroup.PUT("/activities/:activityId", activityController.UpdateActivity)
	catalogGroup.DELETE("/activities/:activityId", activityController.DeleteActivity)

	colorGroup := calendarGroup.Group("")
	colorGroup.Use(middleware.RequireRole(policy.CanManageColors))
	colorGroup.PUT("/colors", colorController.SetColor)

	r.GET("/ws", middleware.JWTAuthMiddleware(), wsController.Upgrade)
}
