package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	dbfx "github.com/FRUITS-CAPRESE/Oidemase/cmd/fx/db_fx"
	predictionfx "github.com/FRUITS-CAPRESE/Oidemase/cmd/fx/prediction_fx"
	sessionfx "github.com/FRUITS-CAPRESE/Oidemase/cmd/fx/session_fx"
	spotsfx "github.com/FRUITS-CAPRESE/Oidemase/cmd/fx/spots_fx"
	"github.com/FRUITS-CAPRESE/Oidemase/internal/api/controllers"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/middleware"
	"github.com/FRUITS-CAPRESE/Oidemase/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		dbfx.Module,
		predictionfx.Module,
		spotsfx.Module,
		sessionfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, client utils.PredictionClientInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return client.Close()
		},
	})
}

func ProvideRouter(
	spotsController *controllers.SpotsController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, spotsController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	spotsController *controllers.SpotsController,
	sessionController *controllers.SessionController) {

	api := r.Group("/api")

	api.POST("/sessions", sessionController.CreateSessionHandler)

	spotsGroup := api.Group("/spots")
	spotsGroup.GET("", spotsController.ListSpotsHandler)
	spotsGroup.GET("/:id", spotsController.GetSpotByIdHandler)

	sessionGroup := api.Group("/session")
	sessionGroup.Use(middleware.SessionAuthMiddleware())
	sessionGroup.GET("", sessionController.GetSessionHandler)
	sessionGroup.POST("/prefetch", sessionController.PrefetchHandler)
	sessionGroup.POST("/spots/:id/select", sessionController.SelectSpotHandler)
	sessionGroup.POST("/alternatives", sessionController.FindAlternativesHandler)
	sessionGroup.POST("/modal/close", sessionController.CloseModalHandler)
}
