package router

import (
	"time"

	"github.com/carelink-dev/carelink/internal/handlers"
	"github.com/carelink-dev/carelink/internal/middleware"
	"github.com/carelink-dev/carelink/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/refresh", handlers.RefreshToken)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		patients := api.Group("/patients", middleware.AuthMiddleware())
		{
			patients.GET("", handlers.ListPatients)
			patients.POST("", handlers.CreatePatient)
			patients.GET("/:id", handlers.GetPatient)
			patients.PUT("/:id", handlers.UpdatePatient)
			patients.PATCH("/:id", handlers.PatchPatient)
			patients.DELETE("/:id", handlers.DeletePatient)
		}

		doctors := api.Group("/doctors", middleware.AuthMiddleware())
		{
			doctors.GET("", handlers.ListDoctors)
			doctors.POST("", handlers.CreateDoctor)
			doctors.GET("/export", handlers.ExportDoctors)
			doctors.GET("/:id", handlers.GetDoctor)
			doctors.PUT("/:id", handlers.UpdateDoctor)
			doctors.PATCH("/:id", handlers.PatchDoctor)
			doctors.DELETE("/:id", handlers.DeleteDoctor)
		}

		mappings := api.Group("/mappings", middleware.AuthMiddleware())
		{
			mappings.GET("", handlers.ListMappings)
			mappings.POST("", handlers.CreateMapping)
			mappings.DELETE("/:id", handlers.DeleteMapping)
			mappings.GET("/patient/:patient_id", handlers.ListPatientDoctors)
		}
	}

	return r
}
