package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stadtkapelle/eisenstadt-backend/config"
	"github.com/stadtkapelle/eisenstadt-backend/internal/handlers"
	"github.com/stadtkapelle/eisenstadt-backend/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		public.GET("/locations", handlers.ListLocations)
		public.GET("/locations/search", handlers.SearchLocationsByAddress)
		public.GET("/locations/:id", handlers.GetLocation)

		public.GET("/events", handlers.ListEvents)
		public.GET("/events/:id", handlers.GetEvent)

		public.GET("/gigs", handlers.ListGigs)
		public.GET("/gigs/:id", handlers.GetGig)

		public.GET("/galleries", handlers.ListGalleries)
		public.GET("/galleries/:id", handlers.GetGallery)
		public.GET("/galleries/:id/images", handlers.ListGalleryImages)

		public.GET("/members", handlers.ListMembers)
		public.GET("/members/:id", handlers.GetMember)

		public.GET("/about", handlers.GetAbout)
		public.GET("/welcome", handlers.GetWelcome)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		protected.POST("/locations", handlers.CreateLocation)
		protected.PUT("/locations/:id", handlers.UpdateLocation)
		protected.DELETE("/locations/:id", handlers.DeleteLocation)

		protected.POST("/events", handlers.CreateEvent)
		protected.PUT("/events/:id", handlers.UpdateEvent)
		protected.DELETE("/events/:id", handlers.DeleteEvent)

		protected.POST("/gigs", handlers.CreateGig)
		protected.PUT("/gigs/:id", handlers.UpdateGig)
		protected.DELETE("/gigs/:id", handlers.DeleteGig)

		protected.POST("/galleries", handlers.CreateGallery)
		protected.PUT("/galleries/:id", handlers.UpdateGallery)
		protected.DELETE("/galleries/:id", handlers.DeleteGallery)
		protected.POST("/galleries/:id/images", handlers.UploadGalleryImage)
		protected.DELETE("/images/:id", handlers.DeleteImage)

		protected.POST("/members", handlers.CreateMember)
		protected.PUT("/members/:id", handlers.UpdateMember)
		protected.DELETE("/members/:id", handlers.DeleteMember)

		protected.PUT("/about", handlers.PutAbout)
		protected.PUT("/welcome", handlers.PutWelcome)
	}
}
