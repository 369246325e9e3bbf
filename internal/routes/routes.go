package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-finder/internal/audit"
	"github.com/BruksfildServices01/barber-finder/internal/auth"
	"github.com/BruksfildServices01/barber-finder/internal/cache"
	"github.com/BruksfildServices01/barber-finder/internal/config"
	"github.com/BruksfildServices01/barber-finder/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-finder/internal/infra/repository"
	"github.com/BruksfildServices01/barber-finder/internal/middleware"
	"github.com/BruksfildServices01/barber-finder/internal/models"
	"github.com/BruksfildServices01/barber-finder/internal/storage"
	ucAmenity "github.com/BruksfildServices01/barber-finder/internal/usecase/amenity"
	ucShop "github.com/BruksfildServices01/barber-finder/internal/usecase/barbershop"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	shopRepo := infraRepo.NewBarbershopGormRepository(db)
	amenityRepo := infraRepo.NewAmenityGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var redisCache *cache.Redis
	if cfg.RedisAddr != "" {
		rc, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			redisCache = rc
		}
	}

	var remote storage.Backend
	if cfg.S3Bucket != "" {
		remote = storage.NewS3Backend(cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3BaseURL)
	}
	files, err := storage.NewService(cfg.UploadsDir, remote)
	if err != nil {
		log.Fatalf("failed to prepare uploads dir: %v", err)
	}

	// ======================================================
	// SERVICES / USE CASES
	// ======================================================
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTLHours, cfg.BcryptCost)

	createShopUC := ucShop.NewCreate(shopRepo, auditDispatcher)
	updateShopUC := ucShop.NewUpdate(shopRepo, auditDispatcher)
	deleteShopUC := ucShop.NewDelete(shopRepo, auditDispatcher)
	addAmenitiesUC := ucShop.NewAddAmenities(shopRepo, auditDispatcher)
	removeAmenityUC := ucShop.NewRemoveAmenity(shopRepo, auditDispatcher)
	addImagesUC := ucShop.NewAddImages(shopRepo, auditDispatcher)
	removeImageUC := ucShop.NewRemoveImage(shopRepo, auditDispatcher)

	createAmenityUC := ucAmenity.NewCreate(amenityRepo, auditDispatcher)
	updateAmenityUC := ucAmenity.NewUpdate(amenityRepo, auditDispatcher)
	deleteAmenityUC := ucAmenity.NewDelete(amenityRepo, auditDispatcher)
	popularUC := ucAmenity.NewGetPopular(amenityRepo, redisCache)
	byBarbershopsUC := ucAmenity.NewByBarbershops(amenityRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	shopHandler := handlers.NewBarbershopHandler(
		shopRepo,
		createShopUC,
		updateShopUC,
		deleteShopUC,
		addAmenitiesUC,
		removeAmenityUC,
	)
	amenityHandler := handlers.NewAmenityHandler(
		amenityRepo,
		createAmenityUC,
		updateAmenityUC,
		deleteAmenityUC,
		popularUC,
		byBarbershopsUC,
	)
	uploadHandler := handlers.NewUploadHandler(shopRepo, files, addImagesUC, removeImageUC)

	authMW := middleware.AuthMiddleware(authService)
	ownersOnly := middleware.RequireRoles(models.RoleBarber, models.RoleAdmin)
	adminsOnly := middleware.RequireRoles(models.RoleAdmin)

	// ======================================================
	// STATIC
	// ======================================================
	r.Static("/uploads", cfg.UploadsDir)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)

			authAPI.POST("/logout", authMW, authHandler.Logout)
			authAPI.GET("/me", authMW, authHandler.Me)
			authAPI.GET("/validate", authMW, authHandler.Validate)
			authAPI.PUT("/profile", authMW, authHandler.UpdateProfile)
			authAPI.PUT("/change-password", authMW, authHandler.ChangePassword)
		}

		// ------------------------------
		// BARBERSHOPS
		// ------------------------------
		shops := api.Group("/barbershops")
		{
			shops.GET("", shopHandler.List)
			shops.GET("/:id", shopHandler.Get)
			shops.GET("/:id/amenities", shopHandler.GetAmenities)

			secured := shops.Group("", authMW, ownersOnly)
			{
				secured.GET("/user/my-barbershops", shopHandler.MyBarbershops)
				secured.POST("", shopHandler.Create)
				secured.PUT("/:id", shopHandler.Update)
				secured.DELETE("/:id", shopHandler.Delete)

				secured.POST("/:id/amenities", shopHandler.AddAmenities)
				secured.DELETE("/:id/amenities/:amenityId", shopHandler.RemoveAmenity)

				secured.POST("/:id/images", uploadHandler.UploadImages)
				secured.DELETE("/:id/images", uploadHandler.DeleteImage)
			}
		}

		// ------------------------------
		// AMENITIES
		// ------------------------------
		amenities := api.Group("/amenities")
		{
			amenities.GET("", amenityHandler.List)
			amenities.GET("/popular", amenityHandler.Popular)
			amenities.GET("/:id", amenityHandler.Get)
			amenities.POST("/by-barbershops", amenityHandler.ByBarbershops)

			secured := amenities.Group("", authMW, adminsOnly)
			{
				secured.POST("", amenityHandler.Create)
				secured.PUT("/:id", amenityHandler.Update)
				secured.DELETE("/:id", amenityHandler.Delete)
			}
		}
	}
}
