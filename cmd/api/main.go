package main

import (
	"log"
	"net/http"
	"time"

	"github.com/BruksfildServices01/barber-finder/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-finder/internal/db"
	"github.com/BruksfildServices01/barber-finder/internal/middleware"
	"github.com/BruksfildServices01/barber-finder/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
