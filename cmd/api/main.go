package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rensdev/urenregistratie-api/internal/config"
	dbpkg "github.com/rensdev/urenregistratie-api/internal/db"
	"github.com/rensdev/urenregistratie-api/internal/logging"
	"github.com/rensdev/urenregistratie-api/internal/middleware"
	"github.com/rensdev/urenregistratie-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logging.Log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logging.Log.Fatalf("failed to start server: %v", err)
	}
}
