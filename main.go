package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shahmilc/LittleLemonAPI/configs"
	"github.com/shahmilc/LittleLemonAPI/middlewares"
	"github.com/shahmilc/LittleLemonAPI/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedGroups(); err != nil {
		log.Fatalf("seed groups failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.TimeoutMiddleware(cfg.StoreTimeout))

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
