package main

import (
	"fmt"
	"log"

	"github.com/AV-automacoes/restaurante-bom-prato/configs"
	"github.com/AV-automacoes/restaurante-bom-prato/middlewares"
	"github.com/AV-automacoes/restaurante-bom-prato/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("🚀 server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
