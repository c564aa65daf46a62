package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"warren-server/internal/engine"
	"warren-server/internal/server"
	"warren-server/internal/version"
	"warren-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()

	var seed int64
	var radius float64
	var port string
	// -seed 0 означает случайный сид на каждую партию.
	flag.Int64Var(&seed, "seed", 0, "Base world seed (0 for random)")
	flag.Float64Var(&radius, "radius", cfg.Radius, "Island radius in world units")
	flag.StringVar(&port, "port", "", "HTTP port (overrides WARREN_PORT)")
	flag.Parse()

	logger.Log.Info("Starting Warren Server...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit base seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random base seed: %d", cfg.Seed)
	}
	cfg.Radius = radius

	if port == "" {
		port = os.Getenv("WARREN_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Shutdown()

	logger.Log.Info("Done.")
}
