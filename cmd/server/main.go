package main

import (
	"landing-go/internal/config"
	"landing-go/internal/logger"
	"landing-go/internal/web"
)

func main() {
	cfg := config.Load()

	log := logger.New("app")
	defer log.Sync()

	server := web.NewServer(cfg, log)
	if err := server.Start(); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
