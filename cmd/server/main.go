package main

import (
	"flag"
	"log"

	"github.com/banachtech/randexp/api"
	"github.com/banachtech/randexp/config"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the server config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	server := api.NewServer()
	log.Printf("pricing server listening on %s", cfg.Server.Addr)
	if err := server.Start(cfg.Server.Addr); err != nil {
		log.Fatalf("cannot start server: %v", err)
	}
}
