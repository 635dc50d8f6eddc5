package main

import (
	"log"

	"github.com/jacksonlee411/health-listener/internal/config"
	"github.com/jacksonlee411/health-listener/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	h := server.MustNewHandler(server.HandlerOptions{AccessLog: cfg.AccessLog})
	if err := server.New(cfg, h).ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
