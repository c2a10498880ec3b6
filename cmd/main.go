package main

import (
	"log"

	_ "time/tzdata"

	"github.com/clubhub-app/clubhub/cmd/server"
	"github.com/clubhub-app/clubhub/internal/adapters/config"
)

func main() {
	cfg := config.Get()

	srv, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	srv.Start()
}
