package main

import (
	"log"

	"github.com/alfagnish/users-api/internal/config"
	"github.com/alfagnish/users-api/internal/server"
	"github.com/alfagnish/users-api/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.TLS()
	st := store.New(store.TLSSeed())

	srv := server.New(cfg, server.NewRouter(st))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
