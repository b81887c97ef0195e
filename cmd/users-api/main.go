package main

import (
	"log"

	"github.com/alfagnish/users-api/internal/config"
	"github.com/alfagnish/users-api/internal/server"
	"github.com/alfagnish/users-api/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Plaintext()
	st := store.New(store.PlaintextSeed())

	srv := server.New(cfg, server.NewRouter(st))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
