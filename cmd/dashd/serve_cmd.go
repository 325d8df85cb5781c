package main

import (
	"flag"
	"log"
	"os"

	"github.com/ahmadalarjah/crypto-admin/internal/config"
	"github.com/ahmadalarjah/crypto-admin/internal/infra/db"
	httpinfra "github.com/ahmadalarjah/crypto-admin/internal/infra/http"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.FromEnv()

	store, err := db.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	srv, err := httpinfra.NewServer(cfg, store)
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
	return 0
}
