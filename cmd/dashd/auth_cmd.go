package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ahmadalarjah/crypto-admin/internal/auth"
	"github.com/ahmadalarjah/crypto-admin/internal/config"
	"github.com/ahmadalarjah/crypto-admin/internal/gateway"
)

func runLogin(args []string) int {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var phone string
	var password string
	fs.StringVar(&phone, "phone", "", "account phone number")
	fs.StringVar(&password, "password", "", "account password")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if phone == "" || password == "" {
		fmt.Fprintln(os.Stderr, "login requires --phone and --password")
		return 1
	}

	cfg := config.FromEnv()
	store, err := sessionStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init session store: %v\n", err)
		return 1
	}
	client := gateway.NewClient(cfg.UpstreamBaseURL, gateway.WithSessionStore(store))
	gw := auth.NewGateway(client, store, cfg.AdminRole)

	sess, err := gw.Login(context.Background(), phone, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		return 1
	}
	fmt.Printf("logged in as %s (id %d)\n", sess.Username, sess.ID)
	return 0
}

func runLogout(args []string) int {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.FromEnv()
	store, err := sessionStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init session store: %v\n", err)
		return 1
	}
	gw := auth.NewGateway(nil, store, cfg.AdminRole)
	if err := gw.Logout(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "logout failed: %v\n", err)
		return 1
	}
	fmt.Println("logged out")
	return 0
}

func runWhoami(args []string) int {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.FromEnv()
	store, err := sessionStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init session store: %v\n", err)
		return 1
	}
	sess, err := store.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "not logged in")
		return 1
	}
	out, _ := json.MarshalIndent(sess.Identity, "", "  ")
	fmt.Println(string(out))
	return 0
}
