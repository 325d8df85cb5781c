package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/ahmadalarjah/crypto-admin/internal/config"
	"github.com/ahmadalarjah/crypto-admin/internal/gateway"
)

func runCall(args []string) int {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var method string
	var path string
	var body string
	fs.StringVar(&method, "method", "GET", "HTTP method")
	fs.StringVar(&path, "path", "", "request path, e.g. /api/admin/deposits?status=PENDING")
	fs.StringVar(&body, "body", "", "JSON request body")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "call requires --path")
		return 1
	}

	var query url.Values
	if idx := strings.Index(path, "?"); idx >= 0 {
		parsed, err := url.ParseQuery(path[idx+1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse query: %v\n", err)
			return 1
		}
		query = parsed
		path = path[:idx]
	}

	var payload any
	if body != "" {
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			fmt.Fprintf(os.Stderr, "parse body: %v\n", err)
			return 1
		}
	}

	cfg := config.FromEnv()
	store, err := sessionStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init session store: %v\n", err)
		return 1
	}
	client := gateway.NewClient(cfg.UpstreamBaseURL, gateway.WithSessionStore(store))

	result, err := client.Call(context.Background(), strings.ToUpper(method), path, query, payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call failed: %v\n", err)
		return 1
	}
	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))
	return 0
}
