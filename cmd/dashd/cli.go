package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ahmadalarjah/crypto-admin/internal/config"
	"github.com/ahmadalarjah/crypto-admin/internal/session"
)

func run(args []string) int {
	if len(args) < 2 {
		return runServe(nil)
	}

	switch args[1] {
	case "serve":
		return runServe(args[2:])
	case "login":
		return runLogin(args[2:])
	case "logout":
		return runLogout(args[2:])
	case "whoami":
		return runWhoami(args[2:])
	case "call":
		return runCall(args[2:])
	}

	usage(args)
	return 1
}

func usage(args []string) {
	name := "dashd"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s serve\n", name)
	fmt.Fprintf(os.Stderr, "  %s login --phone <number> --password <password>\n", name)
	fmt.Fprintf(os.Stderr, "  %s logout\n", name)
	fmt.Fprintf(os.Stderr, "  %s whoami\n", name)
	fmt.Fprintf(os.Stderr, "  %s call --method <GET|POST|PUT|DELETE> --path </api/admin/...> [--body <json>]\n", name)
}

// sessionStore picks the Redis-backed store when REDIS_ADDR is set,
// otherwise a file under the user config dir (or SESSION_FILE).
func sessionStore(cfg config.Config) (session.Store, error) {
	if cfg.RedisAddr != "" {
		return session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.AdminRole)
	}
	path := cfg.SessionFile
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(base, "crypto-admin", "session.json")
	}
	return session.NewFileStore(path, cfg.AdminRole), nil
}
