package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"account-hub/internal/client"
	"account-hub/internal/client/cli"
	"account-hub/internal/client/session"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "account-hub server base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "path to the local session database")
	flag.Parse()

	ctx := context.Background()

	if err := os.MkdirAll(filepath.Dir(*sessionPath), 0o700); err != nil {
		log.Fatalf("failed to prepare session directory: %v", err)
	}

	sessions, err := session.Open(ctx, *sessionPath)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}
	defer sessions.Close()

	api := client.New(*server)
	app := cli.NewApp(api, sessions)
	app.Run(ctx)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(home, ".account-hub", "session.db")
}
