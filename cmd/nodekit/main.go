package main

import (
	"log"
	"os"

	"github.com/flowline-labs/nodekit/internal/adapters/driven/storage/sqlite"
	"github.com/flowline-labs/nodekit/internal/adapters/driving/cli"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	// Create the SQLite store for static credential persistence
	store, err := sqlite.NewStore("")
	if err != nil {
		log.Printf("failed to create SQLite store: %v", err)
		return 1
	}
	defer store.Close()

	cli.SetServices(&cli.Services{
		Credentials: store.CredentialStore(),
	})

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
