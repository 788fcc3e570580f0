// main is the entry point for the devpulse CLI.
package main

import (
	"github.com/huangsam/devpulse/cmd"
	"github.com/huangsam/devpulse/internal"
	"github.com/huangsam/devpulse/internal/iocache"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; the token can come from the environment.
	_ = godotenv.Load()

	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		iocache.CloseCaching()
		internal.FatalError("command failed", err)
	}
}
