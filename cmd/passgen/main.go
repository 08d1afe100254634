package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/cli"
	"github.com/vaultpass/passgen-go/internal/config"
)

func main() {
	// A missing .env is normal for a CLI.
	_ = godotenv.Load()

	cfg := config.Load()
	root := cli.NewRootCmd(cli.Deps{DefaultLength: cfg.DefaultLength})

	os.Exit(cli.Execute(root, os.Stderr))
}
