package main

import (
	"fmt"
	"os"

	"workorder_invoicing/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
