package main

import (
	"fmt"
	"os"

	"github.com/MikeBiancalana/datespan/internal/cli"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment and config.yaml still apply
	if err := godotenv.Load(); err == nil {
		if err := logger.InitializeWithConfig(logger.ConfigFromEnv()); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		}
		logger.Debug("main: loaded .env")
	}

	err := cli.Execute()
	logger.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
