package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	lib "github.com/theoremus-urban-solutions/bikeshare-stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (default: ./config.yml when present)")
	dataDir := flag.String("data", "", "directory holding the city CSV files (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}

	logger := internal.InitLogging(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := lib.NewSession(cfg, os.Stdin, os.Stdout, logger)
	if err := session.Run(ctx); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout)
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.AppConfig, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	if err := config.LoadAppConfig(); err != nil {
		return config.AppConfig{}, err
	}
	return config.Config, nil
}
