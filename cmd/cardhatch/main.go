package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tiMaxal/cardhatch/internal/config"
	"github.com/tiMaxal/cardhatch/internal/pipeline"
	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/version"
)

func main() {
	configPath := flag.String("config", "cardhatch.yaml", "path to config file")
	input := flag.String("input", "", "input CSV file (overrides config)")
	output := flag.String("output", "", "output PDF file (overrides config)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[cardhatch] "))
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	cfg, err := loadConfig(*configPath, log)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}

	if cfg.Input == "" {
		log.Fatal("No input file: set input in the config or pass -input")
	}
	if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
		log.Fatal("Input file does not exist: %s", cfg.Input)
	}

	report, err := pipeline.New(cfg, log).Run(context.Background())
	if err != nil {
		log.Fatal("Run failed: %v", err)
	}

	report.Print(log)
}

// loadConfig falls back to defaults when the default config file is absent,
// so `cardhatch -input cards.csv` works without any config at all.
func loadConfig(path string, log *logger.Logger) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debug("Config file %s not found, using defaults", path)
		return config.Default(), nil
	}
	return config.Load(path)
}
