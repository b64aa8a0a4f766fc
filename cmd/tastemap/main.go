package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tastemap/internal/config"
	"tastemap/internal/ingest"
	"tastemap/internal/normalize"
	"tastemap/internal/registry"
	"tastemap/internal/resolve"
	"tastemap/internal/service"
	"tastemap/internal/similarity"
	"tastemap/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var registryPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/tastemap/config.yaml if not provided)")
	flag.StringVar(&registryPath, "registry", "", "Path to canonical-name registry CSV")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: tastemap [--config=config.yaml] --registry=names.csv embeddings.json [more.json ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Assemble components
	norm := normalize.New(cfg.Normalizer.Prefixes, cfg.Normalizer.Suffixes)
	scorer := similarity.NewScorer(norm)
	scorer.DropTokenLen = cfg.Scorer.DropTokenLen
	if cfg.Scorer.FuzzyWordMatch != nil {
		scorer.FuzzyWordMatch = *cfg.Scorer.FuzzyWordMatch
	}
	if cfg.Scorer.LengthPenalty != nil {
		scorer.LengthPenalty = *cfg.Scorer.LengthPenalty
	}
	resolver := resolve.New(norm, scorer)

	store := registry.NewStore()
	if registryPath != "" {
		names, err := ingest.LoadRegistryCSV(registryPath)
		if err != nil {
			log.Fatalf("failed to load registry: %v", err)
		}
		store.Add(names...)
	}

	svc := service.NewAnalysisService(resolver, store,
		cfg.Resolver.RegistryThreshold, cfg.Resolver.LabelThreshold, logger)
	analysis, err := svc.IngestUploads(inputs)
	if err != nil {
		log.Fatalf("ingest failed: %v", err)
	}

	m := tui.New(svc, analysis, service.Summary(analysis))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
