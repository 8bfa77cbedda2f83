package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spektr-org/bikeshare/config"
	"github.com/spektr-org/bikeshare/prompt"
	"github.com/spektr-org/bikeshare/report"
	"github.com/spektr-org/bikeshare/session"
	"github.com/spektr-org/bikeshare/trips"
)

// ============================================================================
// BIKESHARE CLI — Explore US bike share trips from the terminal
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "Path to config.yml (default: config.yml or config/config.yml if present)")
	dataDir := flag.String("data", "", "Directory holding the city CSV files (overrides config)")
	verbose := flag.Bool("v", false, "Write diagnostic logs to stderr")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `bikeshare — explore US bike share data

Usage:
  bikeshare
  bikeshare -data ./data
  bikeshare -config config.yml -v

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  %s    Path to the config file
  %s  Directory holding the city CSV files
  %s   true to write diagnostic logs to stderr

Cities:
  chicago, new york city, washington
`, config.EnvConfig, config.EnvDataDir, config.EnvVerbose)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("bikeshare %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	// ── Configuration ─────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *verbose {
		cfg.Verbose = true
	}

	config.InitLogging(cfg.Verbose)
	if cfg.Source != "" {
		log.Printf("⚙️ Loaded config from %s", cfg.Source)
	}
	log.Printf("📁 Data directory: %s, page size %d", cfg.DataDir, cfg.PageSize)

	registry, err := trips.NewRegistry(cfg.DataDir, cfg.CityFiles())
	if err != nil {
		fatalf("invalid city configuration: %v", err)
	}

	// ── Run ───────────────────────────────────────────────────────────────
	p := prompt.New(os.Stdin, os.Stdout)
	s := session.New(registry, p, report.New(os.Stdout), cfg.PageSize)
	if err := s.Run(); err != nil {
		fatalf("%v", err)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
