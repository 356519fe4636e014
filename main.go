package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/harshith718/ecolens/charts"
	"github.com/harshith718/ecolens/config"
	"github.com/harshith718/ecolens/sim"
	"github.com/harshith718/ecolens/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	days := flag.Int("days", 0, "Number of days to simulate (0 = use config)")
	initPrey := flag.Int("init-prey", -1, "Starting prey count (-1 = use config)")
	initPred := flag.Int("init-pred", -1, "Starting predator count (-1 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config)")
	outputDir := flag.String("output-dir", "out", "Output directory for history, report, and charts")
	noCharts := flag.Bool("no-charts", false, "Skip chart rendering")
	logDays := flag.Bool("log-days", false, "Emit per-day stats via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Apply flag overrides onto the loaded config, then re-validate
	if *days > 0 {
		cfg.Run.Days = *days
	}
	if *initPrey >= 0 {
		cfg.Population.InitPrey = *initPrey
	}
	if *initPred >= 0 {
		cfg.Population.InitPred = *initPred
	}
	if *seed != 0 {
		cfg.Run.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"days", cfg.Run.Days,
		"init_prey", cfg.Population.InitPrey,
		"init_pred", cfg.Population.InitPred,
		"seed", cfg.Run.Seed,
	)

	start := time.Now()
	history, err := sim.Run(cfg)
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	if *logDays {
		for i := 0; i < history.Len(); i++ {
			slog.Info("day", "stats", history.At(i))
		}
	}

	summary := telemetry.Summarize(history)
	slog.Info("simulation complete", "elapsed", elapsed, "summary", summary)

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	logPath, err := om.WriteHistory(history)
	if err != nil {
		slog.Error("failed to write history", "error", err)
		os.Exit(1)
	}
	if _, err := om.WriteCSV(history); err != nil {
		slog.Error("failed to write history CSV", "error", err)
		os.Exit(1)
	}
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	var graphs []string
	if !*noCharts {
		graphs, err = charts.RenderAll(history, om.Dir())
		if err != nil {
			slog.Error("failed to render charts", "error", err)
			os.Exit(1)
		}
	}

	reportPath, err := om.WriteReport(cfg, summary, graphs, logPath)
	if err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	slog.Info("outputs written", "report", reportPath, "log", logPath, "graphs", graphs)
}
