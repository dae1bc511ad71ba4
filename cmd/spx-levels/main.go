package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/quangvo55/spx-levels/internal/collector"
	"github.com/quangvo55/spx-levels/internal/config"
	"github.com/quangvo55/spx-levels/internal/levels"
	"github.com/quangvo55/spx-levels/internal/notifier"
	"github.com/quangvo55/spx-levels/internal/output"
	"github.com/quangvo55/spx-levels/internal/recorder"
	"github.com/quangvo55/spx-levels/internal/scheduler"
)

var (
	flagConfig string
	flagSymbol string
	flagDays   int
	flagNoVIX  bool
	flagOutput string
	flagTop    int
)

func main() {
	// .env is optional; real config comes from YAML + environment.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "spx-levels",
		Short: "Compute confluence-ranked technical levels for an index or stock",
		Long: "spx-levels fetches historical OHLCV data, detects swing points, generates\n" +
			"levels from Fibonacci retracement, volume-by-price, round numbers, recent\n" +
			"price action and moving averages, then groups and ranks them by confluence.",
		RunE:          runAnalyze,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path (default configs/config.yaml)")
	rootCmd.Flags().StringVar(&flagSymbol, "symbol", "", "ticker symbol to analyze (overrides config)")
	rootCmd.Flags().IntVar(&flagDays, "days", 0, "number of daily bars to analyze (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoVIX, "no-vix", false, "skip the volatility index context")
	rootCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for report files (overrides config)")
	rootCmd.Flags().IntVar(&flagTop, "top", 0, "levels per side in the report (overrides config)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis on a cron schedule and deliver reports via Telegram",
		RunE:  runServe,
	}
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "configs/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flagSymbol != "" {
		cfg.DataSource.Symbol = flagSymbol
	}
	if flagDays > 0 {
		cfg.DataSource.Days = flagDays
	}
	if flagNoVIX {
		cfg.DataSource.VolatilitySymbol = ""
	}
	if flagOutput != "" {
		cfg.Output.Dir = flagOutput
	}
	if flagTop > 0 {
		cfg.Output.TopLevels = flagTop
	}

	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	return cfg, nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.Provider == "polygon" || (cfg.DataSource.Provider == "" && cfg.DataSource.APIKey != "") {
		return collector.NewPolygonFetcher(cfg.DataSource.APIKey)
	}
	return collector.NewYahooFetcher(cfg.Proxy)
}

func analyzerParams(cfg *config.Config) levels.Params {
	a := cfg.Analysis
	return levels.Params{
		SwingOrder:     a.SwingOrder,
		SmoothWindow:   a.SmoothWindow,
		FibPairs:       a.FibPairs,
		VolumeBins:     a.VolumeBins,
		VolumeClusters: a.VolumeClusters,
		PivotWindow:    a.PivotWindow,
		MAWindows:      a.MAWindows,
		NearbyPct:      a.NearbyPct,
		GroupThreshold: a.GroupThreshold,
		VolMAWindow:    a.VolMAWindow,
	}
}

func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Warnf("init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return rec
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	fetcher := newFetcher(cfg)
	log.Infof("data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.VolatilitySymbol, cfg.DataSource.Days)
	an := levels.NewAnalyzer(analyzerParams(cfg))

	writer, err := output.NewWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	rec := newRecorder(cfg)
	defer rec.Close()

	sched := scheduler.NewScheduler(context.Background(), col, an, nil, rec, writer, cfg.Output.TopLevels)
	text, err := sched.RunOnce()
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServe(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	fetcher := newFetcher(cfg)
	log.Infof("data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.VolatilitySymbol, cfg.DataSource.Days)
	an := levels.NewAnalyzer(analyzerParams(cfg))

	writer, err := output.NewWriter(cfg.Output.Dir)
	if err != nil {
		return err
	}
	rec := newRecorder(cfg)
	defer rec.Close()

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, an, tn, rec, writer, cfg.Output.TopLevels)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		return fmt.Errorf("register cron task: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Info("Telegram polling started")

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Info("spx-levels is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	return nil
}
