// Package cli is the flag surface around the check. It maps the
// configuration onto the core, prints the single plugin line on stdout
// and exits with the severity code. All logging goes to stderr so the
// monitoring supervisor only ever parses the plugin line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jouir/check-teamredminer/internal/app"
	"github.com/jouir/check-teamredminer/internal/config"
	"github.com/jouir/check-teamredminer/internal/core/check"
)

const version = "1.0.0"

var (
	cfgPath     string
	host        string
	port        int
	timeout     time.Duration
	verbose     bool
	debug       bool
	showVersion bool

	hashrateWarning     float64
	hashrateCritical    float64
	uptimeWarning       float64
	uptimeCritical      float64
	temperatureWarning  float64
	temperatureCritical float64
	memTempWarning      float64
	memTempCritical     float64
)

var rootCmd = &cobra.Command{
	Use:   "check_teamredminer",
	Short: "Nagios-style health check for the TeamRedMiner API",
	Long: `check_teamredminer probes a TeamRedMiner status API over TCP,
evaluates hashrate, uptime, temperatures and per-GPU liveness against
configurable thresholds, and reports one aggregated verdict in the
monitoring plugin convention (exit code plus status line).`,
	Run: runCheck,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Failed to execute check: %v\n", err)
		os.Exit(check.StatusUnknown.ExitCode())
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flags.StringVar(&host, "host", "127.0.0.1", "host address of the TeamRedMiner API")
	flags.IntVar(&port, "port", 4028, "port of the TeamRedMiner API")
	flags.DurationVar(&timeout, "timeout", time.Second, "connect and read timeout")

	flags.Float64Var(&hashrateWarning, "hashrate-warning", 0, "raise warning if hashrate goes below this threshold")
	flags.Float64Var(&hashrateCritical, "hashrate-critical", 0, "raise critical if hashrate goes below this threshold")
	flags.Float64Var(&uptimeWarning, "uptime-warning", 0, "raise warning if uptime goes below this threshold")
	flags.Float64Var(&uptimeCritical, "uptime-critical", 0, "raise critical if uptime goes below this threshold")
	flags.Float64Var(&temperatureWarning, "temperature-warning", 70, "raise warning if temperature goes over this threshold")
	flags.Float64Var(&temperatureCritical, "temperature-critical", 90, "raise critical if temperature goes over this threshold")
	flags.Float64Var(&memTempWarning, "memory-temperature-warning", 90, "raise warning if memory temperature goes over this threshold")
	flags.Float64Var(&memTempCritical, "memory-temperature-critical", 110, "raise critical if memory temperature goes over this threshold")

	flags.BoolVarP(&verbose, "verbose", "v", false, "print more output")
	flags.BoolVarP(&debug, "debug", "d", false, "print even more output")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
}

func runCheck(cmd *cobra.Command, args []string) {
	if showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Failed to execute check: %v\n", err)
		os.Exit(check.StatusUnknown.ExitCode())
	}
	applyFlagOverrides(cmd, cfg)

	log := buildLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code, line := app.Run(ctx, cfg, log)
	fmt.Println(line)
	os.Exit(code)
}

// applyFlagOverrides copies flags over the loaded config, but only the
// ones the caller actually passed: an untouched threshold flag must
// not enable a tier the config left unset.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = host
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("hashrate-warning") {
		cfg.HashrateWarning = config.Bound(hashrateWarning)
	}
	if flags.Changed("hashrate-critical") {
		cfg.HashrateCritical = config.Bound(hashrateCritical)
	}
	if flags.Changed("uptime-warning") {
		cfg.UptimeWarning = config.Bound(uptimeWarning)
	}
	if flags.Changed("uptime-critical") {
		cfg.UptimeCritical = config.Bound(uptimeCritical)
	}
	if flags.Changed("temperature-warning") {
		cfg.TemperatureWarning = config.Bound(temperatureWarning)
	}
	if flags.Changed("temperature-critical") {
		cfg.TemperatureCritical = config.Bound(temperatureCritical)
	}
	if flags.Changed("memory-temperature-warning") {
		cfg.MemoryTemperatureWarning = config.Bound(memTempWarning)
	}
	if flags.Changed("memory-temperature-critical") {
		cfg.MemoryTemperatureCritical = config.Bound(memTempCritical)
	}
}

func buildLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelWarn
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}
