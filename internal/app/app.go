// Package app wires the configured check together and runs one
// probe-evaluate-report cycle.
package app

import (
	"context"
	"log/slog"

	"github.com/jouir/check-teamredminer/internal/api"
	"github.com/jouir/check-teamredminer/internal/checkers/miner"
	"github.com/jouir/check-teamredminer/internal/config"
	"github.com/jouir/check-teamredminer/internal/core/check"
)

// ServiceName prefixes the plugin output line.
const ServiceName = "TEAMREDMINER"

// Run performs one check invocation and returns the exit code and the
// output line. It never fails: probe errors surface as an UNKNOWN
// outcome through the runner's recovery boundary.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) (int, string) {
	client := &api.Client{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Timeout: cfg.Timeout,
		Log:     log,
	}
	probe := &miner.Probe{Client: client, Log: log}

	runner := check.NewRunner(probe, log,
		&check.BelowThreshold{
			NameValue: "hashrate",
			Warning:   cfg.HashrateWarning,
			Critical:  cfg.HashrateCritical,
		},
		&check.BelowThreshold{
			NameValue: "uptime",
			Warning:   cfg.UptimeWarning,
			Critical:  cfg.UptimeCritical,
		},
		&check.AboveThreshold{
			NameValue: "temperature",
			Warning:   cfg.TemperatureWarning,
			Critical:  cfg.TemperatureCritical,
		},
		&check.AboveThreshold{
			NameValue: "memory_temperature",
			Warning:   cfg.MemoryTemperatureWarning,
			Critical:  cfg.MemoryTemperatureCritical,
		},
		&check.BoolEquality{
			NameValue: "alive",
			Expected:  cfg.AliveExpected,
			Warning:   cfg.AliveWarning,
			Critical:  cfg.AliveCritical,
		},
	)

	outcome := runner.Run(ctx)
	return outcome.Severity.ExitCode(), check.Render(ServiceName, outcome)
}
