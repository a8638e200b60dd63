// Package miner extracts check metrics from the miner's "summary" and
// "devs" commands. Metric presence is purely data-driven: a missing
// optional field emits no metric and is never an error, only a
// transport or protocol failure aborts the probe.
package miner

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/jouir/check-teamredminer/internal/core/check"
)

// API is the request surface of api.Client, narrowed for testing.
type API interface {
	Request(ctx context.Context, command string) (any, error)
}

type Probe struct {
	Client API
	Log    *slog.Logger
}

func (p *Probe) Probe(ctx context.Context) ([]check.Metric, error) {
	log := p.logger()
	var metrics []check.Metric

	summary, err := p.Client.Request(ctx, "summary")
	if err != nil {
		return nil, err
	}
	if record, ok := firstRecord(summary); ok {
		if hashrate, ok := numberField(record, "MHS 30s"); ok {
			log.Info("hashrate", "mhs", hashrate)
			metrics = append(metrics, check.Numeric("hashrate", hashrate, "MH/s", "hashrate"))
		}
		if uptime, ok := numberField(record, "Elapsed"); ok {
			log.Info("uptime", "seconds", uptime)
			metrics = append(metrics, check.Numeric("uptime", uptime, "s", "uptime"))
		}
	}

	devs, err := p.Client.Request(ctx, "devs")
	if err != nil {
		return nil, err
	}
	records, _ := devs.([]any)
	for _, raw := range records {
		device, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		gpu, ok := numberField(device, "GPU")
		if !ok {
			continue
		}
		id := strconv.Itoa(int(gpu))

		if status, ok := stringField(device, "Status"); ok {
			alive := status == "Alive"
			log.Info("gpu status", "gpu", id, "alive", alive)
			metrics = append(metrics, check.Bool("alive_"+id, alive, "alive"))
		}
		if temperature, ok := numberField(device, "Temperature"); ok {
			log.Info("gpu temperature", "gpu", id, "celsius", temperature)
			metrics = append(metrics, check.Numeric("temperature_"+id, temperature, "C", "temperature"))
		}
		if temperature, ok := numberField(device, "TemperatureMem"); ok {
			log.Info("gpu memory temperature", "gpu", id, "celsius", temperature)
			metrics = append(metrics, check.Numeric("memory_temperature_"+id, temperature, "C", "memory_temperature"))
		}
	}

	return metrics, nil
}

func (p *Probe) logger() *slog.Logger {
	if p.Log != nil {
		return p.Log
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// firstRecord unwraps the single-record array the "summary" command
// returns. An empty or differently shaped payload yields no record.
func firstRecord(payload any) (map[string]any, bool) {
	records, ok := payload.([]any)
	if !ok || len(records) == 0 {
		return nil, false
	}
	record, ok := records[0].(map[string]any)
	return record, ok
}

func numberField(record map[string]any, key string) (float64, bool) {
	value, ok := record[key].(float64)
	return value, ok
}

func stringField(record map[string]any, key string) (string, bool) {
	value, ok := record[key].(string)
	return value, ok
}
