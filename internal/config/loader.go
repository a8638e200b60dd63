package config

import (
	"bytes"
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Load builds the effective configuration: defaults, then the optional
// YAML config file, then .env and environment variable overrides.
// Passing an empty path skips the file layer entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := ReadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if path != "" {
		v := viper.New()
		v.SetConfigType("yaml")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = []byte(os.ExpandEnv(string(data)))
		if err := v.ReadConfig(bytes.NewBuffer(data)); err != nil {
			return nil, err
		}
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides copies values from the environment over the config,
// field by field, only for variables that are actually set. envconfig
// does the parsing; the guards keep unset variables from clobbering
// file values or defaults.
func applyEnvOverrides(cfg *Config) error {
	if !hasAnyEnv(envKeys()) {
		return nil
	}

	var ec Config
	if err := envconfig.Process("", &ec); err != nil {
		return err
	}

	if envNonEmpty("MINER_HOST") {
		cfg.Host = ec.Host
	}
	if envNonEmpty("MINER_PORT") {
		cfg.Port = ec.Port
	}
	if envNonEmpty("MINER_TIMEOUT") {
		cfg.Timeout = ec.Timeout
	}
	if envNonEmpty("MINER_HASHRATE_WARNING") {
		cfg.HashrateWarning = ec.HashrateWarning
	}
	if envNonEmpty("MINER_HASHRATE_CRITICAL") {
		cfg.HashrateCritical = ec.HashrateCritical
	}
	if envNonEmpty("MINER_UPTIME_WARNING") {
		cfg.UptimeWarning = ec.UptimeWarning
	}
	if envNonEmpty("MINER_UPTIME_CRITICAL") {
		cfg.UptimeCritical = ec.UptimeCritical
	}
	if envNonEmpty("MINER_TEMPERATURE_WARNING") {
		cfg.TemperatureWarning = ec.TemperatureWarning
	}
	if envNonEmpty("MINER_TEMPERATURE_CRITICAL") {
		cfg.TemperatureCritical = ec.TemperatureCritical
	}
	if envNonEmpty("MINER_MEMORY_TEMPERATURE_WARNING") {
		cfg.MemoryTemperatureWarning = ec.MemoryTemperatureWarning
	}
	if envNonEmpty("MINER_MEMORY_TEMPERATURE_CRITICAL") {
		cfg.MemoryTemperatureCritical = ec.MemoryTemperatureCritical
	}
	if envNonEmpty("MINER_ALIVE_EXPECTED") {
		cfg.AliveExpected = ec.AliveExpected
	}
	if envNonEmpty("MINER_ALIVE_WARNING") {
		cfg.AliveWarning = ec.AliveWarning
	}
	if envNonEmpty("MINER_ALIVE_CRITICAL") {
		cfg.AliveCritical = ec.AliveCritical
	}
	if envNonEmpty("LOG_LEVEL") {
		cfg.Log.Level = ec.Log.Level
	}

	return nil
}

func envKeys() []string {
	return []string{
		"MINER_HOST", "MINER_PORT", "MINER_TIMEOUT",
		"MINER_HASHRATE_WARNING", "MINER_HASHRATE_CRITICAL",
		"MINER_UPTIME_WARNING", "MINER_UPTIME_CRITICAL",
		"MINER_TEMPERATURE_WARNING", "MINER_TEMPERATURE_CRITICAL",
		"MINER_MEMORY_TEMPERATURE_WARNING", "MINER_MEMORY_TEMPERATURE_CRITICAL",
		"MINER_ALIVE_EXPECTED", "MINER_ALIVE_WARNING", "MINER_ALIVE_CRITICAL",
		"LOG_LEVEL",
	}
}

func hasAnyEnv(keys []string) bool {
	for _, key := range keys {
		if envNonEmpty(key) {
			return true
		}
	}
	return false
}

func envNonEmpty(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return val != ""
}
