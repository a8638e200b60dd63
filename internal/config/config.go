package config

import "time"

// Config drives one check invocation. Threshold bounds are pointers so
// an unset bound disables that severity tier instead of collapsing to
// zero.
type Config struct {
	Host    string        `yaml:"host" mapstructure:"host" envconfig:"MINER_HOST"`
	Port    int           `yaml:"port" mapstructure:"port" envconfig:"MINER_PORT"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" envconfig:"MINER_TIMEOUT"`

	HashrateWarning  *float64 `yaml:"hashrate_warning" mapstructure:"hashrate_warning" envconfig:"MINER_HASHRATE_WARNING"`
	HashrateCritical *float64 `yaml:"hashrate_critical" mapstructure:"hashrate_critical" envconfig:"MINER_HASHRATE_CRITICAL"`
	UptimeWarning    *float64 `yaml:"uptime_warning" mapstructure:"uptime_warning" envconfig:"MINER_UPTIME_WARNING"`
	UptimeCritical   *float64 `yaml:"uptime_critical" mapstructure:"uptime_critical" envconfig:"MINER_UPTIME_CRITICAL"`

	TemperatureWarning        *float64 `yaml:"temperature_warning" mapstructure:"temperature_warning" envconfig:"MINER_TEMPERATURE_WARNING"`
	TemperatureCritical       *float64 `yaml:"temperature_critical" mapstructure:"temperature_critical" envconfig:"MINER_TEMPERATURE_CRITICAL"`
	MemoryTemperatureWarning  *float64 `yaml:"memory_temperature_warning" mapstructure:"memory_temperature_warning" envconfig:"MINER_MEMORY_TEMPERATURE_WARNING"`
	MemoryTemperatureCritical *float64 `yaml:"memory_temperature_critical" mapstructure:"memory_temperature_critical" envconfig:"MINER_MEMORY_TEMPERATURE_CRITICAL"`

	AliveExpected bool `yaml:"alive_expected" mapstructure:"alive_expected" envconfig:"MINER_ALIVE_EXPECTED"`
	AliveWarning  bool `yaml:"alive_warning" mapstructure:"alive_warning" envconfig:"MINER_ALIVE_WARNING"`
	AliveCritical bool `yaml:"alive_critical" mapstructure:"alive_critical" envconfig:"MINER_ALIVE_CRITICAL"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level" envconfig:"LOG_LEVEL"`
}

func DefaultConfig() Config {
	return Config{
		Host:                      "127.0.0.1",
		Port:                      4028,
		Timeout:                   time.Second,
		TemperatureWarning:        Bound(70),
		TemperatureCritical:       Bound(90),
		MemoryTemperatureWarning:  Bound(90),
		MemoryTemperatureCritical: Bound(110),
		AliveExpected:             true,
		AliveCritical:             true,
	}
}

// Bound builds an enabled threshold bound.
func Bound(v float64) *float64 {
	return &v
}
