package config

// Default values for optional configuration fields.
const (
	DefaultInputDir      = "./output_fx"
	DefaultEntrypointDir = "./entrypoint_fx"
	DefaultOutputDir     = "./entrypoint_fx_merged"
	DefaultCacheDir      = "./trading_day_cache"
	DefaultBroker        = "gmo_coin"
	DefaultDaysToCollect = 7
	DefaultMaxCandidates = 10000
	DefaultOverlapKey    = "direction"
	DefaultStrategy      = "per_component"
	DefaultDBPort        = 5432
	DefaultDBSSLMode     = "prefer"
	DefaultMaxConns      = 4
	DefaultMinConns      = 1
	DefaultLogLevel      = "info"
)

func (c *Config) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.EntrypointDir == "" {
		c.EntrypointDir = DefaultEntrypointDir
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}
	if c.Broker == "" {
		c.Broker = DefaultBroker
	}
	if c.DaysToCollect == 0 {
		c.DaysToCollect = DefaultDaysToCollect
	}
	if c.MaxCandidates == 0 {
		c.MaxCandidates = DefaultMaxCandidates
	}
	if c.Dedup.OverlapKey == "" {
		c.Dedup.OverlapKey = DefaultOverlapKey
	}
	if c.Dedup.Strategy == "" {
		c.Dedup.Strategy = DefaultStrategy
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}
}
