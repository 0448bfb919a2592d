package config

// Config is the root configuration for both pipeline binaries.
type Config struct {
	// InputDir holds the scored analyzed_high_scores_* files.
	InputDir string `yaml:"input_dir"`

	// EntrypointDir is where the extractor writes and the collector reads
	// entrypoints_* files.
	EntrypointDir string `yaml:"entrypoint_dir"`

	// OutputDir is where the collector writes the merged table.
	OutputDir string `yaml:"output_dir"`

	// CacheDir holds the trading-day cache files.
	CacheDir string `yaml:"cache_dir"`

	// Broker selects the business-day rule set: fxtf, saxo_bank, gmo_coin.
	Broker string `yaml:"broker"`

	// DaysToCollect is the collector's lookback window in days.
	DaysToCollect int `yaml:"days_to_collect"`

	// MaxCandidates aborts a run whose combined input exceeds this size.
	MaxCandidates int `yaml:"max_candidates"`

	Dedup    DedupConfig    `yaml:"dedup"`
	Database DatabaseConfig `yaml:"database"`

	LogLevel string `yaml:"log_level"`
}

// DedupConfig controls the clustering and resolution behavior.
type DedupConfig struct {
	// OverlapKey is "direction" or "direction+pair".
	OverlapKey string `yaml:"overlap_key"`

	// DropSingletons removes clusters of size 1 before resolution.
	DropSingletons bool `yaml:"drop_singletons"`

	// Strategy is "per_component" or "greedy_global".
	Strategy string `yaml:"strategy"`
}

// DatabaseConfig holds the optional Postgres sink for resolved entry points.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}
