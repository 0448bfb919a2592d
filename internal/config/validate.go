package config

import (
	"errors"
	"fmt"
)

var validBrokers = map[string]bool{
	"fxtf":      true,
	"saxo_bank": true,
	"gmo_coin":  true,
}

var validOverlapKeys = map[string]bool{
	"direction":      true,
	"direction+pair": true,
}

var validStrategies = map[string]bool{
	"per_component": true,
	"greedy_global": true,
}

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if !validBrokers[c.Broker] {
		return fmt.Errorf("broker must be one of fxtf, saxo_bank, gmo_coin, got %q", c.Broker)
	}
	if c.DaysToCollect < 1 {
		return errors.New("days_to_collect must be >= 1")
	}
	if c.MaxCandidates < 1 {
		return errors.New("max_candidates must be >= 1")
	}
	if !validOverlapKeys[c.Dedup.OverlapKey] {
		return fmt.Errorf("dedup.overlap_key must be direction or direction+pair, got %q", c.Dedup.OverlapKey)
	}
	if !validStrategies[c.Dedup.Strategy] {
		return fmt.Errorf("dedup.strategy must be per_component or greedy_global, got %q", c.Dedup.Strategy)
	}

	if c.Database.Enabled {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}
	return nil
}

func (db *DatabaseConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
