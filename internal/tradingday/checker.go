package tradingday

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Checker answers trading-day queries for one broker, memoizing answers in a
// JSON file keyed by date string. Cache trouble is never fatal: a broken or
// unwritable cache just means the rules run again next time.
type Checker struct {
	rules     Rules
	cachePath string
	cache     map[string]bool
	logger    *slog.Logger
}

// NewChecker creates a checker for broker (see BrokerRules) caching under
// cacheDir.
func NewChecker(broker, cacheDir string, logger *slog.Logger) (*Checker, error) {
	rules, err := BrokerRules(broker)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &Checker{
		rules:     rules,
		cachePath: filepath.Join(cacheDir, fmt.Sprintf("trading_day_cache_%s.json", broker)),
		cache:     make(map[string]bool),
		logger:    logger,
	}
	c.loadCache()
	return c, nil
}

// BrokerName returns the broker's display name.
func (c *Checker) BrokerName() string {
	return c.rules.Name
}

// IsTradingDay reports whether date is a business day for the broker.
func (c *Checker) IsTradingDay(date time.Time) bool {
	key := date.Format("2006-01-02")
	if v, ok := c.cache[key]; ok {
		return v
	}

	v := c.rules.evaluate(date)
	c.cache[key] = v
	c.saveCache()
	return v
}

func (c *Checker) loadCache() {
	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("trading day cache unreadable", "path", c.cachePath, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, &c.cache); err != nil {
		c.logger.Warn("trading day cache corrupt, ignoring", "path", c.cachePath, "error", err)
		c.cache = make(map[string]bool)
	}
}

func (c *Checker) saveCache() {
	if err := os.MkdirAll(filepath.Dir(c.cachePath), 0o755); err != nil {
		c.logger.Warn("cannot create cache dir", "error", err)
		return
	}
	data, err := json.MarshalIndent(c.cache, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(c.cachePath, data, 0o644); err != nil {
		c.logger.Warn("cannot save trading day cache", "path", c.cachePath, "error", err)
	}
}
