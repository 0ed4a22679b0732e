package clindex

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	keyPrefix string

	nameWeight  float64
	fieldWeight float64
	maxDistance int

	defaultLimit  int
	maxLimit      int
	maxCandidates int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
// Valkey and Redis share a wire protocol, so this is an alias of WithValkey.
func WithRedis(addr, password string) Option {
	return WithValkey(addr, password)
}

// WithKeyPrefix sets the storage key prefix. Default: "clindex:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithRanking overrides the relevance weights and the fuzzy match distance.
// Zero values keep the defaults (0.5 name weight, 1.5 field weight,
// distance 3).
func WithRanking(nameWeight, fieldWeight float64, maxDistance int) Option {
	return optionFunc(func(c *clientConfig) {
		c.nameWeight = nameWeight
		c.fieldWeight = fieldWeight
		c.maxDistance = maxDistance
	})
}

// WithLimits sets the default and maximum result page sizes.
// Defaults: 20 and 100.
func WithLimits(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	})
}

// WithMaxCandidates caps how many stored clinics a single search will rank.
// Default: 5000.
func WithMaxCandidates(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxCandidates = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
