package config

import "time"

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Retry     RetryConfig     `yaml:"retry"`
	Breaker   BreakerConfig   `yaml:"breaker"`
	RateLimit RateLimitConfig `yaml:"rate_limit_headers"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// UpstreamConfig holds the upstream provider endpoint layout and the
// per-attempt transport timeouts.
type UpstreamConfig struct {
	BaseURL        string        `yaml:"base_url"`
	PostsPath      string        `yaml:"posts_path"`
	CommentsPath   string        `yaml:"comments_path"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
}

// RetryConfig holds retry behavior for upstream calls.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
}

// BreakerConfig holds circuit breaker settings for the upstream dependency.
type BreakerConfig struct {
	FailureThreshold int           `yaml:"failure_threshold"`
	Cooldown         time.Duration `yaml:"cooldown"`
	HalfOpenMaxCalls int           `yaml:"half_open_max_calls"`
}

// RateLimitConfig holds the policy values rendered on 429 problem
// responses. These are this service's advertised limits, not values read
// from the upstream.
type RateLimitConfig struct {
	RetryAfterSeconds int `yaml:"retry_after_seconds"`
	Limit             int `yaml:"limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
