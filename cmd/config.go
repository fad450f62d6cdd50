package main

import "time"

// Config is read from the environment (and an optional .env file).
// Empty BADGER_FILEPATH / BLUGE_FILEPATH mean in-memory stores scoped to
// the session; empty REDIS_URL means the process-local medium; a zero
// DEBUG_PORT disables the HTTP inspect page.
type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	PollInterval         time.Duration `env:"POLL_INTERVAL,default=300ms"`
	HealthInterval       time.Duration `env:"HEALTH_INTERVAL,default=5s"`
	SeenWindow           int           `env:"SEEN_WINDOW,default=1024"`
	EventBuffer          int           `env:"EVENT_BUFFER,default=1024"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s"`
	LatencyThreshold     time.Duration `env:"LATENCY_THRESHOLD,default=2s"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=64"`
	TimelineDepth        int           `env:"TIMELINE_DEPTH,default=50"`
	DebugPort            int           `env:"DEBUG_PORT"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH"`
	RedisURL             string        `env:"REDIS_URL"`
	RedisStream          string        `env:"REDIS_STREAM"`
}
