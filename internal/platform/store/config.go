package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	ES  ESConfig
	RDS RedisConfig
	CH  CHConfig
}

// ESConfig configures search index connectivity
type ESConfig struct {
	Enabled   bool
	Addresses []string
	Username  string
	Password  string

	// Guard/boot knobs:
	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// RedisConfig configures the cache backend
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// CHConfig configures clickhouse connectivity for the run warehouse
type CHConfig struct {
	Enabled bool
	Addr    string
	DB      string
	Role    string
}
