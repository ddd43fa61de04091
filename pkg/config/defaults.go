package config

import "time"

// New returns a Config populated with built-in defaults, the lowest layer of
// the precedence chain (flags > env > file > defaults).
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Notify: NotifyConfig{
			MaxRetries: 2,
			RetryDelay: time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
