package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is the fallback when config leaves it unset; a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second

func shutdownWindow(configured time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}
	return shutdownTimeout
}
