package config

import "time"

const (
	envPrefix     = "AUDITOR_"
	envConfigFile = "AUDITOR_CONFIG"

	defaultPort     = "4000"
	defaultProvider = ProviderMLBStats
	// the mlbstats feed is unauthenticated; stay well under anything that looks abusive
	defaultMinInterval     = 250 * time.Millisecond
	defaultMaxAttempts     = 4
	defaultInitialBackoff  = 500 * time.Millisecond
	defaultRequestTimeout  = 15 * time.Second
	defaultMetricsPort     = "9090"
	defaultDriver          = "memory"
	defaultWorkers         = 4
	defaultAuditInterval   = 6 * time.Hour
	defaultTimezone        = "America/Los_Angeles"
	defaultBadDataInches   = 7.0
	defaultShutdownTimeout = 10 * time.Second
)

// Provider names accepted by Config.Provider.
const (
	ProviderMLBStats = "mlbstats"
	ProviderFixture  = "fixture"
)

var defaultGameTypes = []string{"R", "F", "D", "L", "W"}
