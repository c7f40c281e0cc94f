package mlbstats

import "time"

const (
	providerName       = "mlbstats"
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultHTTPTimeout = 15 * time.Second
	defaultUserAgent   = "umpire-auditor"
	sportIDMLB         = "1"

	schedulePath = "/api/v1/schedule"
	feedPathFmt  = "/api/v1.1/game/%d/feed/live"

	maxErrorBody = 512
)
