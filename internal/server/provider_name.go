package server

import (
	"strings"

	"github.com/preston-bernstein/umpire-auditor/internal/providers"
)

// providerName labels the provider in metrics and logs. A provider that names itself wins over config.
func providerName(raw string, provider providers.GameProvider) string {
	if named, ok := provider.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	return "provider"
}
