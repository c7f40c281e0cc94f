package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrReason   = "reason"
	AttrOutcome  = "outcome"
)

// Audit outcomes for a single game.
const (
	OutcomeAudited = "audited"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)
