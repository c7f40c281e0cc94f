// Package zone decides whether a tracked pitch location touches the strike zone.
//
// Distances are in feet. The plate is centered on px = 0 and the batter's zone
// is bounded vertically by the tracked top and bottom for that pitch. A pitch
// counts if any part of the ball could touch the zone, so both edges are
// widened by the ball radius.
package zone

import "math"

const (
	// PlateHalfWidth is half of the 17 inch plate.
	PlateHalfWidth = 17.0 / 12 / 2
	// BallRadius is half of a 2.94 inch ball.
	BallRadius = 2.94 / 12 / 2
	// HalfZoneWidth is the furthest |px| that still touches the plate.
	HalfZoneWidth = PlateHalfWidth + BallRadius
)

// WithinWidth reports whether the pitch crosses over some part of the plate.
func WithinWidth(px float64) bool {
	return math.Abs(px) < HalfZoneWidth
}

// WithinHeight reports whether the pitch is between the batter's zone bounds.
func WithinHeight(pz, top, bottom float64) bool {
	return pz < top+BallRadius && pz > bottom-BallRadius
}

// IsStrike reports whether the pitch location is a strike.
func IsStrike(px, pz, top, bottom float64) bool {
	return WithinWidth(px) && WithinHeight(pz, top, bottom)
}

// XMiss is how far outside the plate the pitch was horizontally; zero when within width.
func XMiss(px float64) float64 {
	if WithinWidth(px) {
		return 0
	}
	return math.Abs(px) - HalfZoneWidth
}

// YMiss is how far above or below the zone the pitch was; zero when within height.
func YMiss(pz, top, bottom float64) float64 {
	switch {
	case WithinHeight(pz, top, bottom):
		return 0
	case pz > top+BallRadius:
		return pz - top - BallRadius
	default:
		return bottom - BallRadius - pz
	}
}
