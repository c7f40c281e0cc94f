// Package catchers answers "who was catching for this team at time t" within one game.
//
// A Resolver holds a sorted list of half-open intervals that always cover the
// whole timeline. It starts with one interval open on both ends mapped to the
// starting catcher; every substitution closes the open tail at the substitution
// time and opens a new tail for the incoming player.
package catchers

import (
	"errors"
	"sort"
	"time"
)

// ErrOutOfOrder is returned when a substitution is applied before the start of the current tail.
var ErrOutOfOrder = errors.New("catchers: substitution precedes current interval")

// Interval is one contiguous span [Start, End) during which CatcherID was behind the plate.
// OpenStart and OpenEnd mark the unbounded ends of the timeline.
type Interval struct {
	Start     time.Time
	End       time.Time
	OpenStart bool
	OpenEnd   bool
	CatcherID *int
}

// Contains reports whether t falls inside the interval.
func (i Interval) Contains(t time.Time) bool {
	if !i.OpenStart && t.Before(i.Start) {
		return false
	}
	if !i.OpenEnd && !t.Before(i.End) {
		return false
	}
	return true
}

// Resolver maps timestamps to the catcher in the game for a single team.
// bounds[k] is the start of interval k+1; ids has one more entry than bounds.
type Resolver struct {
	bounds []time.Time
	ids    []*int
}

// New returns a resolver whose single interval maps every time to starting.
// A nil starting catcher is kept as the unknown sentinel.
func New(starting *int) *Resolver {
	return &Resolver{ids: []*int{cloneID(starting)}}
}

// Substitute closes the open tail at at and opens a new tail mapped to catcherID.
func (r *Resolver) Substitute(at time.Time, catcherID *int) error {
	if n := len(r.bounds); n > 0 && at.Before(r.bounds[n-1]) {
		return ErrOutOfOrder
	}
	r.bounds = append(r.bounds, at)
	r.ids = append(r.ids, cloneID(catcherID))
	return nil
}

// CatcherAt returns the catcher whose interval contains t. Exactly one interval matches any t.
func (r *Resolver) CatcherAt(t time.Time) *int {
	idx := sort.Search(len(r.bounds), func(i int) bool {
		return r.bounds[i].After(t)
	})
	return cloneID(r.ids[idx])
}

// Intervals returns a copy of the covering intervals in chronological order.
func (r *Resolver) Intervals() []Interval {
	out := make([]Interval, len(r.ids))
	for i := range r.ids {
		iv := Interval{CatcherID: cloneID(r.ids[i])}
		if i == 0 {
			iv.OpenStart = true
		} else {
			iv.Start = r.bounds[i-1]
		}
		if i == len(r.ids)-1 {
			iv.OpenEnd = true
		} else {
			iv.End = r.bounds[i]
		}
		out[i] = iv
	}
	return out
}

// Len returns the number of intervals.
func (r *Resolver) Len() int {
	return len(r.ids)
}

func cloneID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
