// This file declares the entry and topology types, configuration options,
// and sentinel errors of the routing package.

package routing

import (
	"errors"
	"math"
)

// Sentinel errors for routing operations.
var (
	// ErrNoConvergence indicates that Synchronise exhausted its pass budget
	// without reaching a fixed point. This never happens for valid inputs
	// (non-negative edge costs, strict-improvement relaxation); it signals a
	// violated invariant and should be treated as an internal defect, not a
	// recoverable condition.
	ErrNoConvergence = errors.New("routing: synchronisation exceeded pass budget without reaching a fixed point")

	// ErrBadMaxPasses indicates WithMaxPasses was given a non-positive value.
	ErrBadMaxPasses = errors.New("routing: MaxPasses must be positive")
)

// StopID uniquely identifies a stop within a Topology.
// IDs are opaque to this package; the arena that owns the stops assigns them.
type StopID string

// NoStop is the "none" sentinel: no next hop, unknown stop, absent argument.
const NoStop StopID = ""

// Inf is the "unreachable" cost sentinel, guaranteed larger than any real
// path cost. CostTo returns Inf for destinations with no known route.
const Inf int64 = math.MaxInt64

// Topology resolves StopIDs against the arena of stops that owns them.
// A Table uses it to discover adjacency, edge costs, and neighbouring tables;
// it never holds direct references to other stops.
//
// Implementations must return neutral values for unknown IDs: an empty
// neighbour slice, a negative distance, a nil table.
type Topology interface {
	// Neighbours returns the stops directly linked to id, in the order the
	// links were registered.
	Neighbours(id StopID) []StopID

	// Distance returns the edge cost between two stops (Manhattan distance
	// between their coordinates), or a negative value if either is unknown.
	Distance(a, b StopID) int

	// TableOf returns the routing table owned by id, or nil if id is unknown.
	TableOf(id StopID) *Table
}

// Entry is one row of a routing table: the best known next hop toward a
// destination and the cumulative cost of the path through that hop.
//
// The two fields are never independently valid: whenever the cost is Inf the
// next hop is NoStop, and vice versa. The zero value behaves as the default
// (NoStop, Inf) entry.
type Entry struct {
	next StopID
	cost int64
}

// DefaultEntry returns the "no known route" entry: next hop NoStop, cost Inf.
func DefaultEntry() Entry {
	return Entry{next: NoStop, cost: Inf}
}

// NewEntry returns an entry routing via next at the given cost.
// An invalid combination (next == NoStop, a negative cost, or the Inf
// sentinel as a literal cost) degrades to DefaultEntry rather than
// producing a partially valid row; callers cannot construct an entry that
// violates the next/cost pairing invariant.
func NewEntry(next StopID, cost int64) Entry {
	if next == NoStop || cost < 0 || cost == Inf {
		return DefaultEntry()
	}

	return Entry{next: next, cost: cost}
}

// Cost returns the cumulative cost of this entry, or Inf for the default
// (and zero-value) entry.
func (e Entry) Cost() int64 {
	if e.next == NoStop {
		return Inf
	}

	return e.cost
}

// NextHop returns the next stop toward the destination, or NoStop when there
// is no known route.
func (e Entry) NextHop() StopID {
	return e.next
}

// Reachable reports whether this entry describes a usable route.
func (e Entry) Reachable() bool {
	return e.next != NoStop
}

// DefaultMaxPasses is the Synchronise pass budget when WithMaxPasses is not
// supplied. One pass relaxes every edge in the reachable network, so real
// topologies converge in far fewer passes than this.
const DefaultMaxPasses = 1024

// Options configures a routing Table.
type Options struct {
	// MaxPasses caps the number of full network sweeps a single Synchronise
	// call may perform before reporting ErrNoConvergence. Must be positive.
	MaxPasses int
}

// Option is a functional option for NewTable.
type Option func(*Options)

// DefaultOptions returns the Options used when none are supplied.
func DefaultOptions() Options {
	return Options{MaxPasses: DefaultMaxPasses}
}

// WithMaxPasses overrides the Synchronise pass budget.
// Panics with ErrBadMaxPasses if n is not positive.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxPasses.Error())
		}
		o.MaxPasses = n
	}
}
