package graph

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph operations.
var (
	// ErrSelfLoop is returned by AddEdge when both endpoints are the same node.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrUnknownSelection is returned by ParseSelection for an unrecognized name.
	ErrUnknownSelection = errors.New("graph: unknown selection strategy")
)

// Unreachable is the distance reported for nodes the search never reached.
const Unreachable = math.MaxInt

// Selection chooses how the next node to finalize is picked.
type Selection int

const (
	// SelectHeap pops the minimum from a binary heap. Ties go to the entry
	// pushed first.
	SelectHeap Selection = iota

	// SelectScan scans all active nodes in insertion order and takes the
	// first one with minimum distance.
	SelectScan
)

// String returns the flag-friendly name of s.
func (s Selection) String() string {
	switch s {
	case SelectHeap:
		return "heap"
	case SelectScan:
		return "scan"
	default:
		return "unknown"
	}
}

// ParseSelection maps "heap" or "scan" to a Selection.
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "heap", "":
		return SelectHeap, nil
	case "scan":
		return SelectScan, nil
	default:
		return SelectHeap, fmt.Errorf("%w: %q", ErrUnknownSelection, name)
	}
}

// Options configures a shortest-path search.
type Options struct {
	Selection Selection // node selection strategy
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithSelection sets the node selection strategy.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		o.Selection = s
	}
}

// DefaultOptions returns Options with SelectHeap.
func DefaultOptions() Options {
	return Options{Selection: SelectHeap}
}

// Visitor observes relaxations during a search. OnVisit is called inline,
// once per strict distance improvement of node, so a node may be reported
// more than once. Implementations must not mutate the graph being searched.
type Visitor[K comparable] interface {
	OnVisit(node K)
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc[K comparable] func(node K)

// OnVisit calls f(node).
func (f VisitorFunc[K]) OnVisit(node K) { f(node) }

// Step is one edge of a path, traversed From → To.
type Step[K comparable] struct {
	From K
	To   K
}

// Path is an ordered sequence of steps from a source to a target.
// An empty Path means there is no route, or source and target coincide.
type Path[K comparable] []Step[K]

// Len returns the number of edges in the path.
func (p Path[K]) Len() int { return len(p) }

// Empty reports whether the path has no steps.
func (p Path[K]) Empty() bool { return len(p) == 0 }

// Nodes flattens the path into its node sequence, source first.
// Returns nil for an empty path.
func (p Path[K]) Nodes() []K {
	if len(p) == 0 {
		return nil
	}
	nodes := make([]K, 0, len(p)+1)
	nodes = append(nodes, p[0].From)
	for _, s := range p {
		nodes = append(nodes, s.To)
	}

	return nodes
}
