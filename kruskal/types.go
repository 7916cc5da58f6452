package kruskal

import "errors"

var (
	// ErrNoVertices indicates that Kruskal was called with no vertices.
	ErrNoVertices = errors.New("kruskal: no vertices")

	// ErrUnknownVertex indicates that an edge references a vertex outside the vertex list.
	ErrUnknownVertex = errors.New("kruskal: edge endpoint is not a known vertex")

	// ErrDisconnected indicates that the graph is not fully connected, so a spanning
	// tree covering all vertices cannot be formed.
	ErrDisconnected = errors.New("kruskal: graph is disconnected")

	// ErrStop may be returned from an OnEdge hook to end the run early.
	// Kruskal then returns the edges accepted so far and a nil error.
	ErrStop = errors.New("kruskal: stop requested")
)

// Edge connects From and To with a Weight.
type Edge[T comparable] struct {
	From, To T
	Weight   float64
}

// EdgeHook observes the step-th processed edge (1-based), whether it merged
// two sets, and the disjoint-set state right after processing it.
type EdgeHook[T comparable] func(step int, e Edge[T], merged bool, ds *DisjointSet[T]) error

// Options configures Kruskal.
type Options[T comparable] struct {
	// OnEdge, if non-nil, is invoked after each processed edge.
	OnEdge EdgeHook[T]
}

// Option configures Options. All Option functions should modify the pointed Options.
type Option[T comparable] func(*Options[T])

// WithOnEdge registers a hook invoked after every processed edge, including
// edges whose endpoints were already connected.
func WithOnEdge[T comparable](fn EdgeHook[T]) Option[T] {
	return func(o *Options[T]) {
		o.OnEdge = fn
	}
}
