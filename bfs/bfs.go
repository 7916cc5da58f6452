package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/core"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	queue []queueItem[S]
	head  int
	res   *Result[S]
}

// Search runs breadth-first search from start, expanding states with next
// and applying any number of functional Options.
// Returns ErrNilNext or ErrOptionViolation for invalid input, the context
// error on cancellation, or any user-supplied hook error other than ErrStop.
func Search[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilNext
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next: next,
		opts: o,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		if errors.Is(err, ErrStop) {
			return w.res, nil
		}
		return w.res, err
	}

	return w.res, nil
}

// Graph adapts g into a successor function over vertex IDs.
// Unknown vertices have no successors.
func Graph(g *core.Graph) func(string) []string {
	return func(id string) []string {
		ids, err := g.NeighborIDs(id)
		if err != nil {
			return nil
		}
		return ids
	}
}

// enqueue records s at depth d and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.state) {
			// first time seen?
			if _, seen := w.res.Depth[nbr]; !seen {
				w.res.Parent[nbr] = item.state
				w.enqueue(nbr, nextDepth)
			}
		}
	}
	return nil
}
