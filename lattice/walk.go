// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/pkg/errors"
)

// VisitFunc is called once per reached face with its distance from the start.
// Returning a non-nil error stops the walk; ErrStopWalk stops it silently.
type VisitFunc func(face FaceRef, depth int) error

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	ref   FaceRef
	depth int
}

// walker encapsulates mutable BFS state over parent links.
type walker struct {
	lat     *Lattice
	visit   VisitFunc
	queue   []queueItem
	visited map[FaceRef]bool
}

// Walk runs a breadth-first search from face (t, i) along parent links up to
// the facets. Each face is visited once; parents are enqueued in ascending
// index order, so the visit order is deterministic.
func (l *Lattice) Walk(t, i int, visit VisitFunc) error {
	if err := l.check(t, i); err != nil {
		return err
	}
	w := &walker{lat: l, visit: visit, visited: make(map[FaceRef]bool)}
	w.enqueue(FaceRef{Dim: t, Index: i}, 0)
	err := w.loop()
	if errors.Is(err, ErrStopWalk) {
		return nil
	}

	return err
}

// Ancestors returns every face reachable from (t, i) through parent links,
// in BFS order, excluding the start face.
func (l *Lattice) Ancestors(t, i int) ([]FaceRef, error) {
	var out []FaceRef
	err := l.Walk(t, i, func(f FaceRef, depth int) error {
		if depth > 0 {
			out = append(out, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (w *walker) enqueue(ref FaceRef, depth int) {
	w.visited[ref] = true
	w.queue = append(w.queue, queueItem{ref: ref, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item.ref, item.depth); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return err
			}
			return errors.Wrapf(err, "lattice: visit %s", item.ref)
		}
		up := item.ref.Dim + 1
		if up >= w.lat.dim {
			continue
		}
		for _, p := range w.lat.levels[item.ref.Dim][item.ref.Index].parents {
			next := FaceRef{Dim: up, Index: p}
			if !w.visited[next] {
				w.enqueue(next, item.depth+1)
			}
		}
	}

	return nil
}
