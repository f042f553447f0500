// SPDX-License-Identifier: MIT

package lattice

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Lattice holds the faces of every dimension below the polytope's own.
// It is immutable once returned by Build.
type Lattice struct {
	dim    int
	levels [][]Surface // levels[t] holds the faces of dimension t
}

// Dim returns the polytope dimension d; levels run from d−1 down to 0.
func (l *Lattice) Dim() int { return l.dim }

// Level returns a copy of the faces of dimension t, or nil when t is out of
// range.
func (l *Lattice) Level(t int) []Surface {
	if t < 0 || t >= l.dim {
		return nil
	}
	out := make([]Surface, len(l.levels[t]))
	for i, s := range l.levels[t] {
		out[i] = Surface{points: s.Points(), parents: s.Parents()}
	}

	return out
}

// Faces returns the vertex lists of level t.
func (l *Lattice) Faces(t int) [][]int {
	if t < 0 || t >= l.dim {
		return nil
	}
	out := make([][]int, len(l.levels[t]))
	for i, s := range l.levels[t] {
		out[i] = s.Points()
	}

	return out
}

// Parents returns the parent indices of face i at dimension t.
func (l *Lattice) Parents(t, i int) ([]int, error) {
	if err := l.check(t, i); err != nil {
		return nil, err
	}

	return l.levels[t][i].Parents(), nil
}

// Count returns the number of faces per dimension, indexed by dimension.
func (l *Lattice) Count() []int {
	out := make([]int, l.dim)
	for t, lvl := range l.levels {
		out[t] = len(lvl)
	}

	return out
}

// String lists the levels from the facets down, one face per line.
func (l *Lattice) String() string {
	var sb strings.Builder
	for t := l.dim - 1; t >= 0; t-- {
		sb.WriteString("dim ")
		sb.WriteString(strconv.Itoa(t))
		sb.WriteString(":\n")
		for _, s := range l.levels[t] {
			sb.WriteString("  ")
			sb.WriteString(s.String())
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (l *Lattice) check(t, i int) error {
	if t < 0 || t >= l.dim {
		return errors.Wrapf(ErrLevelOutOfRange, "dim %d not in [0, %d]", t, l.dim-1)
	}
	if i < 0 || i >= len(l.levels[t]) {
		return errors.Wrapf(ErrFaceOutOfRange, "face %d at dim %d (have %d)", i, t, len(l.levels[t]))
	}

	return nil
}
