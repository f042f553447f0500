// SPDX-License-Identifier: MIT

package lattice

import (
	"strconv"
	"strings"
)

// Incidence is the input of Build: one ascending list of vertex indices per
// facet normal. *polyhedron.IncidenceTable satisfies it.
type Incidence interface {
	Rows() [][]int
}

// Rows adapts a plain slice to Incidence.
type Rows [][]int

// Rows implements Incidence.
func (r Rows) Rows() [][]int { return r }

// Surface is one face: its ascending vertex indices and the ascending
// indices of the faces one level up that contain it.
type Surface struct {
	points  []int
	parents []int
}

// Points returns a copy of the vertex indices.
func (s Surface) Points() []int { return append([]int(nil), s.points...) }

// Parents returns a copy of the parent indices.
func (s Surface) Parents() []int { return append([]int(nil), s.parents...) }

// Size is the number of vertices on the face.
func (s Surface) Size() int { return len(s.points) }

// String renders "{0, 1} / 2, 3", omitting the parent part for facets.
func (s Surface) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	writeInts(&sb, s.points)
	sb.WriteByte('}')
	if len(s.parents) > 0 {
		sb.WriteString(" / ")
		writeInts(&sb, s.parents)
	}

	return sb.String()
}

// FaceRef names a face by its dimension and index within that level.
type FaceRef struct {
	Dim   int
	Index int
}

func (f FaceRef) String() string {
	return "d" + strconv.Itoa(f.Dim) + "#" + strconv.Itoa(f.Index)
}

// compareSurfaces orders faces element-wise, then shorter first.
func compareSurfaces(a, b interface{}) int {
	x, y := a.([]int), b.([]int)
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}

	return 0
}

// contains reports whether sorted super holds every element of sorted sub.
func contains(super, sub []int) bool {
	i := 0
	for _, v := range sub {
		for i < len(super) && super[i] < v {
			i++
		}
		if i == len(super) || super[i] != v {
			return false
		}
		i++
	}

	return true
}

// intersect returns the ascending common elements of sorted a and b.
func intersect(a, b []int) []int {
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

func writeInts(sb *strings.Builder, vs []int) {
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
}
