// SPDX-License-Identifier: MIT

package polyhedron

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/powergeom/numeric"
)

// intVectorComparator orders treemap keys with numeric.CompareIntVectors.
func intVectorComparator(a, b interface{}) int {
	return numeric.CompareIntVectors(a.(numeric.IntVector), b.(numeric.IntVector))
}

// IncidenceTable maps each distinct normal to the set of vertices it
// vanishes on (the vertices of the face it supports). Rows are sorted by
// numeric.CompareIntVectors, columns ascending. A table is immutable once
// returned by BuildIncidenceTable.
type IncidenceTable struct {
	rows     *treemap.Map // numeric.IntVector -> *treeset.Set of int
	vertices int
}

func newIncidenceTable(vertices int) *IncidenceTable {
	return &IncidenceTable{rows: treemap.NewWith(intVectorComparator), vertices: vertices}
}

func (t *IncidenceTable) mark(normal numeric.IntVector, vertex int) {
	if set, ok := t.rows.Get(normal); ok {
		set.(*treeset.Set).Add(vertex)
		return
	}
	t.rows.Put(normal, treeset.NewWithIntComparator(vertex))
}

// Len returns the number of normals (rows).
func (t *IncidenceTable) Len() int { return t.rows.Size() }

// VertexCount returns the number of vertices (columns).
func (t *IncidenceTable) VertexCount() int { return t.vertices }

// Normals returns the row keys in canonical order.
func (t *IncidenceTable) Normals() []numeric.IntVector {
	out := make([]numeric.IntVector, 0, t.rows.Size())
	for _, k := range t.rows.Keys() {
		out = append(out, k.(numeric.IntVector))
	}

	return out
}

// Vertices returns the ascending vertex indices of normal's row, or nil if
// normal is not in the table.
func (t *IncidenceTable) Vertices(normal numeric.IntVector) []int {
	set, ok := t.rows.Get(normal)
	if !ok {
		return nil
	}

	return intsOf(set.(*treeset.Set))
}

// Has reports whether the cell (normal, vertex) is marked.
func (t *IncidenceTable) Has(normal numeric.IntVector, vertex int) bool {
	set, ok := t.rows.Get(normal)

	return ok && set.(*treeset.Set).Contains(vertex)
}

// Rows returns every row's vertex indices in canonical row order.
func (t *IncidenceTable) Rows() [][]int {
	out := make([][]int, 0, t.rows.Size())
	for _, v := range t.rows.Values() {
		out = append(out, intsOf(v.(*treeset.Set)))
	}

	return out
}

// String renders one line per row: the normal followed by a '+'/'-' mark
// per vertex.
func (t *IncidenceTable) String() string {
	var sb strings.Builder
	it := t.rows.Iterator()
	for it.Next() {
		sb.WriteString(it.Key().(numeric.IntVector).String())
		sb.WriteString(" |")
		set := it.Value().(*treeset.Set)
		for k := 0; k < t.vertices; k++ {
			if set.Contains(k) {
				sb.WriteString(" +")
			} else {
				sb.WriteString(" -")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func intsOf(set *treeset.Set) []int {
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}

	return out
}

// formatTuple renders an index tuple as "[0 2 1]".
func formatTuple(tuple []int) string {
	parts := make([]string, len(tuple))
	for i, v := range tuple {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
