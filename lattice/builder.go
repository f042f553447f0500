// SPDX-License-Identifier: MIT

package lattice

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Build computes the face lattice of a dim-dimensional polytope from its
// incidence rows.
//
// Stages, for targetDim from dim−1 down to 0:
//  1. intersect the vertex sets of every (dim − targetDim)-combination of
//     rows, taken in lexicographic index order;
//  2. keep intersections larger than targetDim; at targetDim 0 every common
//     point becomes a singleton candidate instead;
//  3. deduplicate, then drop candidates strictly contained in another;
//  4. link each face to the faces of the level above that contain it;
//  5. at targetDim 0 drop vertices with fewer than dim−1 parents.
//
// Errors: ErrBadDimension for dim < 2, ErrNegativeVertex for a malformed row.
func Build(src Incidence, dim int) (*Lattice, error) {
	if dim < 2 {
		return nil, errors.Wrapf(ErrBadDimension, "dim=%d", dim)
	}
	rows, err := normalizeRows(src.Rows())
	if err != nil {
		return nil, err
	}

	lat := &Lattice{dim: dim, levels: make([][]Surface, dim)}
	var upper []Surface
	for t := dim - 1; t >= 0; t-- {
		level := findCommonSurfaces(rows, dim, t, upper)
		lat.levels[t] = level
		upper = level
		klog.V(2).Infof("lattice: dim %d has %d faces", t, len(level))
	}

	return lat, nil
}

// BuildFromRows is Build over a plain slice of vertex-index rows.
func BuildFromRows(rows [][]int, dim int) (*Lattice, error) {
	return Build(Rows(rows), dim)
}

// normalizeRows copies and sorts every row so callers may pass any order.
func normalizeRows(src [][]int) ([][]int, error) {
	rows := make([][]int, len(src))
	for i, r := range src {
		row := append([]int(nil), r...)
		sort.Ints(row)
		if len(row) > 0 && row[0] < 0 {
			return nil, errors.Wrapf(ErrNegativeVertex, "row %d", i)
		}
		rows[i] = row
	}

	return rows, nil
}

// findCommonSurfaces builds one level of the lattice.
func findCommonSurfaces(rows [][]int, dim, targetDim int, upper []Surface) []Surface {
	candidates := treeset.NewWith(compareSurfaces)
	combinations(len(rows), dim-targetDim, func(idx []int) {
		common := rows[idx[0]]
		for _, r := range idx[1:] {
			common = intersect(common, rows[r])
		}
		if targetDim > 0 {
			if len(common) > targetDim {
				candidates.Add(append([]int(nil), common...))
			}
			return
		}
		for _, p := range common {
			candidates.Add([]int{p})
		}
	})

	faces := removeSemiDuplicates(candidates)

	level := make([]Surface, 0, len(faces))
	for _, pts := range faces {
		parents := superiorOf(pts, upper)
		if targetDim == 0 && len(parents) < dim-1 {
			klog.V(2).Infof("lattice: dropping vertex %d with %d parents", pts[0], len(parents))
			continue
		}
		level = append(level, Surface{points: pts, parents: parents})
	}

	return level
}

// removeSemiDuplicates drops every face strictly contained in another one.
// The survivors keep the set's order.
func removeSemiDuplicates(set *treeset.Set) [][]int {
	all := make([][]int, 0, set.Size())
	for _, v := range set.Values() {
		all = append(all, v.([]int))
	}
	out := make([][]int, 0, len(all))
	for i, f := range all {
		covered := false
		for j, g := range all {
			if i != j && len(g) > len(f) && contains(g, f) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, f)
		}
	}

	return out
}

// superiorOf returns the ascending indices of upper faces containing pts.
func superiorOf(pts []int, upper []Surface) []int {
	var out []int
	for i, u := range upper {
		if contains(u.points, pts) {
			out = append(out, i)
		}
	}

	return out
}
