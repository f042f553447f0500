// SPDX-License-Identifier: MIT

package lattice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergeom/lattice"
	"github.com/katalvlaran/powergeom/numeric"
	"github.com/katalvlaran/powergeom/polyhedron"
)

type level struct {
	faces   [][]int
	parents [][]int
}

type latticeCase struct {
	name   string
	dim    int
	rows   [][]int
	levels map[int]level
}

var latticeCases = []latticeCase{
	{
		name: "square",
		dim:  2,
		rows: [][]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}},
		levels: map[int]level{
			1: {faces: [][]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, parents: [][]int{nil, nil, nil, nil}},
			0: {faces: [][]int{{0}, {1}, {2}, {3}}, parents: [][]int{{0, 1}, {0, 2}, {2, 3}, {1, 3}}},
		},
	},
	{
		name: "bruno-p19",
		dim:  3,
		rows: [][]int{{0, 2, 3}, {0, 1, 3, 4}, {0, 1, 2}, {1, 2, 3, 4}},
		levels: map[int]level{
			2: {
				faces:   [][]int{{0, 1, 2}, {0, 1, 3, 4}, {0, 2, 3}, {1, 2, 3, 4}},
				parents: [][]int{nil, nil, nil, nil},
			},
			1: {
				faces:   [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3, 4}, {2, 3}},
				parents: [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 3}},
			},
			0: {
				faces:   [][]int{{0}, {1}, {2}, {3}},
				parents: [][]int{{0, 1, 2}, {0, 3, 4}, {1, 3, 5}, {2, 4, 5}},
			},
		},
	},
	{
		name: "cube-corner",
		dim:  3,
		rows: [][]int{{0, 2, 3}, {2, 3, 4}, {0, 1, 3}, {0, 1, 2}, {1, 3, 4}, {1, 2, 4}},
		levels: map[int]level{
			2: {
				faces:   [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}},
				parents: [][]int{nil, nil, nil, nil, nil, nil},
			},
			1: {
				faces:   [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
				parents: [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 4}, {3, 4}, {2, 5}, {3, 5}, {4, 5}},
			},
			0: {
				faces:   [][]int{{0}, {1}, {2}, {3}, {4}},
				parents: [][]int{{0, 1, 2}, {0, 3, 4, 5}, {1, 3, 6, 7}, {2, 4, 6, 8}, {5, 7, 8}},
			},
		},
	},
	{
		name: "five-facets",
		dim:  3,
		rows: [][]int{{0, 1, 2, 3}, {0, 1, 4}, {0, 3, 4}, {1, 2, 4}, {2, 3, 4}},
		levels: map[int]level{
			2: {
				faces:   [][]int{{0, 1, 2, 3}, {0, 1, 4}, {0, 3, 4}, {1, 2, 4}, {2, 3, 4}},
				parents: [][]int{nil, nil, nil, nil, nil},
			},
			1: {
				faces:   [][]int{{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {2, 4}, {3, 4}},
				parents: [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {0, 4}, {3, 4}, {2, 4}},
			},
			0: {
				faces:   [][]int{{0}, {1}, {2}, {3}, {4}},
				parents: [][]int{{0, 1, 2}, {0, 3, 4}, {3, 5, 6}, {1, 5, 7}, {2, 4, 6, 7}},
			},
		},
	},
	{
		name: "large",
		dim:  3,
		rows: [][]int{{0, 2, 20, 22}, {5, 6, 20, 21}, {0, 2, 4}, {0, 5, 20}, {2, 17, 22}, {5, 6, 8}, {0, 3, 4, 5, 8, 9}, {20, 21, 22}, {2, 4, 17, 19}, {3, 4, 8, 9, 13, 14, 18, 19}, {6, 8, 11, 13}, {11, 12, 13, 14, 16, 17, 18, 19}, {6, 11, 21}, {11, 12, 16, 17, 21, 22}},
		levels: map[int]level{
			2: {
				faces:   [][]int{{0, 2, 4}, {0, 2, 20, 22}, {0, 3, 4, 5, 8, 9}, {0, 5, 20}, {2, 4, 17, 19}, {2, 17, 22}, {3, 4, 8, 9, 13, 14, 18, 19}, {5, 6, 8}, {5, 6, 20, 21}, {6, 8, 11, 13}, {6, 11, 21}, {11, 12, 13, 14, 16, 17, 18, 19}, {11, 12, 16, 17, 21, 22}, {20, 21, 22}},
				parents: [][]int{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil},
			},
			1: {
				faces:   [][]int{{0, 2}, {0, 4}, {0, 5}, {0, 20}, {2, 4}, {2, 17}, {2, 22}, {3, 4, 8, 9}, {4, 19}, {5, 6}, {5, 8}, {5, 20}, {6, 8}, {6, 11}, {6, 21}, {8, 13}, {11, 12, 16, 17}, {11, 13}, {11, 21}, {13, 14, 18, 19}, {17, 19}, {17, 22}, {20, 21}, {20, 22}, {21, 22}},
				parents: [][]int{{0, 1}, {0, 2}, {2, 3}, {1, 3}, {0, 4}, {4, 5}, {1, 5}, {2, 6}, {4, 6}, {7, 8}, {2, 7}, {3, 8}, {7, 9}, {9, 10}, {8, 10}, {6, 9}, {11, 12}, {9, 11}, {10, 12}, {6, 11}, {4, 11}, {5, 12}, {8, 13}, {1, 13}, {12, 13}},
			},
			0: {
				faces:   [][]int{{0}, {2}, {4}, {5}, {6}, {8}, {11}, {13}, {17}, {19}, {20}, {21}, {22}},
				parents: [][]int{{0, 1, 2, 3}, {0, 4, 5, 6}, {1, 4, 7, 8}, {2, 9, 10, 11}, {9, 12, 13, 14}, {7, 10, 12, 15}, {13, 16, 17, 18}, {15, 17, 19}, {5, 16, 20, 21}, {8, 19, 20}, {3, 11, 22, 23}, {14, 18, 22, 24}, {6, 21, 23, 24}},
			},
		},
	},
	{
		name: "painleve",
		dim:  2,
		rows: [][]int{{0, 1, 2, 3, 4, 5}, {5, 9}, {8, 9}, {2, 8}},
		levels: map[int]level{
			1: {
				faces:   [][]int{{0, 1, 2, 3, 4, 5}, {2, 8}, {5, 9}, {8, 9}},
				parents: [][]int{nil, nil, nil, nil},
			},
			0: {
				faces:   [][]int{{2}, {5}, {8}, {9}},
				parents: [][]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
			},
		},
	},
	{
		name: "half-cube-diagonal",
		dim:  3,
		rows: [][]int{{0, 2, 3}, {0, 1, 3, 5}, {0, 1, 2, 4}, {2, 3, 4, 5}, {1, 4, 5}},
		levels: map[int]level{
			2: {
				faces:   [][]int{{0, 1, 2, 4}, {0, 1, 3, 5}, {0, 2, 3}, {1, 4, 5}, {2, 3, 4, 5}},
				parents: [][]int{nil, nil, nil, nil, nil},
			},
			1: {
				faces:   [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {3, 5}, {4, 5}},
				parents: [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {1, 3}, {2, 4}, {0, 4}, {1, 4}, {3, 4}},
			},
			0: {
				faces:   [][]int{{0}, {1}, {2}, {3}, {4}, {5}},
				parents: [][]int{{0, 1, 2}, {0, 3, 4}, {1, 5, 6}, {2, 5, 7}, {3, 6, 8}, {4, 7, 8}},
			},
		},
	},
}

func TestBuildFromRows(t *testing.T) {
	for _, tc := range latticeCases {
		t.Run(tc.name, func(t *testing.T) {
			lat, err := lattice.BuildFromRows(tc.rows, tc.dim)
			require.NoError(t, err)
			require.Equal(t, tc.dim, lat.Dim())

			for dim, want := range tc.levels {
				assert.Equal(t, want.faces, lat.Faces(dim), "faces at dim %d", dim)
				for i := range want.faces {
					got, err := lat.Parents(dim, i)
					require.NoError(t, err)
					assert.Equal(t, want.parents[i], got, "parents of %v at dim %d", want.faces[i], dim)
				}
			}
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	for _, tc := range latticeCases {
		t.Run(tc.name, func(t *testing.T) {
			lat, err := lattice.BuildFromRows(tc.rows, tc.dim)
			require.NoError(t, err)

			for dim := 0; dim < tc.dim; dim++ {
				seen := map[string]bool{}
				for i, s := range lat.Level(dim) {
					assert.Greater(t, s.Size(), dim, "face %v at dim %d", s, dim)
					if dim < tc.dim-1 {
						assert.NotEmpty(t, s.Parents(), "face %v at dim %d", s, dim)
					}
					if dim == 0 {
						assert.GreaterOrEqual(t, len(s.Parents()), tc.dim-1)
					}
					key := s.String()
					assert.False(t, seen[key], "duplicate %s", key)
					seen[key] = true

					for _, p := range s.Parents() {
						up := lat.Level(dim + 1)[p]
						assert.Subset(t, up.Points(), s.Points(), "face %d at dim %d", i, dim)
					}
				}
			}
		})
	}
}

// Row order and row element order do not affect the result.
func TestBuild_RowOrderInsensitive(t *testing.T) {
	want, err := lattice.BuildFromRows(latticeCases[1].rows, 3)
	require.NoError(t, err)

	shuffled := [][]int{{4, 3, 2, 1}, {2, 1, 0}, {3, 2, 0}, {1, 0, 4, 3}}
	got, err := lattice.BuildFromRows(shuffled, 3)
	require.NoError(t, err)

	assert.Equal(t, want.String(), got.String())
}

func TestBuild_FromIncidenceTable(t *testing.T) {
	pts := []numeric.FractionVector{
		numeric.FractionVectorFromInts(1, 1, 1),
		numeric.FractionVectorFromInts(4, 0, 0),
		numeric.FractionVectorFromInts(0, 4, 0),
		numeric.FractionVectorFromInts(0, 0, 4),
		numeric.FractionVectorFromInts(2, 0, 2),
	}
	table, err := polyhedron.BuildIncidenceTable(context.Background(), pts, nil, nil)
	require.NoError(t, err)

	lat, err := lattice.Build(table, 3)
	require.NoError(t, err)
	assert.Equal(t, latticeCases[1].levels[1].faces, lat.Faces(1))
	assert.Equal(t, []int{4, 6, 4}, lat.Count())
}

func TestBuild_Errors(t *testing.T) {
	_, err := lattice.BuildFromRows([][]int{{0, 1}}, 1)
	assert.ErrorIs(t, err, lattice.ErrBadDimension)

	_, err = lattice.BuildFromRows([][]int{{0, -1}}, 2)
	assert.ErrorIs(t, err, lattice.ErrNegativeVertex)

	lat, err := lattice.BuildFromRows(latticeCases[0].rows, 2)
	require.NoError(t, err)
	_, err = lat.Parents(2, 0)
	assert.ErrorIs(t, err, lattice.ErrLevelOutOfRange)
	_, err = lat.Parents(0, 9)
	assert.ErrorIs(t, err, lattice.ErrFaceOutOfRange)
	assert.Nil(t, lat.Level(-1))
	assert.Nil(t, lat.Faces(5))
}

func TestBuild_EmptyTable(t *testing.T) {
	lat, err := lattice.BuildFromRows(nil, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, lat.Count())
}

func TestLattice_LevelIsCopy(t *testing.T) {
	lat, err := lattice.BuildFromRows(latticeCases[0].rows, 2)
	require.NoError(t, err)

	pts := lat.Level(0)[0].Points()
	pts[0] = 99
	assert.Equal(t, []int{0}, lat.Faces(0)[0])
}

func TestLattice_String(t *testing.T) {
	lat, err := lattice.BuildFromRows(latticeCases[0].rows, 2)
	require.NoError(t, err)

	want := "dim 1:\n" +
		"  {0, 1}\n  {0, 3}\n  {1, 2}\n  {2, 3}\n" +
		"dim 0:\n" +
		"  {0} / 0, 1\n  {1} / 0, 2\n  {2} / 2, 3\n  {3} / 1, 3\n"
	assert.Equal(t, want, lat.String())
}

func TestLattice_Walk(t *testing.T) {
	lat, err := lattice.BuildFromRows(latticeCases[1].rows, 3)
	require.NoError(t, err)

	var order []lattice.FaceRef
	var depths []int
	err = lat.Walk(0, 0, func(f lattice.FaceRef, depth int) error {
		order = append(order, f)
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []lattice.FaceRef{
		{Dim: 0, Index: 0},
		{Dim: 1, Index: 0}, {Dim: 1, Index: 1}, {Dim: 1, Index: 2},
		{Dim: 2, Index: 0}, {Dim: 2, Index: 1}, {Dim: 2, Index: 2},
	}, order)
	assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 2}, depths)

	anc, err := lat.Ancestors(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []lattice.FaceRef{{Dim: 2, Index: 1}, {Dim: 2, Index: 3}}, anc)
}

func TestLattice_WalkStop(t *testing.T) {
	lat, err := lattice.BuildFromRows(latticeCases[1].rows, 3)
	require.NoError(t, err)

	visited := 0
	err = lat.Walk(0, 0, func(lattice.FaceRef, int) error {
		visited++
		if visited == 2 {
			return lattice.ErrStopWalk
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, visited)

	boom := errors.New("boom")
	err = lat.Walk(0, 0, func(lattice.FaceRef, int) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = lat.Walk(3, 0, func(lattice.FaceRef, int) error { return nil })
	assert.ErrorIs(t, err, lattice.ErrLevelOutOfRange)
}
