// SPDX-License-Identifier: MIT

package polyhedron_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/powergeom/numeric"
	"github.com/katalvlaran/powergeom/polyhedron"
)

func ExampleBuildIncidenceTable() {
	square := []numeric.FractionVector{
		numeric.FractionVectorFromInts(0, 2),
		numeric.FractionVectorFromInts(2, 0),
		numeric.FractionVectorFromInts(4, 2),
		numeric.FractionVectorFromInts(2, 4),
	}
	table, err := polyhedron.BuildIncidenceTable(context.Background(), square, nil, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(table)
	// Output:
	// (-1, -1) | + + - -
	// (-1, 1) | + - - +
	// (1, -1) | - + + -
	// (1, 1) | - - + +
}
