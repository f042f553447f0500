// SPDX-License-Identifier: MIT

package unimodular_test

import (
	"fmt"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/unimodular"
)

func ExampleAlpha() {
	m, _ := matrix.FromInts([][]int64{{1, 3, 4}, {3, 4, 2}, {0, 0, 0}})
	alpha, err := unimodular.Alpha(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(alpha)
	// Output:
	// [1, 3, 4]
	// [3, 10, 14]
	// [0, 0, 1]
}

func ExampleLastRowMinorGCD() {
	m, _ := matrix.FromInts([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	gcd, minors, err := unimodular.LastRowMinorGCD(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(gcd, minors)
	// Output:
	// 3 [-3 -6 -3]
}
