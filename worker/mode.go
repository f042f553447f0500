// SPDX-License-Identifier: MIT

package worker

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the pipeline a Request runs.
type Mode int

const (
	ModePolyhedron Mode = iota + 1
	ModeIntersection
	ModeCone
	ModeDeterminant
	ModeInverse
	ModeUnimodularAlpha
	ModeLastRowMinorGCD
)

var modeNames = map[Mode]string{
	ModePolyhedron:      "polyhedron",
	ModeIntersection:    "intersection",
	ModeCone:            "cone",
	ModeDeterminant:     "determinant",
	ModeInverse:         "inverse",
	ModeUnimodularAlpha: "unimodular-alpha",
	ModeLastRowMinorGCD: "last-row-minor-gcd",
}

// Modes lists every valid mode in declaration order.
func Modes() []Mode {
	return []Mode{
		ModePolyhedron, ModeIntersection, ModeCone, ModeDeterminant,
		ModeInverse, ModeUnimodularAlpha, ModeLastRowMinorGCD,
	}
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m names a pipeline.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode maps a name produced by String back to its Mode. Matching is
// case-insensitive and ignores surrounding space.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknownMode, "%d", int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
