// SPDX-License-Identifier: MIT

package worker

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/powergeom/matrix"
	"github.com/katalvlaran/powergeom/numeric"
)

// requestFile is the YAML form of a Request. Rationals are written as
// strings ("3", "-1/2"); integer vectors as plain lists.
type requestFile struct {
	Mode         Mode         `yaml:"mode" validate:"required"`
	Dim          int          `yaml:"dim" validate:"gte=0"`
	Points       [][]string   `yaml:"points" validate:"omitempty,dive,min=1"`
	CommonLimits [][]int64    `yaml:"common_limits"`
	Basis        [][]int64    `yaml:"basis"`
	Polyhedra    [][][]string `yaml:"polyhedra" validate:"omitempty,dive,min=1"`
	Inequalities [][]int64    `yaml:"inequalities"`
	Matrix       [][]string   `yaml:"matrix" validate:"omitempty,dive,min=1"`
	SkipRow      *int         `yaml:"skip_row" validate:"omitempty,gte=-1"`
	SkipCol      *int         `yaml:"skip_col" validate:"omitempty,gte=-1"`
}

// ParseRequest decodes a YAML request document, for example:
//
//	mode: polyhedron
//	points:
//	  - ["0", "2"]
//	  - ["1/2", "0"]
//
// Missing skip_row/skip_col stay nil and delete nothing. The decoded Request is
// validated with Request.Validate.
func ParseRequest(data []byte) (Request, error) {
	var f requestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Request{}, errors.Wrap(ErrInvalidRequest, err.Error())
	}
	if err := requestValidate.Struct(f); err != nil {
		return Request{}, errors.Wrap(ErrInvalidRequest, err.Error())
	}

	req := Request{
		Mode:         f.Mode,
		Dim:          f.Dim,
		CommonLimits: intVectors(f.CommonLimits),
		Basis:        intVectors(f.Basis),
		Inequalities: intVectors(f.Inequalities),
		SkipRow:      f.SkipRow,
		SkipCol:      f.SkipCol,
	}

	var err error
	if req.Points, err = fractionVectors(f.Points); err != nil {
		return Request{}, errors.Wrap(err, "points")
	}
	for i, poly := range f.Polyhedra {
		pts, err := fractionVectors(poly)
		if err != nil {
			return Request{}, errors.Wrapf(err, "polyhedron %d", i)
		}
		req.Polyhedra = append(req.Polyhedra, pts)
	}
	if len(f.Matrix) > 0 {
		rows := make([][]numeric.Rational, len(f.Matrix))
		for i, fields := range f.Matrix {
			v, err := numeric.ParseFractionVector(fields...)
			if err != nil {
				return Request{}, errors.Wrapf(err, "matrix row %d", i)
			}
			rows[i] = v.Components()
		}
		if req.Matrix, err = matrix.FromRows(rows); err != nil {
			return Request{}, errors.Wrap(err, "matrix")
		}
	}

	if err = req.Validate(); err != nil {
		return Request{}, err
	}

	return req, nil
}

var requestValidate = validator.New()

func intVectors(rows [][]int64) []numeric.IntVector {
	if len(rows) == 0 {
		return nil
	}
	out := make([]numeric.IntVector, len(rows))
	for i, r := range rows {
		out[i] = numeric.NewIntVector(r...)
	}

	return out
}

func fractionVectors(rows [][]string) ([]numeric.FractionVector, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]numeric.FractionVector, len(rows))
	for i, r := range rows {
		v, err := numeric.ParseFractionVector(r...)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		out[i] = v
	}

	return out, nil
}
