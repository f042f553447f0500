// SPDX-License-Identifier: MIT

package worker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/powergeom/worker"
)

func TestMode_RoundTrip(t *testing.T) {
	for _, m := range worker.Modes() {
		got, err := worker.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)

		text, err := m.MarshalText()
		require.NoError(t, err)
		var back worker.Mode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}
}

func TestParseMode(t *testing.T) {
	m, err := worker.ParseMode("  Unimodular-Alpha ")
	require.NoError(t, err)
	assert.Equal(t, worker.ModeUnimodularAlpha, m)

	_, err = worker.ParseMode("minkowski")
	assert.ErrorIs(t, err, worker.ErrUnknownMode)
}

func TestMode_Invalid(t *testing.T) {
	var m worker.Mode
	assert.False(t, m.Valid())
	assert.Equal(t, "Mode(0)", m.String())
	_, err := m.MarshalText()
	assert.ErrorIs(t, err, worker.ErrUnknownMode)
}
