// SPDX-License-Identifier: MIT
// Package fixed_test contains shared test helpers.

package fixed_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/fixed"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs asserts that fn panics with an error matching target.
func requirePanicsIs(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not match %v", err, target)
	}()
	fn()
}

// randomMatrix fills an R×C matrix with small integers so products stay exact.
func randomMatrix[R, C dim.Dim](t testing.TB, seed int64) *fixed.Matrix[R, C] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := fixed.NewMatrix[R, C]()
	for k := 0; k < m.Len(); k++ {
		m.Set(k, float32(rng.Intn(17)-8))
	}

	return m
}

// seq returns 0, 1, ..., n-1 as float32.
func seq(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}

	return out
}
