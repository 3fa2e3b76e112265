package dim_test

import (
	"testing"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/stretchr/testify/require"
)

// d32 checks that callers can declare their own markers.
type d32 struct{}

func (d32) Size() int { return 32 }

func TestOfPredeclared(t *testing.T) {
	require.Equal(t, 0, dim.Of[dim.D0]())
	require.Equal(t, 1, dim.Of[dim.D1]())
	require.Equal(t, 3, dim.Of[dim.D3]())
	require.Equal(t, 16, dim.Of[dim.D16]())
}

func TestOfCustomMarker(t *testing.T) {
	require.Equal(t, 32, dim.Of[d32]())
	require.Equal(t, 64, dim.Product[d32, dim.D2]())
}

func TestProduct(t *testing.T) {
	require.Equal(t, 6, dim.Product[dim.D2, dim.D3]())
	require.Equal(t, 0, dim.Product[dim.D0, dim.D7]())
}
