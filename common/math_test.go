package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 3, 2, 40, 3},
		{"below", -10, 2, 40, 2},
		{"above", 400, 2, 40, 40},
		{"at_edge", 40, 2, 40, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 0.5, Wrap(2.5, 2), 1e-9)
	assert.InDelta(t, 2.0, Wrap(2.0, 2), 1e-9, "exactly at the period is kept")
	assert.InDelta(t, 1.0, Wrap(7.0, 3), 1e-9)
	assert.InDelta(t, 9.0, Wrap(9.0, 0), 1e-9, "no period means no wrap")
}

func TestLerp(t *testing.T) {
	assert.InDelta(t, float32(5), Lerp(0, 10, 0.5), 1e-6)
}
