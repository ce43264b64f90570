package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 1500.0, LineTotal(1500, nil, 1))
	assert.Equal(t, 3400.0, LineTotal(1500, []float64{200}, 2))
	assert.Equal(t, 800.0, LineTotal(800, nil, 1))
	assert.Equal(t, 5400.0, LineTotal(1500, []float64{200, 100}, 3))
}

func TestLineTotalZeroQuantity(t *testing.T) {
	assert.Equal(t, 0.0, LineTotal(1500, []float64{200}, 0))
}
