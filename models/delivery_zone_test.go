package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesScanFromDriverTypes(t *testing.T) {
	polygon := Coordinates{{43.25, 76.91}, {43.26, 76.93}, {43.24, 76.95}}

	value, err := polygon.Value()
	require.NoError(t, err)

	// Postgres jsonb comes back as []byte, some drivers hand strings.
	var fromBytes Coordinates
	require.NoError(t, fromBytes.Scan(value))
	assert.Equal(t, polygon, fromBytes)

	var fromString Coordinates
	require.NoError(t, fromString.Scan(string(value.([]byte))))
	assert.Equal(t, polygon, fromString)

	var c Coordinates
	assert.Error(t, c.Scan(42))
}
