package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := NewFileStorage(path)

	// Missing file means an empty cart, not an error.
	items, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []LineItem{{
		Product:    ProductSnapshot{ID: 7, NameRus: "Раф", BasePrice: 1700},
		Quantity:   2,
		TotalPrice: 3400,
	}}
	require.NoError(t, storage.Save(saved))

	items, err = storage.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].Product.ID)
	assert.Equal(t, 3400.0, items[0].TotalPrice)
}
