package jsonfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/infrastructure/jsonfile"
)

func TestStore_CargaVaciaSinArchivos(t *testing.T) {
	s, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	products, err := s.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)

	movements, err := s.LoadMovements()
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestStore_IdaYVuelta(t *testing.T) {
	dir := t.TempDir()
	s, err := jsonfile.NewStore(dir)
	require.NoError(t, err)

	expiry := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveProducts([]*entity.Product{{
		ID:         1700000000000,
		IDH:        "IDH-100",
		Batch:      "L-01",
		Quantity:   decimal.NewFromFloat(25.5),
		ExpiryDate: expiry,
		Location:   "Almacén",
	}}))
	require.NoError(t, s.SaveMovements([]*entity.Movement{{
		ID:       "m-1",
		Type:     entity.MovementRegistroInicial,
		Quantity: decimal.NewFromFloat(25.5),
		Origin:   entity.OriginNA,
	}}))

	// Releer con una instancia nueva, como tras un reinicio.
	s2, err := jsonfile.NewStore(dir)
	require.NoError(t, err)

	products, err := s2.LoadProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1700000000000), products[0].ID)
	assert.True(t, products[0].Quantity.Equal(decimal.NewFromFloat(25.5)))
	assert.True(t, products[0].ExpiryDate.Equal(expiry))

	movements, err := s2.LoadMovements()
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.OriginNA, movements[0].Origin)
}

func TestStore_ReescrituraCompleta(t *testing.T) {
	s, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.SaveProducts([]*entity.Product{{ID: 1}, {ID: 2}}))
	require.NoError(t, s.SaveProducts([]*entity.Product{{ID: 3}}))

	products, err := s.LoadProducts()
	require.NoError(t, err)
	require.Len(t, products, 1, "cada guardado reemplaza la colección completa")
	assert.Equal(t, int64(3), products[0].ID)
}

func TestStore_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	s, err := jsonfile.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveProducts([]*entity.Product{{ID: 1}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()))
	}
}

func TestStore_ArchivoCorruptoFalla(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventoryProducts.json"), []byte("{no es json"), 0o640))

	s, err := jsonfile.NewStore(dir)
	require.NoError(t, err)
	_, err = s.LoadProducts()
	assert.Error(t, err)
}
