package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/infrastructure/export"
)

func exportProduct() *entity.Product {
	return &entity.Product{
		ID:            1700000000000,
		IDH:           "IDH-100",
		Description:   "Polietileno HD",
		Batch:         "L-01",
		Quantity:      decimal.NewFromFloat(25.5),
		ExpiryDate:    time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		Location:      "Almacén",
		QualityStatus: entity.QualityAprobado,
		Status:        entity.StatusVigente,
		LastModified:  time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestSummaryCSV_SieteColumnas(t *testing.T) {
	data, err := export.SummaryCSV([]*entity.Product{exportProduct()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "IDH,Descripción,Lote,Cantidad (kg),Fecha Caducidad,Ubicación,Estado", lines[0])
	assert.Equal(t, "IDH-100,Polietileno HD,L-01,25.5,2026-09-15,Almacén,vigente", lines[1])
}

func TestSummaryCSV_EscapaComasYComillas(t *testing.T) {
	p := exportProduct()
	p.Description = `Masterbatch "azul", granulado`
	data, err := export.SummaryCSV([]*entity.Product{p})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"Masterbatch ""azul"", granulado"`,
		"los campos con coma o comilla van entrecomillados RFC 4180")
}

func TestFullCSV_OnceColumnasConTextosDePresentacion(t *testing.T) {
	p := exportProduct()
	p.QualityStatus = entity.QualityBloqueado
	p.Status = entity.StatusProximo
	data, err := export.FullCSV([]*entity.Product{p})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"IDH,Descripción,Lote,Cantidad (kg),Fecha Caducidad,Ubicación,Ubicación Específica,Estado Calidad,Notas,Estado,Última Modificación",
		lines[0])
	assert.Contains(t, lines[1], "Bloqueado - No pasa calidad")
	assert.Contains(t, lines[1], "Próximo a vencer")
	assert.Contains(t, lines[1], "10/03/2026 09:30:00", "la última modificación usa el formato de presentación")
}

func TestFullCSV_InventarioVacioSoloCabecera(t *testing.T) {
	data, err := export.FullCSV(nil)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestInventoryXLSX_LibroValido(t *testing.T) {
	data, err := export.InventoryXLSX([]*entity.Product{exportProduct()})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// Un .xlsx es un ZIP: firma PK\x03\x04.
	assert.Equal(t, "PK\x03\x04", string(data[:4]))
}
