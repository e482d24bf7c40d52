package query_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// La capa de consultas no tiene estado propio: todo se deriva del store y del
// libro en cada llamada. Los tests siembran ambos directamente y verifican
// filtros, agregados, la serie de consumo y las alertas.
// ──────────────────────────────────────────────────────────────────────────────

func seedProduct(st *store.InventoryStore, idh, batch, description, location string, qty float64, expiry time.Time) *entity.Product {
	p, err := st.Register(&entity.Product{
		IDH:         idh,
		Description: description,
		Batch:       batch,
		Quantity:    decimal.NewFromFloat(qty),
		ExpiryDate:  expiry,
		Location:    location,
	}, time.Now())
	if err != nil {
		panic(err)
	}
	return p
}

func seedConsumption(l *store.Ledger, qty float64, date time.Time) {
	l.Append(&entity.Movement{
		ID:       "m-" + date.Format("20060102150405.000"),
		Type:     entity.MovementConsumo,
		Quantity: decimal.NewFromFloat(qty),
		Date:     date,
	})
}

// ── Filtros de productos ──────────────────────────────────────────────────────

func TestFilterProducts_BusquedaInsensibleAMayusculas(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, future)
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", "Almacén", 20, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.FilterProducts(query.ProductFilter{Search: "polieti"})
	require.Len(t, out, 1)
	assert.Equal(t, "IDH-100", out[0].IDH)

	out = svc.FilterProducts(query.ProductFilter{Search: "l-01"})
	assert.Len(t, out, 2, "la búsqueda también cubre el lote")
}

func TestFilterProducts_UbicacionExacta(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, future)
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", entity.LocationProduccion, 20, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.FilterProducts(query.ProductFilter{Location: entity.LocationProduccion})
	require.Len(t, out, 1)
	assert.Equal(t, "IDH-200", out[0].IDH)

	assert.Empty(t, svc.FilterProducts(query.ProductFilter{Location: "almacén"}),
		"la ubicación exige coincidencia exacta")
}

func TestFilterProducts_EstadoRecienEvaluado(t *testing.T) {
	st := store.NewInventoryStore(nil)
	now := time.Now()
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, now.AddDate(0, 6, 0))
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", "Almacén", 20, now.AddDate(0, 0, 3))
	seedProduct(st, "IDH-300", "L-01", "Masterbatch", "Almacén", 20, now.AddDate(0, 0, -10))
	svc := query.NewService(nil, st, store.NewLedger(nil))

	assert.Len(t, svc.FilterProducts(query.ProductFilter{Status: entity.StatusVigente}), 1)
	assert.Len(t, svc.FilterProducts(query.ProductFilter{Status: entity.StatusProximo}), 1)
	assert.Len(t, svc.FilterProducts(query.ProductFilter{Status: entity.StatusVencido}), 1)
}

func TestFilterProducts_CuboStockBajo(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 9.99, future)
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", "Almacén", 10, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.FilterProducts(query.ProductFilter{Status: query.StatusLowStock})
	require.Len(t, out, 1, "el umbral es estrictamente menor que 10 kg")
	assert.Equal(t, "IDH-100", out[0].IDH)
}

func TestFilterProducts_CriteriosCombinadosConjuntivos(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, future)
	seedProduct(st, "IDH-100", "L-02", "Polietileno HD", entity.LocationProduccion, 20, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.FilterProducts(query.ProductFilter{Search: "polietileno", Location: "Almacén"})
	require.Len(t, out, 1)
	assert.Equal(t, "L-01", out[0].Batch)
}

// ── Filtros de movimientos ────────────────────────────────────────────────────

func TestFilterMovements_PorFechaDeCalendario(t *testing.T) {
	l := store.NewLedger(nil)
	l.Append(&entity.Movement{ID: "a", Description: "Polietileno HD",
		Date: time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local)})
	l.Append(&entity.Movement{ID: "b", Description: "Polietileno HD",
		Date: time.Date(2026, time.March, 10, 22, 30, 0, 0, time.Local)})
	l.Append(&entity.Movement{ID: "c", Description: "Polipropileno",
		Date: time.Date(2026, time.March, 11, 8, 0, 0, 0, time.Local)})
	svc := query.NewService(nil, store.NewInventoryStore(nil), l)

	out := svc.FilterMovements(query.MovementFilter{Date: "2026-03-10"})
	assert.Len(t, out, 2, "la fecha compara solo el día de calendario, no la hora")

	out = svc.FilterMovements(query.MovementFilter{Date: "2026-03-10", Description: "Polipropileno"})
	assert.Empty(t, out)

	out = svc.FilterMovements(query.MovementFilter{Description: "Polipropileno"})
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)
}

// ── Agregados ─────────────────────────────────────────────────────────────────

func TestTotalQuantity_SumaTodosLosLotes(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20.25, future)
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", entity.LocationProduccion, 4.75, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	assert.True(t, svc.TotalQuantity().Equal(decimal.NewFromInt(25)))
}

func TestQuantityByLocation_OrdenDePrimeraAparicion(t *testing.T) {
	st := store.NewInventoryStore(nil)
	future := time.Now().AddDate(0, 6, 0)
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, future)
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", entity.LocationProduccion, 5, future)
	seedProduct(st, "IDH-100", "L-02", "Polietileno HD", "Almacén", 10, future)
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.QuantityByLocation()
	require.Len(t, out, 2)
	assert.Equal(t, "Almacén", out[0].Location)
	assert.True(t, out[0].Quantity.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, entity.LocationProduccion, out[1].Location)
	assert.True(t, out[1].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestMonthlyConsumption_SeisMesesConCeros(t *testing.T) {
	l := store.NewLedger(nil)
	now := time.Now()
	// AddDate normaliza los fines de mes; anclar en el día 1 mantiene el
	// desplazamiento de meses exacto.
	y, m, _ := now.Date()
	firstOfMonth := time.Date(y, m, 1, 12, 0, 0, 0, now.Location())
	seedConsumption(l, 2.5, now)
	seedConsumption(l, 3.0, now)
	seedConsumption(l, 1.5, now)
	seedConsumption(l, 40, firstOfMonth.AddDate(0, -2, 0))
	seedConsumption(l, 99, firstOfMonth.AddDate(0, -8, 0)) // fuera de la ventana
	// Una transferencia nunca cuenta como consumo.
	l.Append(&entity.Movement{ID: "t", Type: entity.MovementTransferencia,
		Quantity: decimal.NewFromInt(500), Date: now})
	svc := query.NewService(nil, store.NewInventoryStore(nil), l)

	out := svc.MonthlyConsumption()
	require.Len(t, out, 6, "siempre 6 puntos, mes en curso incluido")

	current := out[5]
	assert.True(t, current.Total.Equal(decimal.NewFromFloat(7.0)),
		"el mes en curso suma 2.5 + 3.0 + 1.5")
	assert.True(t, out[3].Total.Equal(decimal.NewFromInt(40)))
	assert.True(t, out[0].Total.IsZero(), "los meses sin consumo aparecen en cero")
}

func TestMonthlyConsumption_ClaveDeMesEnEspanol(t *testing.T) {
	svc := query.NewService(nil, store.NewInventoryStore(nil), store.NewLedger(nil))
	out := svc.MonthlyConsumption()
	require.Len(t, out, 6)
	for _, point := range out {
		assert.Regexp(t, `^(Ene|Feb|Mar|Abr|May|Jun|Jul|Ago|Sep|Oct|Nov|Dic) \d{4}$`, point.Month)
	}
}

// ── Alertas ───────────────────────────────────────────────────────────────────

func TestBuildAlerts_UnProductoPuedeProducirAmbas(t *testing.T) {
	now := time.Now()
	p := &entity.Product{
		Description: "Polietileno HD",
		Batch:       "L-01",
		Quantity:    decimal.NewFromFloat(3.5),
		ExpiryDate:  now.AddDate(0, 0, 2),
		Status:      entity.StatusProximo,
	}
	alerts := query.BuildAlerts([]*entity.Product{p}, now)

	require.Len(t, alerts, 2)
	assert.Equal(t, entity.AlertWarning, alerts[0].Type)
	assert.Equal(t, "El producto Polietileno HD (Lote: L-01) está próximo a vencer", alerts[0].Message)
	assert.Equal(t, entity.AlertDanger, alerts[1].Type)
	assert.Equal(t, "Stock bajo: Polietileno HD (Lote: L-01) - 3.5kg restantes", alerts[1].Message)
}

func TestBuildAlerts_VencidoNoGeneraAvisoDeVencimiento(t *testing.T) {
	now := time.Now()
	p := &entity.Product{
		Description: "Masterbatch",
		Batch:       "L-09",
		Quantity:    decimal.NewFromInt(50),
		Status:      entity.StatusVencido,
	}
	assert.Empty(t, query.BuildAlerts([]*entity.Product{p}, now),
		"solo proximo avisa; vencido se comunica por el estado del producto")
}

// ── Panel ─────────────────────────────────────────────────────────────────────

func TestGroupByDescription_AgrupaLotes(t *testing.T) {
	st := store.NewInventoryStore(nil)
	now := time.Now()
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, now.AddDate(0, 6, 0))
	seedProduct(st, "IDH-100", "L-02", "Polietileno HD", "Almacén", 10, now.AddDate(0, 0, 3))
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", "Almacén", 5, now.AddDate(0, 0, -10))
	svc := query.NewService(nil, st, store.NewLedger(nil))

	out := svc.GroupByDescription()
	require.Len(t, out, 2)

	pe := out[0]
	assert.Equal(t, "Polietileno HD", pe.Description)
	assert.True(t, pe.TotalQuantity.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 1, pe.Vigentes)
	assert.Equal(t, 1, pe.Proximos)
	assert.Equal(t, 0, pe.Vencidos)

	pp := out[1]
	assert.Equal(t, 1, pp.Vencidos)
}

func TestDashboardStats_ContadoresYConsumoDelMes(t *testing.T) {
	st := store.NewInventoryStore(nil)
	now := time.Now()
	seedProduct(st, "IDH-100", "L-01", "Polietileno HD", "Almacén", 20, now.AddDate(0, 6, 0))
	seedProduct(st, "IDH-200", "L-01", "Polipropileno", "Almacén", 4, now.AddDate(0, 0, 3))

	y, m, _ := now.Date()
	firstOfMonth := time.Date(y, m, 1, 12, 0, 0, 0, now.Location())
	l := store.NewLedger(nil)
	seedConsumption(l, 6.5, now)
	seedConsumption(l, 10, firstOfMonth.AddDate(0, -1, 0)) // mes anterior, no cuenta
	svc := query.NewService(nil, st, l)

	stats := svc.DashboardStats()
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 2, stats.AlertCount, "alertas = próximos a vencer + stock bajo")
	assert.True(t, stats.MonthlyConsumption.Equal(decimal.NewFromFloat(6.5)))
}
