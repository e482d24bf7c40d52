// Package query deriva vistas de solo lectura sobre el store y el libro de
// movimientos: filtros, totales, series de consumo y alertas. Sin efectos
// sobre el estado (salvo la reevaluación de estados de ciclo de vida, que es
// obligatoria antes de cada lectura) y sin caché: todo se recalcula bajo
// demanda.
package query

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/store"
)

// LowStockThreshold umbral en kg del cubo sintético "stock-bajo" y de las
// alertas de stock. Un producto con menos de 10 kg cuenta como stock bajo.
var LowStockThreshold = decimal.NewFromInt(10)

// StatusLowStock cubo sintético de filtrado, distinto de los tres estados de
// ciclo de vida.
const StatusLowStock = "stock-bajo"

var monthNames = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// Service capa de consultas. Comparte el mutex del motor de movimientos para
// que ninguna lectura se intercale dentro de una mutación.
type Service struct {
	mu     *sync.Mutex
	store  *store.InventoryStore
	ledger *store.Ledger
	now    func() time.Time
}

// NewService construye la capa de consultas. mu debe ser el mismo mutex que
// serializa el motor (nil crea uno propio, útil en tests de solo lectura).
func NewService(mu *sync.Mutex, st *store.InventoryStore, ledger *store.Ledger) *Service {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &Service{mu: mu, store: st, ledger: ledger, now: time.Now}
}

// ProductFilter criterios de filtrado de productos. Los campos vacíos no
// filtran.
type ProductFilter struct {
	Search   string // substring, insensible a mayúsculas, sobre IDH, descripción o lote
	Location string // coincidencia exacta
	Status   string // vigente | proximo | vencido | stock-bajo
}

// FilterProducts devuelve los productos vivos que cumplen todos los criterios,
// con el estado de ciclo de vida recién evaluado.
func (s *Service) FilterProducts(f ProductFilter) []*entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.RefreshStatuses(s.now())
	var out []*entity.Product
	search := strings.ToLower(f.Search)
	for _, p := range s.store.All() {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.IDH), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(p.Batch), search) {
			continue
		}
		if f.Location != "" && p.Location != f.Location {
			continue
		}
		if f.Status != "" {
			if f.Status == StatusLowStock {
				if !p.Quantity.LessThan(LowStockThreshold) {
					continue
				}
			} else if p.Status != f.Status {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// MovementFilter criterios de filtrado de movimientos. Date es una fecha de
// calendario (2006-01-02) comparada contra el día del movimiento;
// Description exige coincidencia exacta.
type MovementFilter struct {
	Date        string
	Description string
}

// FilterMovements devuelve las entradas del libro que cumplen los criterios,
// en orden de inserción.
func (s *Service) FilterMovements(f MovementFilter) []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Movement
	for _, m := range s.ledger.All() {
		if f.Date != "" && m.Date.Format("2006-01-02") != f.Date {
			continue
		}
		if f.Description != "" && m.Description != f.Description {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TotalQuantity suma de kilogramos de todos los productos vivos.
func (s *Service) TotalQuantity() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, p := range s.store.All() {
		total = total.Add(p.Quantity)
	}
	return total
}

// QuantityByLocation kilogramos por ubicación, en orden de primera aparición.
func (s *Service) QuantityByLocation() []dto.LocationTotalDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []dto.LocationTotalDTO
	index := map[string]int{}
	for _, p := range s.store.All() {
		i, ok := index[p.Location]
		if !ok {
			i = len(out)
			index[p.Location] = i
			out = append(out, dto.LocationTotalDTO{Location: p.Location, Quantity: decimal.Zero})
		}
		out[i].Quantity = out[i].Quantity.Add(p.Quantity)
	}
	return out
}

// MonthlyConsumption serie de consumo de los últimos 6 meses (mes en curso
// incluido), clave "Ene 2026", meses sin consumo en cero.
func (s *Service) MonthlyConsumption() []dto.MonthlyConsumptionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())

	out := make([]dto.MonthlyConsumptionDTO, 0, 6)
	index := map[string]int{}
	for i := 5; i >= 0; i-- {
		key := monthKey(first.AddDate(0, -i, 0))
		index[key] = len(out)
		out = append(out, dto.MonthlyConsumptionDTO{Month: key, Total: decimal.Zero})
	}
	for _, mv := range s.ledger.All() {
		if mv.Type != entity.MovementConsumo {
			continue
		}
		if i, ok := index[monthKey(mv.Date)]; ok {
			out[i].Total = out[i].Total.Add(mv.Quantity)
		}
	}
	return out
}

// Alerts recalcula la lista completa de avisos: warning por producto próximo
// a vencer, danger por stock bajo; un producto puede producir ambos.
func (s *Service) Alerts() []*entity.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.store.RefreshStatuses(now)
	return BuildAlerts(s.store.All(), now)
}

// BuildAlerts deriva los avisos de un conjunto de productos con estados ya
// evaluados. Función pura; el motor la usa dentro de su propia sección
// crítica.
func BuildAlerts(products []*entity.Product, now time.Time) []*entity.Alert {
	var alerts []*entity.Alert
	for _, p := range products {
		if p.Status == entity.StatusProximo {
			alerts = append(alerts, &entity.Alert{
				Type:    entity.AlertWarning,
				Message: fmt.Sprintf("El producto %s (Lote: %s) está próximo a vencer", p.Description, p.Batch),
				Date:    p.ExpiryDate,
			})
		}
		if p.Quantity.LessThan(LowStockThreshold) {
			alerts = append(alerts, &entity.Alert{
				Type:    entity.AlertDanger,
				Message: fmt.Sprintf("Stock bajo: %s (Lote: %s) - %skg restantes", p.Description, p.Batch, p.Quantity),
				Date:    now,
			})
		}
	}
	return alerts
}

// GroupByDescription particiona los productos vivos por descripción, con
// total de kg y conteo de lotes por estado, en orden de primera aparición.
func (s *Service) GroupByDescription() []dto.ArticleGroupDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.RefreshStatuses(s.now())
	var out []dto.ArticleGroupDTO
	index := map[string]int{}
	for _, p := range s.store.All() {
		i, ok := index[p.Description]
		if !ok {
			i = len(out)
			index[p.Description] = i
			out = append(out, dto.ArticleGroupDTO{Description: p.Description, TotalQuantity: decimal.Zero})
		}
		out[i].TotalQuantity = out[i].TotalQuantity.Add(p.Quantity)
		switch p.Status {
		case entity.StatusVigente:
			out[i].Vigentes++
		case entity.StatusProximo:
			out[i].Proximos++
		case entity.StatusVencido:
			out[i].Vencidos++
		}
	}
	return out
}

// DashboardStats tarjetas del panel: totales, próximos a vencer, stock bajo,
// consumo del mes en curso y número de alertas.
func (s *Service) DashboardStats() dto.DashboardStatsDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.store.RefreshStatuses(now)

	stats := dto.DashboardStatsDTO{
		TotalProducts:      s.store.Len(),
		MonthlyConsumption: decimal.Zero,
	}
	for _, p := range s.store.All() {
		if p.Status == entity.StatusProximo {
			stats.ExpiringSoon++
		}
		if p.Quantity.LessThan(LowStockThreshold) {
			stats.LowStock++
		}
	}
	currentKey := monthKey(now)
	for _, mv := range s.ledger.All() {
		if mv.Type == entity.MovementConsumo && monthKey(mv.Date) == currentKey {
			stats.MonthlyConsumption = stats.MonthlyConsumption.Add(mv.Quantity)
		}
	}
	stats.AlertCount = stats.ExpiringSoon + stats.LowStock
	return stats
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}
