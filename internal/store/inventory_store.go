// Package store mantiene el estado vivo del sistema: el conjunto de productos
// actuales y el libro de movimientos. Es el propietario exclusivo de ambos;
// la persistencia es una instantánea externa que se reescribe tras cada
// mutación (ver repository.SnapshotStore).
package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventaripro/internal/domain"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/domain/inventory"
)

// InventoryStore conjunto de productos vivos. Garantiza la unicidad del par
// (IDH, Lote) y que la cantidad nunca sea negativa. El orden de inserción se
// conserva para vistas y persistencia.
//
// No es seguro para uso concurrente: el motor de movimientos serializa todas
// las operaciones con un único mutex.
type InventoryStore struct {
	products []*entity.Product
	byID     map[int64]*entity.Product
}

// NewInventoryStore construye el store a partir de la instantánea cargada
// (nil o vacía para un arranque en frío).
func NewInventoryStore(products []*entity.Product) *InventoryStore {
	s := &InventoryStore{byID: make(map[int64]*entity.Product, len(products))}
	for _, p := range products {
		cp := *p
		s.products = append(s.products, &cp)
		s.byID[cp.ID] = &cp
	}
	return s
}

// Register agrega un producto nuevo. Falla con ErrDuplicateKey si ya existe
// un producto con el mismo (IDH, Lote). Asigna el ID (milisegundos unix de
// now), estampa DateAdded/LastModified y deja el estado en vigente, pendiente
// de la primera evaluación.
func (s *InventoryStore) Register(candidate *entity.Product, now time.Time) (*entity.Product, error) {
	if existing := s.Find(candidate.IDH, candidate.Batch); existing != nil {
		return nil, fmt.Errorf("%w: IDH %s, lote %s", domain.ErrDuplicateKey, candidate.IDH, candidate.Batch)
	}
	p := *candidate
	p.ID = now.UnixMilli()
	// Dos altas en el mismo milisegundo no deben colisionar.
	for s.byID[p.ID] != nil {
		p.ID++
	}
	p.Status = entity.StatusVigente
	p.DateAdded = now
	p.LastModified = now
	s.products = append(s.products, &p)
	s.byID[p.ID] = &p
	return &p, nil
}

// Find busca por identidad natural (IDH, Lote). Comparación exacta, sensible
// a mayúsculas. Devuelve nil si no existe.
func (s *InventoryStore) Find(idh, batch string) *entity.Product {
	for _, p := range s.products {
		if p.IDH == idh && p.Batch == batch {
			return p
		}
	}
	return nil
}

// FindByID busca por ID. Devuelve nil si no existe.
func (s *InventoryStore) FindByID(id int64) *entity.Product {
	return s.byID[id]
}

// MutateLocation actualiza ubicación y sub-ubicación sin tocar la cantidad.
func (s *InventoryStore) MutateLocation(id int64, location, specificLocation string, now time.Time) error {
	p := s.byID[id]
	if p == nil {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	p.Location = location
	p.SpecificLocation = specificLocation
	p.LastModified = now
	return nil
}

// DecrementQuantity resta la cantidad indicada. Falla con ErrInsufficientStock
// (incluyendo el disponible en el mensaje) si amount supera el stock actual;
// en ese caso el producto queda intacto.
func (s *InventoryStore) DecrementQuantity(id int64, amount decimal.Decimal, now time.Time) error {
	p := s.byID[id]
	if p == nil {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	if amount.GreaterThan(p.Quantity) {
		return fmt.Errorf("%w. Disponible: %skg", domain.ErrInsufficientStock, p.Quantity)
	}
	p.Quantity = p.Quantity.Sub(amount)
	p.LastModified = now
	return nil
}

// Remove elimina el producto y devuelve la copia previa al borrado para
// auditoría. ok es false si el ID no existe; el llamador debe comprobarlo.
func (s *InventoryStore) Remove(id int64) (snapshot *entity.Product, ok bool) {
	p := s.byID[id]
	if p == nil {
		return nil, false
	}
	cp := *p
	delete(s.byID, id)
	for i, q := range s.products {
		if q.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	return &cp, true
}

// RefreshStatuses reevalúa el estado de ciclo de vida de todos los productos
// contra asOf. Debe llamarse antes de cualquier lectura que dependa del
// estado.
func (s *InventoryStore) RefreshStatuses(asOf time.Time) {
	for _, p := range s.products {
		p.Status = inventory.EvaluateStatus(p.ExpiryDate, asOf)
	}
}

// All devuelve los productos vivos en orden de inserción. Las entradas
// devueltas son copias, igual que en el libro: los punteros vivos del store
// nunca salen de la sección crítica del motor.
func (s *InventoryStore) All() []*entity.Product {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// Len cantidad de productos vivos.
func (s *InventoryStore) Len() int { return len(s.products) }
