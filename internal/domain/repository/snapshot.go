// Package repository define los puertos de persistencia del dominio.
package repository

import "github.com/jhoicas/inventaripro/internal/domain/entity"

// SnapshotStore persiste las dos colecciones como instantáneas completas bajo
// claves independientes. La ausencia de una clave equivale a colección vacía
// (no es error). Cada Save reescribe la colección entera; no hay formato de
// deltas.
type SnapshotStore interface {
	LoadProducts() ([]*entity.Product, error)
	LoadMovements() ([]*entity.Movement, error)
	SaveProducts(products []*entity.Product) error
	SaveMovements(movements []*entity.Movement) error
	Close() error
}
