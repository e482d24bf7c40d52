// Package jsonfile persiste las instantáneas como dos documentos JSON en
// disco, uno por clave. Misma disciplina que el backend sqlite: la colección
// completa se reescribe tras cada mutación y un archivo ausente equivale a
// colección vacía.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

const (
	productsFile  = "inventoryProducts.json"
	movementsFile = "inventoryMovements.json"
)

// Store implementa repository.SnapshotStore sobre archivos JSON.
type Store struct {
	dir string
}

// NewStore prepara el directorio de datos.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// LoadProducts carga la colección de productos; archivo ausente ⇒ vacía.
func (s *Store) LoadProducts() ([]*entity.Product, error) {
	var out []*entity.Product
	if err := s.load(productsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadMovements carga el libro de movimientos; archivo ausente ⇒ vacío.
func (s *Store) LoadMovements() ([]*entity.Movement, error) {
	var out []*entity.Movement
	if err := s.load(movementsFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveProducts reescribe la colección completa de productos.
func (s *Store) SaveProducts(products []*entity.Product) error {
	return s.save(productsFile, products)
}

// SaveMovements reescribe el libro completo de movimientos.
func (s *Store) SaveMovements(movements []*entity.Movement) error {
	return s.save(movementsFile, movements)
}

// Close no tiene recursos que liberar; existe por el contrato del puerto.
func (s *Store) Close() error { return nil }

func (s *Store) load(name string, dst any) error {
	payload, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", name, err)
	}
	return nil
}

// save escribe a un archivo temporal y renombra, para que una caída a mitad
// de escritura no deje una instantánea corrupta.
func (s *Store) save(name string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", name, err)
	}
	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o640); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
