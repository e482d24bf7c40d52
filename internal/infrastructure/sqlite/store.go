// Package sqlite persiste las instantáneas del inventario en una única tabla
// clave/valor de SQLite embebido. Espejo del formato de frontera: dos claves
// independientes, cada una con su colección completa serializada, reescrita
// entera tras cada mutación (sin deltas).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite puro Go

	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// Claves de persistencia de las dos colecciones.
const (
	productsKey  = "inventoryProducts"
	movementsKey = "inventoryMovements"
)

// Store implementa repository.SnapshotStore sobre SQLite.
type Store struct {
	db *sql.DB
}

// NewStore abre (o crea) la base en path y prepara la tabla de estado.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "inventaripro.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS estado (
		clave   TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear tabla estado: %w", err)
	}
	return &Store{db: db}, nil
}

// LoadProducts carga la colección de productos; clave ausente ⇒ vacía.
func (s *Store) LoadProducts() ([]*entity.Product, error) {
	var out []*entity.Product
	if err := s.load(productsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadMovements carga el libro de movimientos; clave ausente ⇒ vacío.
func (s *Store) LoadMovements() ([]*entity.Movement, error) {
	var out []*entity.Movement
	if err := s.load(movementsKey, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveProducts reescribe la colección completa de productos.
func (s *Store) SaveProducts(products []*entity.Product) error {
	return s.save(productsKey, products)
}

// SaveMovements reescribe el libro completo de movimientos.
func (s *Store) SaveMovements(movements []*entity.Movement) error {
	return s.save(movementsKey, movements)
}

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) load(key string, dst any) error {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM estado WHERE clave = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %s: %w", key, err)
	}
	if _, err := s.db.Exec(`INSERT INTO estado (clave, payload) VALUES (?, ?)
		ON CONFLICT(clave) DO UPDATE SET payload = excluded.payload`, key, payload); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}
