// Package inventory implementa el motor de movimientos: el único camino por
// el que un producto cambia de estado. Cada operación valida primero, muta
// después y agrega exactamente una entrada al libro, de forma atómica: si la
// validación falla no se escribe nada.
package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/domain"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/domain/repository"
	"github.com/jhoicas/inventaripro/internal/store"
)

// Motivos y actores por defecto de los movimientos generados por el sistema.
const (
	reasonInitialRegistration = "Registro inicial de producto"
	reasonProductRemoved      = "Producto eliminado del sistema"
)

// RegisterInput datos de alta de un producto.
type RegisterInput struct {
	IDH              string
	Description      string
	Batch            string
	Quantity         decimal.Decimal
	ExpiryDate       time.Time
	Location         string
	SpecificLocation string
	Notes            string
	QualityStatus    string
}

// MovementInput datos de una transferencia o un consumo. SpecificDestination
// es parámetro explícito de la operación: solo se conserva cuando el destino
// de una transferencia lleva sub-ubicación.
type MovementInput struct {
	IDH                 string
	Batch               string
	Quantity            decimal.Decimal
	Origin              string
	Destination         string
	SpecificDestination string
	Responsible         string
	Reason              string
}

// MovementEngine ejecuta altas, transferencias, consumos y eliminaciones
// contra el store, emitiendo la entrada del libro en la misma operación.
// Un único mutex —compartido con la capa de consultas— serializa cada
// secuencia validar→mutar→registrar→persistir; ninguna operación ni lectura
// puede intercalarse dentro de otra.
type MovementEngine struct {
	mu           *sync.Mutex
	store        *store.InventoryStore
	ledger       *store.Ledger
	snapshots    repository.SnapshotStore
	notifier     Notifier
	defaultActor string
	now          func() time.Time
}

// NewMovementEngine construye el motor. mu es el mutex que serializa el
// acceso al estado (compartido con query.Service); notifier nil equivale a
// NopNotifier.
func NewMovementEngine(
	mu *sync.Mutex,
	st *store.InventoryStore,
	ledger *store.Ledger,
	snapshots repository.SnapshotStore,
	notifier Notifier,
	defaultActor string,
) *MovementEngine {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &MovementEngine{
		mu:           mu,
		store:        st,
		ledger:       ledger,
		snapshots:    snapshots,
		notifier:     notifier,
		defaultActor: defaultActor,
		now:          time.Now,
	}
}

// Register da de alta un producto y registra su movimiento de registro
// inicial (origen "N/A", cantidad completa). Falla con ErrDuplicateKey si ya
// existe un producto con el mismo (IDH, Lote).
func (e *MovementEngine) Register(input RegisterInput) (*entity.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if input.IDH == "" || input.Batch == "" || input.Location == "" {
		return nil, e.fail(fmt.Errorf("%w: IDH, lote y ubicación son obligatorios", domain.ErrValidation))
	}
	if input.Quantity.IsNegative() {
		return nil, e.fail(fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrValidation))
	}
	if input.QualityStatus == "" {
		input.QualityStatus = entity.QualityAprobado
	}
	if !entity.ValidQualityStatus(input.QualityStatus) {
		return nil, e.fail(fmt.Errorf("%w: estado de calidad desconocido %q", domain.ErrValidation, input.QualityStatus))
	}

	specific := input.SpecificLocation
	if !entity.HasSpecificLocation(input.Location) {
		specific = ""
	}

	now := e.now()
	candidate := &entity.Product{
		IDH:              input.IDH,
		Description:      input.Description,
		Batch:            input.Batch,
		Quantity:         input.Quantity,
		ExpiryDate:       input.ExpiryDate,
		Location:         input.Location,
		SpecificLocation: specific,
		Notes:            input.Notes,
		QualityStatus:    input.QualityStatus,
	}
	p, err := e.store.Register(candidate, now)
	if err != nil {
		return nil, e.fail(err)
	}

	e.ledger.Append(&entity.Movement{
		ID:                  uuid.NewString(),
		ProductID:           p.ID,
		IDH:                 p.IDH,
		Description:         p.Description,
		Batch:               p.Batch,
		Type:                entity.MovementRegistroInicial,
		Quantity:            p.Quantity,
		Origin:              entity.OriginNA,
		Destination:         p.Location,
		SpecificDestination: p.SpecificLocation,
		Responsible:         e.defaultActor,
		Reason:              reasonInitialRegistration,
		Date:                now,
		Timestamp:           now.Format(entity.TimestampLayout),
	})
	if err := e.commit(now); err != nil {
		return nil, err
	}
	// Copia tras el commit, con el estado ya evaluado: el puntero vivo del
	// store no sale de la sección crítica.
	cp := *p
	return &cp, nil
}

// Transfer reubica un producto. El origen declarado debe coincidir con la
// ubicación actual del producto; la cantidad queda como dato de auditoría
// (una transferencia mueve el producto, no lo divide).
func (e *MovementEngine) Transfer(input MovementInput) error {
	return e.processMovement(entity.MovementTransferencia, input)
}

// Consume descuenta stock de forma irreversible. Origen y destino son texto
// libre (solo las transferencias validan el origen contra la ubicación).
func (e *MovementEngine) Consume(input MovementInput) error {
	return e.processMovement(entity.MovementConsumo, input)
}

func (e *MovementEngine) processMovement(kind string, input MovementInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Validación completa antes de cualquier mutación: la primera regla
	// violada gana y no queda rastro en store ni libro.
	if input.IDH == "" || input.Batch == "" || input.Responsible == "" ||
		input.Origin == "" || input.Destination == "" {
		return e.fail(fmt.Errorf("%w: completa todos los campos obligatorios", domain.ErrValidation))
	}
	if !input.Quantity.IsPositive() {
		return e.fail(fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrValidation))
	}

	p := e.store.Find(input.IDH, input.Batch)
	if p == nil {
		return e.fail(fmt.Errorf("%w: IDH %s, lote %s", domain.ErrNotFound, input.IDH, input.Batch))
	}

	now := e.now()
	switch kind {
	case entity.MovementTransferencia:
		if p.Location != input.Origin {
			return e.fail(fmt.Errorf("%w (%s). Ubicación actual: %s",
				domain.ErrLocationMismatch, input.Origin, p.Location))
		}
		specific := ""
		if entity.HasSpecificLocation(input.Destination) {
			specific = input.SpecificDestination
		}
		if err := e.store.MutateLocation(p.ID, input.Destination, specific, now); err != nil {
			return e.fail(err)
		}
	case entity.MovementConsumo:
		if err := e.store.DecrementQuantity(p.ID, input.Quantity, now); err != nil {
			return e.fail(err)
		}
	}

	e.ledger.Append(&entity.Movement{
		ID:                  uuid.NewString(),
		ProductID:           p.ID,
		IDH:                 p.IDH,
		Description:         p.Description,
		Batch:               p.Batch,
		Type:                kind,
		Quantity:            input.Quantity,
		Origin:              input.Origin,
		Destination:         input.Destination,
		SpecificDestination: p.SpecificLocation,
		Responsible:         input.Responsible,
		Reason:              input.Reason,
		Date:                now,
		Timestamp:           now.Format(entity.TimestampLayout),
	})
	return e.commit(now)
}

// Delete elimina el producto y registra el movimiento terminal con la
// cantidad restante al momento del borrado. La confirmación interactiva es
// responsabilidad de la capa de presentación.
func (e *MovementEngine) Delete(id int64) (*entity.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.store.Remove(id)
	if !ok {
		return nil, e.fail(fmt.Errorf("%w: id %d", domain.ErrNotFound, id))
	}

	now := e.now()
	e.ledger.Append(&entity.Movement{
		ID:          uuid.NewString(),
		ProductID:   p.ID,
		IDH:         p.IDH,
		Description: p.Description,
		Batch:       p.Batch,
		Type:        entity.MovementEliminacion,
		Quantity:    p.Quantity,
		Origin:      p.Location,
		Destination: entity.DestinationRemoved,
		Responsible: e.defaultActor,
		Reason:      reasonProductRemoved,
		Date:        now,
		Timestamp:   now.Format(entity.TimestampLayout),
	})
	return p, e.commit(now)
}

// commit cierra una mutación exitosa: reevalúa estados, notifica las vistas
// derivadas y reescribe ambas instantáneas. Un fallo de persistencia se
// reporta como ErrStorage; la mutación en memoria ya quedó aplicada y el
// libro conserva su entrada.
func (e *MovementEngine) commit(now time.Time) error {
	e.store.RefreshStatuses(now)
	e.notifier.OnProductsChanged(e.store.All())
	e.notifier.OnMovementsChanged(e.ledger.All())
	e.notifier.OnAlertsChanged(query.BuildAlerts(e.store.All(), now))

	if err := e.snapshots.SaveProducts(e.store.All()); err != nil {
		return e.fail(fmt.Errorf("%w: productos: %v", domain.ErrStorage, err))
	}
	if err := e.snapshots.SaveMovements(e.ledger.All()); err != nil {
		return e.fail(fmt.Errorf("%w: movimientos: %v", domain.ErrStorage, err))
	}
	return nil
}

// fail notifica el error al colaborador de presentación y lo devuelve.
func (e *MovementEngine) fail(err error) error {
	e.notifier.OnError(domain.Kind(err), err.Error())
	return err
}
