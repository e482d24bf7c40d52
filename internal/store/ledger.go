package store

import "github.com/jhoicas/inventaripro/internal/domain/entity"

// Ledger libro de movimientos, solo-agregado. Un movimiento entra una única
// vez, como efecto de una operación del motor, y nunca se edita ni se borra:
// es el registro permanente incluso después de eliminar su producto.
type Ledger struct {
	movements []*entity.Movement
}

// NewLedger construye el libro a partir de la instantánea cargada.
func NewLedger(movements []*entity.Movement) *Ledger {
	l := &Ledger{}
	for _, m := range movements {
		cp := *m
		l.movements = append(l.movements, &cp)
	}
	return l
}

// Append agrega un movimiento al final del libro.
func (l *Ledger) Append(m *entity.Movement) {
	cp := *m
	l.movements = append(l.movements, &cp)
}

// All devuelve los movimientos en orden de inserción. Las entradas devueltas
// son copias: el libro no expone sus registros a mutación externa.
func (l *Ledger) All() []*entity.Movement {
	out := make([]*entity.Movement, 0, len(l.movements))
	for _, m := range l.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

// Len tamaño del libro; monótonamente no decreciente.
func (l *Ledger) Len() int { return len(l.movements) }
