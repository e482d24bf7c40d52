package store_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/internal/store"
)

func buildMovement(id string) *entity.Movement {
	return &entity.Movement{
		ID:       id,
		IDH:      "IDH-100",
		Batch:    "L-01",
		Type:     entity.MovementConsumo,
		Quantity: decimal.NewFromInt(3),
		Date:     time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestLedger_ConservaOrdenDeInsercion(t *testing.T) {
	l := store.NewLedger(nil)
	l.Append(buildMovement("a"))
	l.Append(buildMovement("b"))
	l.Append(buildMovement("c"))

	all := l.All()
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestLedger_AllDevuelveCopias(t *testing.T) {
	l := store.NewLedger(nil)
	l.Append(buildMovement("a"))

	l.All()[0].Reason = "mutado desde fuera"
	assert.Empty(t, l.All()[0].Reason, "las entradas devueltas son copias; el libro no se muta desde fuera")
}

func TestLedger_RestauraDesdeSnapshot(t *testing.T) {
	seed := []*entity.Movement{buildMovement("a"), buildMovement("b")}
	l := store.NewLedger(seed)
	assert.Equal(t, 2, l.Len())

	seed[0].Reason = "mutado tras restaurar"
	assert.Empty(t, l.All()[0].Reason)
}
