package inventory

import (
	"github.com/jhoicas/inventaripro/internal/domain/entity"
	"github.com/jhoicas/inventaripro/pkg/logger"
)

// Notifier es el contrato del núcleo hacia la capa de presentación: el motor
// notifica tras cada mutación y ante cada fallo; render, gráficos y archivos
// son responsabilidad del colaborador.
type Notifier interface {
	OnProductsChanged(products []*entity.Product)
	OnMovementsChanged(movements []*entity.Movement)
	OnAlertsChanged(alerts []*entity.Alert)
	OnError(kind, message string)
}

// NopNotifier descarta todas las notificaciones.
type NopNotifier struct{}

func (NopNotifier) OnProductsChanged([]*entity.Product)   {}
func (NopNotifier) OnMovementsChanged([]*entity.Movement) {}
func (NopNotifier) OnAlertsChanged([]*entity.Alert)       {}
func (NopNotifier) OnError(string, string)                {}

// LogNotifier publica las notificaciones como log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) OnProductsChanged(products []*entity.Product) {
	l.log.Debug().Int("productos", len(products)).Msg("inventario actualizado")
}

func (l *LogNotifier) OnMovementsChanged(movements []*entity.Movement) {
	l.log.Debug().Int("movimientos", len(movements)).Msg("libro de movimientos actualizado")
}

func (l *LogNotifier) OnAlertsChanged(alerts []*entity.Alert) {
	l.log.Info().Int("alertas", len(alerts)).Msg("alertas recalculadas")
}

func (l *LogNotifier) OnError(kind, message string) {
	l.log.Warn().Str("kind", kind).Msg(message)
}

// MultiNotifier reparte cada notificación a varios colaboradores en orden.
type MultiNotifier []Notifier

func (m MultiNotifier) OnProductsChanged(products []*entity.Product) {
	for _, n := range m {
		n.OnProductsChanged(products)
	}
}

func (m MultiNotifier) OnMovementsChanged(movements []*entity.Movement) {
	for _, n := range m {
		n.OnMovementsChanged(movements)
	}
}

func (m MultiNotifier) OnAlertsChanged(alerts []*entity.Alert) {
	for _, n := range m {
		n.OnAlertsChanged(alerts)
	}
}

func (m MultiNotifier) OnError(kind, message string) {
	for _, n := range m {
		n.OnError(kind, message)
	}
}
