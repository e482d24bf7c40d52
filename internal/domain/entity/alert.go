package entity

import "time"

// Tipos de alerta del panel.
const (
	AlertWarning = "warning" // próximo a vencer
	AlertDanger  = "danger"  // stock bajo
)

// Alert aviso derivado del estado actual del inventario. Las alertas se
// recalculan completas tras cada mutación, nunca se parchean.
type Alert struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
