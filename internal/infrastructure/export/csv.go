// Package export genera los archivos de reporte del inventario: CSV resumen,
// CSV completo, libro XLSX y PDF. Generación bajo demanda, de una sola vía
// (nunca se reimporta).
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// Columnas del reporte completo, en el orden del archivo.
var fullHeaders = []string{
	"IDH", "Descripción", "Lote", "Cantidad (kg)", "Fecha Caducidad",
	"Ubicación", "Ubicación Específica", "Estado Calidad", "Notas",
	"Estado", "Última Modificación",
}

// SummaryCSV exporta el resumen: una fila por producto vivo con las columnas
// IDH, Descripción, Lote, Cantidad (kg), Fecha Caducidad, Ubicación, Estado.
// Mismo escapado RFC 4180 que el reporte completo.
func SummaryCSV(products []*entity.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"IDH", "Descripción", "Lote", "Cantidad (kg)", "Fecha Caducidad", "Ubicación", "Estado"}); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := w.Write([]string{
			p.IDH,
			p.Description,
			p.Batch,
			p.Quantity.String(),
			p.ExpiryDate.Format("2006-01-02"),
			p.Location,
			p.Status,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// FullCSV exporta el inventario completo con las 11 columnas localizadas y
// los textos de presentación de los estados.
func FullCSV(products []*entity.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fullHeaders); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := w.Write(fullRow(p)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func fullRow(p *entity.Product) []string {
	return []string{
		p.IDH,
		p.Description,
		p.Batch,
		p.Quantity.String(),
		p.ExpiryDate.Format("2006-01-02"),
		p.Location,
		p.SpecificLocation,
		entity.QualityStatusText(p.QualityStatus),
		p.Notes,
		entity.StatusText(p.Status),
		p.LastModified.Format(entity.TimestampLayout),
	}
}
