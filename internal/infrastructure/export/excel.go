package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

const sheetName = "Inventario"

// InventoryXLSX genera el reporte completo como libro de Excel: las mismas
// 11 columnas del CSV completo, una hoja, cantidades como número.
func InventoryXLSX(products []*entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	for j, h := range fullHeaders {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera %s: %w", h, err)
		}
	}
	for i, p := range products {
		row := fullRow(p)
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda de datos: %w", err)
			}
			// La cantidad va como número para que Excel pueda sumarla.
			if j == 3 {
				qty, _ := p.Quantity.Float64()
				if err := f.SetCellValue(sheetName, cell, qty); err != nil {
					return nil, fmt.Errorf("xlsx: cantidad fila %d: %w", i+2, err)
				}
				continue
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
