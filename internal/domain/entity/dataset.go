package entity

import "github.com/shopspring/decimal"

// Record una fila de la tabla de la fuente. Item es la fila principal; las filas
// subordinadas llevan el Item de su padre y el nombre propio en Subitem.
// Quantity y Value son nil cuando la fuente no informa el dato ("-", "*", "nd").
type Record struct {
	Item     string           `json:"item"`
	Subitem  string           `json:"subitem,omitempty"`
	Quantity *decimal.Decimal `json:"quantity"`
	Value    *decimal.Decimal `json:"value,omitempty"`
}

// Total fila de totales de un año.
type Total struct {
	Quantity *decimal.Decimal `json:"quantity"`
	Value    *decimal.Decimal `json:"value,omitempty"`
}

// YearData registros de un año.
type YearData struct {
	Year    int      `json:"year"`
	URL     string   `json:"url"`
	Unit    string   `json:"unit,omitempty"` // ej. "L.", "Kg"
	Records []Record `json:"records"`
	Total   *Total   `json:"total,omitempty"`
}

// Dataset resultado estructurado que devuelve el scraper para una consulta.
type Dataset struct {
	Category    Category     `json:"category"`
	Subcategory *Subcategory `json:"subcategory"`
	StartYear   int          `json:"start_year"`
	EndYear     int          `json:"end_year"`
	Source      string       `json:"source"`
	Years       []YearData   `json:"years"`
}

// RecordCount número total de filas en todos los años.
func (d *Dataset) RecordCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, y := range d.Years {
		n += len(y.Records)
	}
	return n
}

// TotalQuantity suma de los totales informados por año (años sin total no suman).
func (d *Dataset) TotalQuantity() decimal.Decimal {
	sum := decimal.Zero
	if d == nil {
		return sum
	}
	for _, y := range d.Years {
		if y.Total != nil && y.Total.Quantity != nil {
			sum = sum.Add(*y.Total.Quantity)
		}
	}
	return sum
}
