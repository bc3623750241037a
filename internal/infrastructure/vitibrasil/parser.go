package vitibrasil

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

var (
	unitPattern     = regexp.MustCompile(`\(([^)]+)\)`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// parseYear extrae la tabla de datos (table.tb_dados) de una página de Vitibrasil.
//
// Filas con td.tb_subitem pertenecen al último td.tb_item; filas sin clase son ítems
// (tablas de importação/exportação). La última columna numérica es el valor en US$
// cuando la tabla tiene tres columnas.
func parseYear(body []byte, year int, link string) (*entity.YearData, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsear html: %w", err)
	}

	table := doc.Find("table.tb_dados").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("tabela de dados não encontrada (ano %d)", year)
	}

	out := &entity.YearData{
		Year:    year,
		URL:     link,
		Records: []entity.Record{},
	}

	headers := table.Find("thead th")
	if headers.Length() >= 2 {
		if m := unitPattern.FindStringSubmatch(headers.Eq(1).Text()); len(m) == 2 {
			out.Unit = strings.TrimSpace(m[1])
		}
	}

	var parseErr error
	currentItem := ""
	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return true
		}
		name := cleanText(cells.Eq(0).Text())
		if name == "" {
			return true
		}
		quantity, err := parseNumber(cells.Eq(1).Text())
		if err != nil {
			parseErr = fmt.Errorf("ano %d, linha %q: %w", year, name, err)
			return false
		}
		var value *decimal.Decimal
		if cells.Length() >= 3 {
			value, err = parseNumber(cells.Eq(2).Text())
			if err != nil {
				parseErr = fmt.Errorf("ano %d, linha %q: %w", year, name, err)
				return false
			}
		}

		rec := entity.Record{Quantity: quantity, Value: value}
		if cells.First().HasClass("tb_subitem") && currentItem != "" {
			rec.Item = currentItem
			rec.Subitem = name
		} else {
			currentItem = name
			rec.Item = name
		}
		out.Records = append(out.Records, rec)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	footCells := table.Find("tfoot tr").First().Find("td")
	if footCells.Length() >= 2 {
		q, err := parseNumber(footCells.Eq(1).Text())
		if err != nil {
			return nil, fmt.Errorf("ano %d, total: %w", year, err)
		}
		total := &entity.Total{Quantity: q}
		if footCells.Length() >= 3 {
			if total.Value, err = parseNumber(footCells.Eq(2).Text()); err != nil {
				return nil, fmt.Errorf("ano %d, total: %w", year, err)
			}
		}
		out.Total = total
	}

	return out, nil
}

// parseNumber interpreta números con formato brasileño ("1.234.567", "12,5").
// "-", "*", "nd" y vacío significan dato no informado (nil).
func parseNumber(raw string) (*decimal.Decimal, error) {
	s := cleanText(raw)
	switch strings.ToLower(s) {
	case "", "-", "*", "nd", "n/d":
		return nil, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("número inválido %q", raw)
	}
	return &d, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}
