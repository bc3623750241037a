package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

func TestFormatNumber(t *testing.T) {
	d := func(s string) *decimal.Decimal { v := decimal.RequireFromString(s); return &v }

	assert.Equal(t, "-", formatNumber(nil))
	assert.Equal(t, "0", formatNumber(d("0")))
	assert.Equal(t, "999", formatNumber(d("999")))
	assert.Equal(t, "1.000", formatNumber(d("1000")))
	assert.Equal(t, "169.762.429", formatNumber(d("169762429")))
	assert.Equal(t, "1.234,50", formatNumber(d("1234.5")))
	assert.Equal(t, "-12.000", formatNumber(d("-12000")))
}

func TestRender_GeneraPDF(t *testing.T) {
	q := decimal.NewFromInt(169762429)
	sub := entity.Subcategory("viniferas")
	ds := &entity.Dataset{
		Category:    entity.CategoryProcessamento,
		Subcategory: &sub,
		StartYear:   2020,
		EndYear:     2020,
		Source:      "http://vitibrasil.cnpuv.embrapa.br",
		Years: []entity.YearData{{
			Year: 2020,
			Unit: "Kg",
			Records: []entity.Record{
				{Item: "TINTAS", Quantity: &q},
				{Item: "TINTAS", Subitem: "Bordo", Quantity: &q},
			},
			Total: &entity.Total{Quantity: &q},
		}},
	}

	g := NewMarotoPDFGenerator("vitivinicultura-api")
	out, err := g.Render(context.Background(), ds)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")
	assert.Equal(t, "application/pdf", g.ContentType())
}

func TestRender_DatasetNulo(t *testing.T) {
	_, err := NewMarotoPDFGenerator("x").Render(context.Background(), nil)
	assert.Error(t, err)
}
