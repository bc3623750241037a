package vitibrasil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

const producaoHTML = `<html><body>
<table class="tb_base tb_dados">
  <thead><tr><th>Produto</th><th>Quantidade (L.)</th></tr></thead>
  <tbody>
    <tr><td class="tb_item">VINHO DE MESA</td><td class="tb_item">169.762.429</td></tr>
    <tr><td class="tb_subitem">Tinto</td><td class="tb_subitem">139.320.884</td></tr>
    <tr><td class="tb_subitem">  Rosado </td><td class="tb_subitem">-</td></tr>
    <tr><td class="tb_item">SUCO</td><td class="tb_item">1.234,5</td></tr>
  </tbody>
  <tfoot class="tb_total"><tr><td>Total</td><td>170.996.929</td></tr></tfoot>
</table>
</body></html>`

const importacaoHTML = `<html><body>
<table class="tb_base tb_dados">
  <thead><tr><th>Países</th><th>Quantidade (Kg)</th><th>Valor (US$)</th></tr></thead>
  <tbody>
    <tr><td>Africa do Sul</td><td>522.733</td><td>1.732.850</td></tr>
    <tr><td>Alemanha</td><td>*</td><td>nd</td></tr>
  </tbody>
  <tfoot class="tb_total"><tr><td>Total</td><td>522.733</td><td>1.732.850</td></tr></tfoot>
</table>
</body></html>`

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestParseYear_ItemsYSubitems(t *testing.T) {
	got, err := parseYear([]byte(producaoHTML), 2020, "http://x/index.php?ano=2020")
	require.NoError(t, err)

	want := &entity.YearData{
		Year: 2020,
		URL:  "http://x/index.php?ano=2020",
		Unit: "L.",
		Records: []entity.Record{
			{Item: "VINHO DE MESA", Quantity: dec("169762429")},
			{Item: "VINHO DE MESA", Subitem: "Tinto", Quantity: dec("139320884")},
			{Item: "VINHO DE MESA", Subitem: "Rosado"},
			{Item: "SUCO", Quantity: dec("1234.5")},
		},
		Total: &entity.Total{Quantity: dec("170996929")},
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("parseYear() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYear_TresColumnas(t *testing.T) {
	got, err := parseYear([]byte(importacaoHTML), 2021, "u")
	require.NoError(t, err)

	want := &entity.YearData{
		Year: 2021,
		URL:  "u",
		Unit: "Kg",
		Records: []entity.Record{
			{Item: "Africa do Sul", Quantity: dec("522733"), Value: dec("1732850")},
			{Item: "Alemanha"},
		},
		Total: &entity.Total{Quantity: dec("522733"), Value: dec("1732850")},
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("parseYear() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYear_SinTabla(t *testing.T) {
	_, err := parseYear([]byte("<html><body><p>manutenção</p></body></html>"), 2020, "u")
	assert.Error(t, err)
}

func TestParseYear_NumeroInvalido(t *testing.T) {
	html := `<table class="tb_dados"><tbody><tr><td>X</td><td>doze</td></tr></tbody></table>`
	_, err := parseYear([]byte(html), 2020, "u")
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	cases := map[string]*decimal.Decimal{
		"1.234.567": dec("1234567"),
		" 12,5 ":    dec("12.5"),
		"0":         dec("0"),
		"-":         nil,
		"*":         nil,
		"nd":        nil,
		"":          nil,
	}
	for in, want := range cases {
		got, err := parseNumber(in)
		require.NoError(t, err, in)
		if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
			t.Errorf("parseNumber(%q) (-want +got):\n%s", in, diff)
		}
	}
}

func TestToUTF8(t *testing.T) {
	latin1 := []byte{'P', 'a', 0xED, 's'} // "País" en ISO-8859-1

	out, err := toUTF8(latin1, "text/html; charset=iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "País", string(out))

	out, err = toUTF8(latin1, "text/html")
	require.NoError(t, err)
	assert.Equal(t, "País", string(out), "sin charset y bytes no UTF-8 se asume windows-1252")

	out, err = toUTF8([]byte("País"), "text/html; charset=UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "País", string(out))

	_, err = toUTF8(latin1, "text/html; charset=desconocido")
	assert.Error(t, err)
}
