package viticulture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/vitibrasil"
)

func ptr(s string) *string { return &s }

func newValidator() *viticulture.Validator {
	return viticulture.NewValidator(vitibrasil.DefaultCatalog())
}

func TestValidate_CategoriaInvalida(t *testing.T) {
	v := newValidator()
	for _, cat := range []string{"", "naoexiste", "Producao", "producao ", "viniferas"} {
		for _, sub := range []*string{nil, ptr("viniferas"), ptr("")} {
			_, err := v.Validate(dto.DataQuery{Category: cat, Subcategory: sub, StartYear: ptr("2000")})
			assert.ErrorIs(t, err, domain.ErrInvalidCategory, "categoria %q", cat)
		}
	}
}

func TestValidate_SubcategoriaObligatoria(t *testing.T) {
	v := newValidator()
	cases := []struct {
		category string
		sub      *string
	}{
		{"processamento", nil},
		{"processamento", ptr("")},
		{"processamento", ptr("espumantes")},
		{"importacao", nil},
		{"importacao", ptr("viniferas")},
		{"exportacao", ptr("uvas_passas")}, // uvas_passas solo existe en importação
		{"exportacao", ptr("VINHOS_DE_MESA")},
	}
	for _, tc := range cases {
		_, err := v.Validate(dto.DataQuery{Category: tc.category, Subcategory: tc.sub})
		assert.ErrorIs(t, err, domain.ErrInvalidSubcategory, "%s/%v", tc.category, tc.sub)
	}
}

func TestValidate_SubcategoriaValida(t *testing.T) {
	v := newValidator()
	cases := map[string][]string{
		"processamento": {"viniferas", "americanas_hibridas", "uvas_de_mesa", "sem_classificacao"},
		"importacao":    {"vinhos_de_mesa", "espumantes", "uvas_frescas", "uvas_passas", "suco_de_uva"},
		"exportacao":    {"vinhos_de_mesa", "espumantes", "uvas_frescas", "suco_de_uva"},
	}
	for cat, subs := range cases {
		for _, sub := range subs {
			out, err := v.Validate(dto.DataQuery{Category: cat, Subcategory: ptr(sub)})
			require.NoError(t, err, "%s/%s", cat, sub)
			require.NotNil(t, out.Subcategory)
			assert.Equal(t, entity.Subcategory(sub), *out.Subcategory)
		}
	}
}

func TestValidate_SubcategoriaIgnoradaSinRequerirla(t *testing.T) {
	v := newValidator()
	for _, cat := range []string{"producao", "comercializacao"} {
		for _, sub := range []*string{nil, ptr("viniferas"), ptr("cualquier-cosa")} {
			out, err := v.Validate(dto.DataQuery{Category: cat, Subcategory: sub})
			require.NoError(t, err)
			assert.Nil(t, out.Subcategory, "la subcategoría se descarta para %s", cat)
		}
	}
}

func TestValidate_AniosPorDefecto(t *testing.T) {
	out, err := newValidator().Validate(dto.DataQuery{Category: "producao"})
	require.NoError(t, err)
	assert.Equal(t, viticulture.DefaultStartYear, out.StartYear)
	assert.Equal(t, viticulture.DefaultEndYear, out.EndYear)
	assert.Equal(t, 1970, out.StartYear)
	assert.Equal(t, 2023, out.EndYear)
}

func TestValidate_AniosParseados(t *testing.T) {
	out, err := newValidator().Validate(dto.DataQuery{Category: "producao", StartYear: ptr("2000"), EndYear: ptr(" 2010 ")})
	require.NoError(t, err)
	assert.Equal(t, 2000, out.StartYear)
	assert.Equal(t, 2010, out.EndYear)
}

func TestValidate_RangoInvertidoSePermite(t *testing.T) {
	out, err := newValidator().Validate(dto.DataQuery{Category: "producao", StartYear: ptr("2023"), EndYear: ptr("1970")})
	require.NoError(t, err)
	assert.Equal(t, 2023, out.StartYear)
	assert.Equal(t, 1970, out.EndYear)
}

func TestValidate_AnioNoNumericoUsaDefault(t *testing.T) {
	out, err := newValidator().Validate(dto.DataQuery{Category: "producao", StartYear: ptr("abc"), EndYear: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, 1970, out.StartYear)
	assert.Equal(t, 2023, out.EndYear)
}

func TestValidate_AniosSinLimites(t *testing.T) {
	out, err := newValidator().Validate(dto.DataQuery{Category: "comercializacao", StartYear: ptr("-5"), EndYear: ptr("99999")})
	require.NoError(t, err)
	assert.Equal(t, -5, out.StartYear)
	assert.Equal(t, 99999, out.EndYear)
}
