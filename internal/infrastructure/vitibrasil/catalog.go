package vitibrasil

import "github.com/jhoicas/vitivinicultura-api/internal/domain/entity"

// DefaultCatalog catálogo de las pestañas de Vitibrasil. El orden de las subcategorías
// define el número de subopção (subopt_01, subopt_02, ...).
func DefaultCatalog() *entity.Catalog {
	return entity.NewCatalog(
		entity.CategorySpec{Name: entity.CategoryProducao, Option: "opt_02"},
		entity.CategorySpec{
			Name:   entity.CategoryProcessamento,
			Option: "opt_03",
			Subcategories: []entity.Subcategory{
				"viniferas", "americanas_hibridas", "uvas_de_mesa", "sem_classificacao",
			},
		},
		entity.CategorySpec{Name: entity.CategoryComercializacao, Option: "opt_04"},
		entity.CategorySpec{
			Name:   entity.CategoryImportacao,
			Option: "opt_05",
			Subcategories: []entity.Subcategory{
				"vinhos_de_mesa", "espumantes", "uvas_frescas", "uvas_passas", "suco_de_uva",
			},
		},
		entity.CategorySpec{
			Name:   entity.CategoryExportacao,
			Option: "opt_06",
			Subcategories: []entity.Subcategory{
				"vinhos_de_mesa", "espumantes", "uvas_frescas", "suco_de_uva",
			},
		},
	)
}
