package dto

// DataQuery parámetros crudos de GET /api/:category, tal como llegan en la URL.
// Los punteros nil indican parámetro ausente.
type DataQuery struct {
	Category    string
	Subcategory *string
	StartYear   *string
	EndYear     *string
	Format      string
}

// CategoryResponse una entrada del catálogo publicado en GET /api/categories.
type CategoryResponse struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// CatalogResponse salida de GET /api/categories.
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
