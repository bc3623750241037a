package entity

import "sort"

// Category identifica un conjunto de datos de primer nivel (una pestaña de Vitibrasil).
type Category string

// Subcategory filtro secundario; solo existe para procesamiento, importación y exportación.
type Subcategory string

// Categorías conocidas.
const (
	CategoryProducao        Category = "producao"
	CategoryProcessamento   Category = "processamento"
	CategoryComercializacao Category = "comercializacao"
	CategoryImportacao      Category = "importacao"
	CategoryExportacao      Category = "exportacao"
)

// CategorySpec describe una categoría del catálogo: sus subcategorías en orden y el código
// de opción que usa la fuente externa.
type CategorySpec struct {
	Name          Category
	Option        string        // ej. "opt_02"
	Subcategories []Subcategory // vacío si la categoría no admite subcategoría
}

// Catalog configuración inmutable de categorías y subcategorías. Se construye una vez al
// arrancar y se comparte en solo lectura (seguro para lecturas concurrentes).
type Catalog struct {
	specs map[Category]CategorySpec
	order []Category
}

// NewCatalog construye el catálogo copiando las especificaciones recibidas.
func NewCatalog(specs ...CategorySpec) *Catalog {
	c := &Catalog{specs: make(map[Category]CategorySpec, len(specs))}
	for _, s := range specs {
		subs := make([]Subcategory, len(s.Subcategories))
		copy(subs, s.Subcategories)
		s.Subcategories = subs
		if _, dup := c.specs[s.Name]; !dup {
			c.order = append(c.order, s.Name)
		}
		c.specs[s.Name] = s
	}
	return c
}

// Has indica si la categoría pertenece al catálogo.
func (c *Catalog) Has(cat Category) bool {
	_, ok := c.specs[cat]
	return ok
}

// RequiresSubcategory indica si la categoría exige una subcategoría válida.
func (c *Catalog) RequiresSubcategory(cat Category) bool {
	s, ok := c.specs[cat]
	return ok && len(s.Subcategories) > 0
}

// HasSubcategory indica si sub es una subcategoría válida de cat.
func (c *Catalog) HasSubcategory(cat Category, sub Subcategory) bool {
	s, ok := c.specs[cat]
	if !ok {
		return false
	}
	for _, v := range s.Subcategories {
		if v == sub {
			return true
		}
	}
	return false
}

// Spec devuelve la especificación de la categoría.
func (c *Catalog) Spec(cat Category) (CategorySpec, bool) {
	s, ok := c.specs[cat]
	return s, ok
}

// SubcategoryIndex posición (base 1) de sub dentro de cat; 0 si no existe.
func (c *Catalog) SubcategoryIndex(cat Category, sub Subcategory) int {
	s, ok := c.specs[cat]
	if !ok {
		return 0
	}
	for i, v := range s.Subcategories {
		if v == sub {
			return i + 1
		}
	}
	return 0
}

// Categories devuelve las categorías en el orden de registro.
func (c *Catalog) Categories() []CategorySpec {
	out := make([]CategorySpec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.specs[name])
	}
	return out
}

// CategoryNames nombres ordenados alfabéticamente (útil para mensajes y documentación).
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.order))
	for _, name := range c.order {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
