package usecase

import (
	"strings"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProductFilterKind discrimina la unión de filtros del listado de productos.
type ProductFilterKind int

// Variantes del filtro: todo, una categoría exacta o búsqueda de texto.
// Elegir una variante descarta las demás por construcción (categoría y
// búsqueda son mutuamente excluyentes, igual que en la pantalla de almacén).
const (
	ProductFilterAll ProductFilterKind = iota
	ProductFilterUtility
	ProductFilterSearch
)

// ProductFilter es la unión etiquetada All | Category | SearchText.
type ProductFilter struct {
	kind    ProductFilterKind
	utility entity.Utility
	query   string
}

// AllProducts no restringe el listado.
func AllProducts() ProductFilter { return ProductFilter{kind: ProductFilterAll} }

// ByUtility restringe a una categoría exacta.
func ByUtility(u entity.Utility) ProductFilter {
	return ProductFilter{kind: ProductFilterUtility, utility: u}
}

// BySearch restringe por texto libre sobre título, descripción y etiqueta de
// categoría.
func BySearch(query string) ProductFilter {
	query = strings.TrimSpace(query)
	if query == "" {
		return AllProducts()
	}
	return ProductFilter{kind: ProductFilterSearch, query: query}
}

// Kind devuelve la variante activa.
func (f ProductFilter) Kind() ProductFilterKind { return f.kind }

// Matches evalúa el filtro contra un producto.
func (f ProductFilter) Matches(p *entity.Product) bool {
	switch f.kind {
	case ProductFilterUtility:
		return p.Utility == f.utility
	case ProductFilterSearch:
		needle := strings.ToLower(f.query)
		return strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Utility.DisplayName()), needle)
	default:
		return true
	}
}
