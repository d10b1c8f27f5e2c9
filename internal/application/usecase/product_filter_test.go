package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var (
	martilloP = &entity.Product{ID: 1, Title: "Martillo", Description: "De bola", Utility: entity.UtilityTools}
	cascoP    = &entity.Product{ID: 2, Title: "Casco", Description: "Blanco", Utility: entity.UtilityPPE}
)

// Sin filtro entra todo.
func TestProductFilter_All(t *testing.T) {
	f := usecase.AllProducts()
	assert.True(t, f.Matches(martilloP))
	assert.True(t, f.Matches(cascoP))
}

// El filtro por categoría es una igualdad exacta.
func TestProductFilter_PorCategoria(t *testing.T) {
	f := usecase.ByUtility(entity.UtilityTools)
	assert.True(t, f.Matches(martilloP))
	assert.False(t, f.Matches(cascoP))
}

// La búsqueda recorre título, descripción y etiqueta de categoría, sin
// distinguir mayúsculas.
func TestProductFilter_Busqueda(t *testing.T) {
	assert.True(t, usecase.BySearch("MARTI").Matches(martilloP))
	assert.True(t, usecase.BySearch("bola").Matches(martilloP))
	assert.True(t, usecase.BySearch("herramienta").Matches(martilloP), "la etiqueta visible también participa")
	assert.False(t, usecase.BySearch("casco").Matches(martilloP))
}

// Una búsqueda vacía degenera en "todo": no existe la variante búsqueda-vacía.
func TestProductFilter_BusquedaVaciaEsAll(t *testing.T) {
	f := usecase.BySearch("   ")
	assert.Equal(t, usecase.ProductFilterAll, f.Kind())
	assert.True(t, f.Matches(cascoP))
}
