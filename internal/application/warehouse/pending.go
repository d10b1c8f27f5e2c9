// Package warehouse implementa el flujo de piso del almacén: acumulación de
// cambios pendientes de stock y su commit atómico al catálogo más el libro
// de movimientos.
package warehouse

import (
	"sort"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// PendingChange es un ajuste de stock propuesto y todavía no confirmado.
// La clave del mapa es el ProductID: como máximo un cambio neto por producto.
type PendingChange struct {
	ProductID int64
	Title     string
	Baseline  int // conteo del catálogo al primer toque de este lote
	Proposed  int // conteo resultante con los cambios acumulados
	Delta     int // Proposed - Baseline
}

// PendingLedger guarda en memoria el borrador de ajustes de una sesión.
// Nunca escribe en persistencia; solo lee el conteo base del catálogo.
type PendingLedger struct {
	mu       sync.Mutex
	changes  map[int64]PendingChange
	products repository.ProductRepository
}

// NewPendingLedger construye el borrador vacío.
func NewPendingLedger(products repository.ProductRepository) *PendingLedger {
	return &PendingLedger{
		changes:  make(map[int64]PendingChange),
		products: products,
	}
}

// Propose aplica un delta entero (cualquier magnitud) al cambio pendiente del
// producto. Es la primitiva aritmética: no aplica ninguna guarda de stock
// negativo; eso es responsabilidad de Increase/Decrease.
//
// Si el delta acumulado vuelve a cero, la entrada se elimina del borrador:
// un cambio nulo jamás llega al commit ni se muestra al usuario.
func (l *PendingLedger) Propose(productID int64, delta int) (PendingChange, error) {
	product, err := l.products.GetByID(productID)
	if err != nil {
		return PendingChange{}, err
	}
	if product == nil {
		return PendingChange{}, domain.ErrNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	change, ok := l.changes[productID]
	if !ok {
		change = PendingChange{
			ProductID: productID,
			Title:     product.Title,
			Baseline:  product.Count,
			Proposed:  product.Count,
		}
	}
	change.Proposed += delta
	change.Delta = change.Proposed - change.Baseline

	if change.Delta == 0 {
		delete(l.changes, productID)
		return change, nil
	}
	l.changes[productID] = change
	return change, nil
}

// Increase propone +1 para el producto.
func (l *PendingLedger) Increase(productID int64) (PendingChange, error) {
	return l.Propose(productID, 1)
}

// Decrease propone -1 para el producto, rechazando el decremento si dejaría
// la cantidad propuesta por debajo de cero. La guarda vive aquí, en el punto
// de llamada, no dentro de Propose.
func (l *PendingLedger) Decrease(productID int64) (PendingChange, error) {
	current, ok := l.Get(productID)
	if ok {
		if current.Proposed <= 0 {
			return PendingChange{}, domain.ErrNegativeStock
		}
		return l.Propose(productID, -1)
	}

	product, err := l.products.GetByID(productID)
	if err != nil {
		return PendingChange{}, err
	}
	if product == nil {
		return PendingChange{}, domain.ErrNotFound
	}
	if product.Count <= 0 {
		return PendingChange{}, domain.ErrNegativeStock
	}
	return l.Propose(productID, -1)
}

// Get devuelve el cambio pendiente del producto, si existe.
func (l *PendingLedger) Get(productID int64) (PendingChange, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	change, ok := l.changes[productID]
	return change, ok
}

// Snapshot devuelve una vista inmutable y ordenada (por ProductID) de todos
// los cambios pendientes. Se usa para mostrar el resumen y para iterar
// durante el commit.
func (l *PendingLedger) Snapshot() []PendingChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PendingChange, 0, len(l.changes))
	for _, change := range l.changes {
		out = append(out, change)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// Clear descarta todos los cambios pendientes sin tocar el catálogo.
func (l *PendingLedger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.changes = make(map[int64]PendingChange)
}
