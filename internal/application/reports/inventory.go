package reports

import (
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryItem es una fila de la vista "material en mano": lo que un empleado
// retiró y todavía no devolvió.
type InventoryItem struct {
	EmployeeID      int64
	EmployeeName    string
	EmployeeSurname string
	ProductID       int64
	ProductTitle    string
	HeldCount       int
}

// HeldInventory deriva el material en mano plegando todo el histórico: agrupa
// por empleado y producto y suma los deltas firmados. Con la convención
// negativo = retirado, un empleado "tiene" un producto cuando la suma es
// negativa; HeldCount es el valor absoluto de esa suma. Sumas cero o
// positivas quedan fuera.
//
// No existe una tabla aparte de "material prestado": la vista se rededuce
// siempre del libro, así nunca puede divergir de él.
func HeldInventory(all []*entity.Report) []InventoryItem {
	type key struct {
		employeeID int64
		productID  int64
	}
	sums := make(map[key]*InventoryItem)

	for _, r := range all {
		k := key{employeeID: r.EmployeeID, productID: r.ProductID}
		item, ok := sums[k]
		if !ok {
			item = &InventoryItem{
				EmployeeID:      r.EmployeeID,
				EmployeeName:    r.EmployeeName,
				EmployeeSurname: r.EmployeeSurname,
				ProductID:       r.ProductID,
				ProductTitle:    r.ProductTitle,
			}
			sums[k] = item
		}
		item.HeldCount += r.ProductCountChange
	}

	out := make([]InventoryItem, 0, len(sums))
	for _, item := range sums {
		if item.HeldCount >= 0 {
			continue
		}
		item.HeldCount = -item.HeldCount
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EmployeeID != out[j].EmployeeID {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out
}
