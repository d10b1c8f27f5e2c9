package entity

import "time"

// Utility clasifica el uso de un producto del almacén.
type Utility string

// Categorías válidas de producto.
const (
	UtilityLeakDetection Utility = "leak_detection"
	UtilitySurvey        Utility = "survey"
	UtilityTools         Utility = "tools"
	UtilityPPE           Utility = "ppe"
	UtilityOther         Utility = "other"
)

// AllUtilities lista las categorías en el orden en que se muestran.
var AllUtilities = []Utility{
	UtilityLeakDetection,
	UtilitySurvey,
	UtilityTools,
	UtilityPPE,
	UtilityOther,
}

// DisplayName devuelve la etiqueta visible de la categoría.
// Es lo que se exporta en la columna productUtility del CSV y lo que
// participa en la búsqueda de texto libre.
func (u Utility) DisplayName() string {
	switch u {
	case UtilityLeakDetection:
		return "Detección de fugas"
	case UtilitySurvey:
		return "Inspección"
	case UtilityTools:
		return "Herramientas"
	case UtilityPPE:
		return "EPP"
	default:
		return "Otros"
	}
}

// IsValid indica si la categoría es una de las conocidas.
func (u Utility) IsValid() bool {
	switch u {
	case UtilityLeakDetection, UtilitySurvey, UtilityTools, UtilityPPE, UtilityOther:
		return true
	}
	return false
}

// Product representa un producto rastreado del almacén.
// Count es el stock en mano; nunca queda negativo después de un commit
// (la guarda vive en el lado que propone el decremento, no aquí).
type Product struct {
	ID          int64
	Title       string
	Description string
	Utility     Utility
	Count       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
