package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrNegativeStock    = errors.New("la cantidad propuesta no puede ser negativa")
	ErrEmployeeRequired = errors.New("se requiere un empleado seleccionado")
	ErrNothingPending   = errors.New("no hay cambios pendientes")
)
