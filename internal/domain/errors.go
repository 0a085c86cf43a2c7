package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Reglas de pagos contra el saldo pendiente de la factura.
	ErrInvalidAmount         = errors.New("el monto del pago debe ser mayor a cero")
	ErrPaymentExceedsBalance = errors.New("el pago excede el saldo pendiente de la factura")

	// El envío por correo requiere SMTP configurado y un cliente con email.
	ErrEmailNotConfigured = errors.New("el envío de correos no está configurado")
)
