package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Mensajes de validación por campo. Cero es un valor aceptado (>= 0); el texto
// se conserva tal cual viaja por el wire desde la primera versión de la API.
const (
	MsgQuantityInvalid = "Quantity should be greater than 0"
	MsgPriceInvalid    = "Price should be greater than 0"
	MsgFieldRequired   = "This field is required."
)

// ValidateQuantity acepta cantidades >= 0 y devuelve el valor sin cambios.
// Es pura: no toca el store ni muta nada.
func ValidateQuantity(quantity int) (int, error) {
	if quantity < 0 {
		return 0, errors.New(MsgQuantityInvalid)
	}
	return quantity, nil
}

// ValidatePrice acepta precios >= 0 y devuelve el valor sin cambios.
func ValidatePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Decimal{}, errors.New(MsgPriceInvalid)
	}
	return price, nil
}
