package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto (todos los campos requeridos).
// Quantity y Price son punteros para distinguir "ausente" de cero.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	SKU         string           `json:"sku"`
	ImageURL    string           `json:"image_url"`
	Description string           `json:"description"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
}

// CreateProductResponse salida de creación: id generado + confirmación.
type CreateProductResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// UpdateQuantityRequest entrada para la actualización parcial: solo quantity.
// Cualquier otro campo del payload se ignora y no afecta al producto.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantityResponse salida de la actualización de cantidad.
// La clave "New quantity" se conserva tal cual viaja por el wire.
type UpdateQuantityResponse struct {
	NewQuantity int `json:"New quantity"`
}

// ProductResponse proyección whitelist de un producto para respuestas.
type ProductResponse struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	SKU         string          `json:"sku"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// ProductListResponse página de productos con metadatos de paginación.
type ProductListResponse struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []ProductResponse `json:"results"`
}
