package repository

import (
	"context"

	"github.com/jhoicas/inventory-manage/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y rellena product.ID con el generado por el store.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// UpdateQuantity cambia solo quantity; el resto de campos queda intacto.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// List devuelve una página ordenada por id ascendente.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
