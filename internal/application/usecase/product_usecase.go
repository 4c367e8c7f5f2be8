package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-manage/internal/application/dto"
	"github.com/jhoicas/inventory-manage/internal/domain"
	"github.com/jhoicas/inventory-manage/internal/domain/entity"
	"github.com/jhoicas/inventory-manage/internal/domain/repository"
)

// PageSize tamaño fijo de página para el listado de productos.
const PageSize = 10

// ProductUseCase casos de uso para productos: creación, listado paginado y
// actualización de cantidad.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida todos los campos del producto y lo persiste. Devuelve el id
// generado por el store. Con errores de campo no se crea ningún registro.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	fieldErrs := domain.FieldErrors{}
	if in.Name == "" {
		fieldErrs.Add("name", domain.MsgFieldRequired)
	}
	if in.Type == "" {
		fieldErrs.Add("type", domain.MsgFieldRequired)
	}
	if in.SKU == "" {
		fieldErrs.Add("sku", domain.MsgFieldRequired)
	}
	if in.ImageURL == "" {
		fieldErrs.Add("image_url", domain.MsgFieldRequired)
	}
	if in.Description == "" {
		fieldErrs.Add("description", domain.MsgFieldRequired)
	}
	if in.Quantity == nil {
		fieldErrs.Add("quantity", domain.MsgFieldRequired)
	} else if _, err := domain.ValidateQuantity(*in.Quantity); err != nil {
		fieldErrs.Add("quantity", err.Error())
	}
	if in.Price == nil {
		fieldErrs.Add("price", domain.MsgFieldRequired)
	} else if _, err := domain.ValidatePrice(*in.Price); err != nil {
		fieldErrs.Add("price", err.Error())
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	product := &entity.Product{
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    *in.Quantity,
		Price:       *in.Price,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{
		ID:      product.ID,
		Message: "Product Created successfully",
	}, nil
}

// List devuelve la página solicitada (1-based, 10 elementos) con count total y
// URLs next/previous. pageURL es la URL absoluta del recurso sin query string.
func (uc *ProductUseCase) List(ctx context.Context, page int, pageURL string) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	offset := (page - 1) * PageSize
	list, err := uc.repo.List(ctx, PageSize, offset)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		results = append(results, toProductResponse(p))
	}

	out := &dto.ProductListResponse{Count: count, Results: results}
	if int64(page*PageSize) < count {
		next := buildPageURL(pageURL, page+1)
		out.Next = &next
	}
	if page > 1 {
		previous := buildPageURL(pageURL, page-1)
		out.Previous = &previous
	}
	return out, nil
}

// UpdateQuantity actualiza solo la cantidad del producto pk. El resto de campos
// queda intacto. La existencia se verifica antes de validar, y la validación
// antes de mutar.
func (uc *ProductUseCase) UpdateQuantity(ctx context.Context, id int64, in dto.UpdateQuantityRequest) (*dto.UpdateQuantityResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	fieldErrs := domain.FieldErrors{}
	if in.Quantity == nil {
		fieldErrs.Add("quantity", domain.MsgFieldRequired)
	} else if _, err := domain.ValidateQuantity(*in.Quantity); err != nil {
		fieldErrs.Add("quantity", err.Error())
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := uc.repo.UpdateQuantity(ctx, id, *in.Quantity); err != nil {
		return nil, err
	}
	return &dto.UpdateQuantityResponse{NewQuantity: *in.Quantity}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		Name:        p.Name,
		Type:        p.Type,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
	}
}

func buildPageURL(pageURL string, page int) string {
	return fmt.Sprintf("%s?page=%d", pageURL, page)
}
