package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity solo se fija al
// crear; después únicamente muta vía el ajustador de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func validatePrices(price, cost decimal.Decimal) error {
	if price.LessThan(decimal.Zero) {
		return &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}
	if cost.LessThan(decimal.Zero) {
		return &domain.ValidationError{Field: "cost_price", Reason: "no puede ser negativo"}
	}
	return nil
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
	}
	if err := validatePrices(in.Price, in.CostPrice); err != nil {
		return nil, err
	}
	if in.Quantity < 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "no puede ser negativa"}
	}
	if in.MinQuantity < 0 {
		return nil, &domain.ValidationError{Field: "min_quantity", Reason: "no puede ser negativa"}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Barcode:     in.Barcode,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "product", ID: id}
	}
	return toProductResponse(product), nil
}

// GetByBarcode obtiene un producto por su código de barras.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "product", ID: barcode}
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Quantity (ajustes de inventario).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "product", ID: id}
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "no puede ser vacío"}
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if err := validatePrices(product.Price, product.CostPrice); err != nil {
		return nil, err
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, &domain.ValidationError{Field: "min_quantity", Reason: "no puede ser negativa"}
		}
		product.MinQuantity = *in.MinQuantity
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Se rechaza con conflicto si existen ventas que
// lo referencian: el libro de ventas es inmutable.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	referenced, err := uc.repo.HasSaleReferences(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return &domain.ConflictError{Resource: "product", ID: id, Reason: "referenciado por ventas registradas"}
	}
	return uc.repo.Delete(ctx, id)
}

// List lista productos con búsqueda y filtro de categoría.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) ([]dto.ProductResponse, error) {
	in.DefaultPage()
	products, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:     in.Search,
		CategoryID: in.CategoryID,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListLowStock lista los productos en o bajo su umbral mínimo.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
