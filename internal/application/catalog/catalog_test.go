package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-backoffice/internal/application/catalog"
	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products       map[string]*entity.Product
	saleReferenced map[string]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:       make(map[string]*entity.Product),
		saleReferenced: make(map[string]bool),
	}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.products {
		if p.Barcode != "" && existing.Barcode == p.Barcode {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return &domain.NotFoundError{Resource: "product", ID: p.ID}
	}
	qty := stored.Quantity
	cp := *p
	cp.Quantity = qty
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return &domain.NotFoundError{Resource: "product", ID: id}
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.LowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return &domain.NotFoundError{Resource: "product", ID: id}
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) HasSaleReferences(_ context.Context, id string) (bool, error) {
	return r.saleReferenced[id], nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	products   *fakeProductRepo
}

func newFakeCategoryRepo(products *fakeProductRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[string]*entity.Category),
		products:   products,
	}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return &domain.NotFoundError{Resource: "category", ID: c.ID}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) DeleteAndDetachProducts(_ context.Context, id string) (int64, error) {
	if _, ok := r.categories[id]; !ok {
		return 0, &domain.NotFoundError{Resource: "category", ID: id}
	}
	var detached int64
	for _, p := range r.products.products {
		if p.CategoryID == id {
			p.CategoryID = ""
			detached++
		}
	}
	delete(r.categories, id)
	return detached, nil
}

type fakeCatalogTx struct {
	categories *fakeCategoryRepo
	products   *fakeProductRepo
}

func (tx *fakeCatalogTx) RunCatalog(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tx.categories, tx.products)
}

func newCatalog() (*catalog.ProductUseCase, *catalog.CategoryUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo(products)
	tx := &fakeCatalogTx{categories: categories, products: products}
	return catalog.NewProductUseCase(products), catalog.NewCategoryUseCase(categories, tx), products, categories
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_CreateYGet(t *testing.T) {
	uc, _, _, _ := newCatalog()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{
		Barcode:     "7501031311309",
		Name:        "Leche entera 1L",
		Price:       price("1.25"),
		CostPrice:   price("0.90"),
		Quantity:    30,
		MinQuantity: 5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.LowStock)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leche entera 1L", got.Name)

	byBarcode, err := uc.GetByBarcode(ctx, "7501031311309")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byBarcode.ID)
}

func TestProduct_CreateValidaciones(t *testing.T) {
	uc, _, _, _ := newCatalog()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Price: price("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre requerido")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "x", Price: price("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "x", Price: price("1"), Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial negativo")
}

func TestProduct_BarcodeDuplicado(t *testing.T) {
	uc, _, _, _ := newCatalog()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "a", Barcode: "123", Price: price("1")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "b", Barcode: "123", Price: price("1")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_UpdateNoTocaStock(t *testing.T) {
	uc, _, repo, _ := newCatalog()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Azúcar 1kg", Price: price("2.00"), Quantity: 12})
	require.NoError(t, err)

	newName := "Azúcar refinada 1kg"
	newPrice := price("2.25")
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	p, _ := repo.GetByID(ctx, created.ID)
	assert.Equal(t, int64(12), p.Quantity, "la actualización de catálogo nunca escribe quantity")
}

func TestProduct_DeleteConVentasRegistradas(t *testing.T) {
	uc, _, repo, _ := newCatalog()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Pan", Price: price("0.50")})
	require.NoError(t, err)
	repo.saleReferenced[created.ID] = true

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "un producto referenciado por ventas no se elimina")

	_, err = uc.GetByID(ctx, created.ID)
	assert.NoError(t, err, "el producto sigue existiendo")
}

func TestProduct_ListLowStock(t *testing.T) {
	uc, _, _, _ := newCatalog()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Name: "bajo", Price: price("1"), Quantity: 2, MinQuantity: 5})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "justo", Price: price("1"), Quantity: 5, MinQuantity: 5})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "sobrado", Price: price("1"), Quantity: 50, MinQuantity: 5})
	require.NoError(t, err)

	out, err := uc.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2, "el umbral es inclusivo: quantity <= min_quantity")
	for _, p := range out {
		assert.True(t, p.LowStock)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_CRUD(t *testing.T) {
	_, uc, _, _ := newCatalog()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Lácteos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "nombre de categoría duplicado")

	newName := "Lácteos y huevos"
	updated, err := uc.Update(ctx, created.ID, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCategory_DeleteCascadeNull(t *testing.T) {
	productUC, categoryUC, repo, _ := newCatalog()
	ctx := context.Background()

	cat, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	p1, err := productUC.Create(ctx, dto.CreateProductRequest{Name: "Agua", Price: price("0.75"), CategoryID: cat.ID})
	require.NoError(t, err)
	p2, err := productUC.Create(ctx, dto.CreateProductRequest{Name: "Jugo", Price: price("1.50"), CategoryID: cat.ID})
	require.NoError(t, err)
	other, err := productUC.Create(ctx, dto.CreateProductRequest{Name: "Pan", Price: price("0.50")})
	require.NoError(t, err)

	resp, err := categoryUC.Delete(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DetachedProducts)

	// Los productos sobreviven sin categoría; los demás no se tocan.
	for _, id := range []string{p1.ID, p2.ID} {
		p, _ := repo.GetByID(ctx, id)
		require.NotNil(t, p)
		assert.Empty(t, p.CategoryID)
	}
	p, _ := repo.GetByID(ctx, other.ID)
	assert.Empty(t, p.CategoryID)

	_, err = categoryUC.GetByID(ctx, cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategory_DeleteInexistente(t *testing.T) {
	_, uc, _, _ := newCatalog()
	_, err := uc.Delete(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
