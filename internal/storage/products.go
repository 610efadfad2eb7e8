package storage

import (
	"context"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Categories returns the product category repository.
func (s *Storage) Categories() *Repository[models.Category] {
	return NewRepository[models.Category](s.db)
}

// Products returns the product repository.
func (s *Storage) Products() *Repository[models.Product] {
	return NewRepository[models.Product](s.db)
}

// GetCategory retrieves a category by ID within a tenant.
func (s *Storage) GetCategory(ctx context.Context, tenantID, id string) (*models.Category, error) {
	return s.Categories().GetByID(ctx, tenantID, id)
}

// CreateCategory inserts a category, deriving and reserving its slug.
func (s *Storage) CreateCategory(ctx context.Context, cat *models.Category) error {
	if cat.Slug == "" {
		cat.Slug = models.Slugify(cat.Name)
	}
	taken, err := s.Categories().Exists(ctx, TenantSpec(cat.TenantID).Where("slug = ?", cat.Slug))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	return s.Categories().Create(ctx, cat)
}

// UpdateCategory writes category changes.
func (s *Storage) UpdateCategory(ctx context.Context, cat *models.Category) error {
	cat.UpdatedAt = time.Now()
	return s.Categories().Update(ctx, cat)
}

// DeleteCategory removes a category. Categories with products or child
// categories cannot be deleted.
func (s *Storage) DeleteCategory(ctx context.Context, tenantID, id string) error {
	used, err := s.Products().Exists(ctx, TenantSpec(tenantID).Where("category_id = ?", id))
	if err != nil {
		return err
	}
	if !used {
		used, err = s.Categories().Exists(ctx, TenantSpec(tenantID).Where("parent_id = ?", id))
		if err != nil {
			return err
		}
	}
	if used {
		return ErrConflict
	}

	n, err := s.Categories().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns all tenant categories in name order.
func (s *Storage) ListCategories(ctx context.Context, tenantID string) ([]*models.Category, error) {
	return s.Categories().List(ctx, TenantSpec(tenantID).Order("name ASC"))
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID string
	Status     string
}

// GetProduct retrieves a product with its category loaded.
func (s *Storage) GetProduct(ctx context.Context, tenantID, id string) (*models.Product, error) {
	return s.Products().GetOne(ctx, NewSpec("pr.tenant_id = ?", tenantID).
		Where("pr.id = ?", id).
		Relation("Category"))
}

// GetProductBySKU retrieves a product by SKU within a tenant.
func (s *Storage) GetProductBySKU(ctx context.Context, tenantID, sku string) (*models.Product, error) {
	return s.Products().GetOne(ctx, TenantSpec(tenantID).Where("sku = ?", sku))
}

// CreateProduct inserts a product after checking the SKU is free.
func (s *Storage) CreateProduct(ctx context.Context, p *models.Product) error {
	taken, err := s.Products().Exists(ctx, TenantSpec(p.TenantID).Where("sku = ?", p.SKU))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	if p.Status == "" {
		p.Status = models.ProductStatusActive
	}
	return s.Products().Create(ctx, p)
}

// UpdateProduct writes product changes.
func (s *Storage) UpdateProduct(ctx context.Context, p *models.Product) error {
	p.UpdatedAt = time.Now()
	return s.Products().Update(ctx, p)
}

// UpsertProductsBySKU bulk-imports products, updating mutable fields on SKU
// collision. Used by the spreadsheet import endpoint.
func (s *Storage) UpsertProductsBySKU(ctx context.Context, products ...*models.Product) error {
	return s.Products().Upsert(ctx,
		[]string{"name", "description", "price", "currency", "stock", "status", "category_id", "updated_at"},
		[]string{"tenant_id", "sku"},
		products...)
}

// DeleteProduct removes a product.
func (s *Storage) DeleteProduct(ctx context.Context, tenantID, id string) error {
	n, err := s.Products().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PageProducts returns a filtered page of products, name order, categories
// loaded.
func (s *Storage) PageProducts(ctx context.Context, tenantID string, filter ProductFilter, params result.RequestParameters) (result.PaginatedResult[*models.Product], error) {
	spec := NewSpec("pr.tenant_id = ?", tenantID).Relation("Category").Order("pr.name ASC")
	if filter.CategoryID != "" {
		spec.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		spec.Where("pr.status = ?", filter.Status)
	}
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(pr.name LIKE ? OR sku LIKE ? OR pr.description LIKE ?)", term, term, term)
	}
	return s.Products().Page(ctx, spec, params)
}

// ListProducts returns every tenant product for exports, name order.
func (s *Storage) ListProducts(ctx context.Context, tenantID string) ([]*models.Product, error) {
	return s.Products().List(ctx, NewSpec("pr.tenant_id = ?", tenantID).Relation("Category").Order("pr.name ASC"))
}
