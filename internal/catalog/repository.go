package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
)

// Repository covers persistence for all five catalog collections.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// --- products (caps) ---

func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

func (r *Repository) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductFilter narrows storefront product listings.
type ProductFilter struct {
	CategorySlug    string
	FeaturedOnly    bool
	IncludeInactive bool
}

func (r *Repository) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).Preload("Category")
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN menu_categories ON menu_categories.id = products.category_id").
			Where("menu_categories.slug = ?", filter.CategorySlug)
	}

	var products []models.Product
	if err := query.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProductStock adjusts stock by delta (negative to decrement) and
// returns the resulting value. The row is locked within the caller's
// transaction via the conditional update itself: the WHERE clause refuses to
// take stock below zero, reporting how many rows matched.
func (r *Repository) AdjustProductStock(ctx context.Context, id uuid.UUID, delta int) (int, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	var stock int
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Pluck("stock", &stock).Error; err != nil {
		return 0, true, err
	}
	return stock, true, nil
}

// --- brands and brand items ---

func (r *Repository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *Repository) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *Repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Brand{}).Error
}

func (r *Repository) FindBrand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).Preload("Items").First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *Repository) FindBrandBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).
		Preload("Items", "is_active = ?", true).
		First(&brand, "slug = ? AND is_active = ?", slug, true).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *Repository) ListBrands(ctx context.Context, includeInactive bool) ([]models.Brand, error) {
	query := r.db.WithContext(ctx).Model(&models.Brand{})
	if !includeInactive {
		query = query.Where("is_active = ?", true).Preload("Items", "is_active = ?", true)
	} else {
		query = query.Preload("Items")
	}
	var brands []models.Brand
	if err := query.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *Repository) CreateBrandItem(ctx context.Context, item *models.BrandItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *Repository) UpdateBrandItem(ctx context.Context, item *models.BrandItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *Repository) DeleteBrandItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BrandItem{}).Error
}

func (r *Repository) FindBrandItem(ctx context.Context, id uuid.UUID) (*models.BrandItem, error) {
	var item models.BrandItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) AdjustBrandItemStock(ctx context.Context, id uuid.UUID, delta int) (int, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BrandItem{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	var stock int
	if err := r.db.WithContext(ctx).
		Model(&models.BrandItem{}).
		Where("id = ?", id).
		Pluck("stock", &stock).Error; err != nil {
		return 0, true, err
	}
	return stock, true, nil
}

// --- pins ---

func (r *Repository) CreatePin(ctx context.Context, pin *models.Pin) error {
	return r.db.WithContext(ctx).Create(pin).Error
}

func (r *Repository) UpdatePin(ctx context.Context, pin *models.Pin) error {
	return r.db.WithContext(ctx).Save(pin).Error
}

func (r *Repository) DeletePin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Pin{}).Error
}

func (r *Repository) FindPin(ctx context.Context, id uuid.UUID) (*models.Pin, error) {
	var pin models.Pin
	if err := r.db.WithContext(ctx).First(&pin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pin, nil
}

func (r *Repository) ListPins(ctx context.Context, includeInactive bool) ([]models.Pin, error) {
	query := r.db.WithContext(ctx).Model(&models.Pin{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var pins []models.Pin
	if err := query.Order("created_at DESC").Find(&pins).Error; err != nil {
		return nil, err
	}
	return pins, nil
}

func (r *Repository) AdjustPinStock(ctx context.Context, id uuid.UUID, delta int) (int, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Pin{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	var stock int
	if err := r.db.WithContext(ctx).
		Model(&models.Pin{}).
		Where("id = ?", id).
		Pluck("stock", &stock).Error; err != nil {
		return 0, true, err
	}
	return stock, true, nil
}

// --- cases ---

func (r *Repository) CreateCase(ctx context.Context, c *models.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) UpdateCase(ctx context.Context, c *models.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repository) DeleteCase(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Case{}).Error
}

func (r *Repository) FindCase(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListCases(ctx context.Context, includeInactive bool) ([]models.Case, error) {
	query := r.db.WithContext(ctx).Model(&models.Case{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var cases []models.Case
	if err := query.Order("created_at DESC").Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *Repository) AdjustCaseStock(ctx context.Context, id uuid.UUID, delta int) (int, bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return 0, false, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, false, nil
	}
	var stock int
	if err := r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ?", id).
		Pluck("stock", &stock).Error; err != nil {
		return 0, true, err
	}
	return stock, true, nil
}

// --- menu categories ---

func (r *Repository) CreateMenuCategory(ctx context.Context, category *models.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *Repository) UpdateMenuCategory(ctx context.Context, category *models.MenuCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *Repository) DeleteMenuCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MenuCategory{}).Error
}

func (r *Repository) FindMenuCategory(ctx context.Context, id uuid.UUID) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) ListMenuCategories(ctx context.Context, includeInactive bool) ([]models.MenuCategory, error) {
	query := r.db.WithContext(ctx).Model(&models.MenuCategory{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var categories []models.MenuCategory
	if err := query.Order("position ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
