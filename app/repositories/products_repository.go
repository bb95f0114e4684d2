package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type ProductRepositoryImpl interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListActive(ctx context.Context) ([]models.Product, error)
	ListBestsellers(ctx context.Context) ([]models.Product, error)
	ListReadyToWear(ctx context.Context) ([]models.Product, error)
	ListWedding(ctx context.Context) ([]models.Product, error)
	ListLatest(ctx context.Context, limit int) ([]models.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Product, error)
	ListByCategorySlug(ctx context.Context, slug string) ([]models.Product, error)
	Search(ctx context.Context, keyword string, limit int) ([]models.Product, error)
	DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) listByFlag(ctx context.Context, cond string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Where(cond, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) ListBestsellers(ctx context.Context) ([]models.Product, error) {
	return p.listByFlag(ctx, "is_bestseller = ?")
}

func (p *productRepository) ListReadyToWear(ctx context.Context) ([]models.Product, error) {
	return p.listByFlag(ctx, "is_ready_to_wear = ?")
}

func (p *productRepository) ListWedding(ctx context.Context) ([]models.Product, error) {
	return p.listByFlag(ctx, "is_wedding = ?")
}

func (p *productRepository) ListLatest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) ListByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("c.slug = ? AND products.is_active = ?", slug, true).
		Preload("Category").
		Order("products.created_at DESC").
		Find(&products).Error
	return products, err
}

func (p *productRepository) Search(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	var products []models.Product
	kw := "%" + strings.ToLower(keyword) + "%"

	err := p.db.WithContext(ctx).
		Joins("LEFT JOIN categories c ON c.id = products.category_id").
		Where("products.is_active = ?", true).
		Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ? OR LOWER(products.fabric) LIKE ? OR LOWER(c.name) LIKE ?",
			kw, kw, kw, kw).
		Preload("Category").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// DecrementStock runs a single conditional update so a concurrent checkout
// for the last units cannot oversubscribe inventory.
func (p *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error {
	if tx == nil {
		tx = p.db
	}
	res := tx.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}
