package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
)

type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) find(match func(p models.Product) bool) (*models.Product, error) {
	for i := range f.products {
		if match(f.products[i]) {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) filter(match func(p models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range f.products {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return f.find(func(p models.Product) bool { return p.ID == id })
}

func (f *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return f.find(func(p models.Product) bool { return p.Slug == slug })
}

func (f *fakeProductRepo) ListActive(ctx context.Context) ([]models.Product, error) {
	return f.filter(func(p models.Product) bool { return p.IsActive }), nil
}

func (f *fakeProductRepo) ListBestsellers(ctx context.Context) ([]models.Product, error) {
	return f.filter(func(p models.Product) bool { return p.IsActive && p.IsBestseller }), nil
}

func (f *fakeProductRepo) ListReadyToWear(ctx context.Context) ([]models.Product, error) {
	return f.filter(func(p models.Product) bool { return p.IsActive && p.IsReadyToWear }), nil
}

func (f *fakeProductRepo) ListWedding(ctx context.Context) ([]models.Product, error) {
	return f.filter(func(p models.Product) bool { return p.IsActive && p.IsWedding }), nil
}

func (f *fakeProductRepo) ListLatest(ctx context.Context, limit int) ([]models.Product, error) {
	active := f.filter(func(p models.Product) bool { return p.IsActive })
	if len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (f *fakeProductRepo) ListFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	featured := f.filter(func(p models.Product) bool { return p.IsActive && p.IsFeatured })
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (f *fakeProductRepo) ListByCategorySlug(ctx context.Context, slug string) ([]models.Product, error) {
	return f.filter(func(p models.Product) bool {
		return p.IsActive && p.Category != nil && p.Category.Slug == slug
	}), nil
}

func (f *fakeProductRepo) Search(ctx context.Context, keyword string, limit int) ([]models.Product, error) {
	hits := f.filter(func(p models.Product) bool {
		return p.IsActive && containsFold(p.Name, keyword)
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, tx *gorm.DB, productID string, qty int) error {
	for i := range f.products {
		if f.products[i].ID == productID {
			if f.products[i].StockQuantity < qty {
				return repositories.ErrInsufficientStock
			}
			f.products[i].StockQuantity -= qty
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type fakeCartItemRepo struct {
	items []models.CartItem
}

func (f *fakeCartItemRepo) Add(ctx context.Context, item *models.CartItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartItemRepo) Update(ctx context.Context, item *models.CartItem) error {
	for i := range f.items {
		if f.items[i].SessionKey == item.SessionKey && f.items[i].ProductID == item.ProductID {
			f.items[i].Quantity = item.Quantity
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCartItemRepo) Delete(ctx context.Context, sessionKey, productID string) error {
	for i := range f.items {
		if f.items[i].SessionKey == sessionKey && f.items[i].ProductID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartItemRepo) GetBySessionAndProduct(ctx context.Context, sessionKey, productID string) (*models.CartItem, error) {
	for i := range f.items {
		if f.items[i].SessionKey == sessionKey && f.items[i].ProductID == productID {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCartItemRepo) GetBySession(ctx context.Context, sessionKey string) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, it := range f.items {
		if it.SessionKey == sessionKey {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartItemRepo) CountBySession(ctx context.Context, sessionKey string) (int64, error) {
	var count int64
	for _, it := range f.items {
		if it.SessionKey == sessionKey {
			count += int64(it.Quantity)
		}
	}
	return count, nil
}

func (f *fakeCartItemRepo) ClearSession(ctx context.Context, tx *gorm.DB, sessionKey string) error {
	kept := f.items[:0]
	for _, it := range f.items {
		if it.SessionKey != sessionKey {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartItemRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakeOrderRepo struct {
	products *fakeProductRepo
	carts    *fakeCartItemRepo
	orders   []models.Order
}

func (f *fakeOrderRepo) CreateConfirmed(ctx context.Context, order *models.Order, sessionKey string) error {
	for _, o := range f.orders {
		if o.OrderID == order.OrderID {
			return repositories.ErrDuplicateOrder
		}
	}
	if f.products != nil {
		if err := f.products.DecrementStock(ctx, nil, order.ProductID, order.Quantity); err != nil {
			return err
		}
	}
	f.orders = append(f.orders, *order)
	if f.carts != nil && sessionKey != "" {
		f.carts.ClearSession(ctx, nil, sessionKey)
	}
	return nil
}

func (f *fakeOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].OrderID == orderID {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) FindByContact(ctx context.Context, email, phone string) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.orders {
		if (email != "" && o.CustomerEmail == email) || (phone != "" && o.CustomerPhone == phone) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].OrderID == orderID {
			if !models.CanTransition(f.orders[i].Status, newStatus) {
				return nil, models.ErrInvalidTransition
			}
			f.orders[i].Status = newStatus
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCategoryRepo struct {
	categories []models.Category
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug && f.categories[i].IsActive {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) ListActive(ctx context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSlideRepo struct {
	slides []models.Slide
}

func (f *fakeSlideRepo) ListActive(ctx context.Context, limit int) ([]models.Slide, error) {
	out := []models.Slide{}
	for _, s := range f.slides {
		if s.IsActive {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeTestimonialRepo struct {
	testimonials []models.Testimonial
}

func (f *fakeTestimonialRepo) ListActive(ctx context.Context) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	for _, t := range f.testimonials {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeGateway struct {
	createErr error
	orderID   string
	validSigs map[string]string // order_id|payment_id -> signature
}

func (f *fakeGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string) (*GatewayOrder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	id := f.orderID
	if id == "" {
		id = "order_fake001"
	}
	return &GatewayOrder{OrderID: id, Amount: amount, Currency: "INR"}, nil
}

func (f *fakeGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	want, ok := f.validSigs[gatewayOrderID+"|"+gatewayPaymentID]
	return ok && want == signature
}
