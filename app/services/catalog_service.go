package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
)

const (
	searchMinLength = 2
	searchMaxHits   = 10
	homeMaxSlides   = 5
	homeMaxFeatured = 8
	latestLimit     = 20
)

type CatalogService struct {
	productRepo     repositories.ProductRepositoryImpl
	categoryRepo    repositories.CategoryRepositoryImpl
	slideRepo       repositories.SlideRepositoryImpl
	testimonialRepo repositories.TestimonialRepositoryImpl
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	slideRepo repositories.SlideRepositoryImpl,
	testimonialRepo repositories.TestimonialRepositoryImpl,
) *CatalogService {
	return &CatalogService{
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		slideRepo:       slideRepo,
		testimonialRepo: testimonialRepo,
	}
}

type CategoryListing struct {
	Label    string
	Products []models.Product
}

type HomeContent struct {
	Slides       []models.Slide
	Testimonials []models.Testimonial
	Featured     []models.Product
}

// Search matches name, description, fabric and category name. Queries
// shorter than two characters return nothing without touching the store.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if len(query) < searchMinLength {
		return []models.Product{}, nil
	}
	products, err := s.productRepo.Search(ctx, query, searchMaxHits)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// ListBySelector maps the reserved tokens to flag filters and everything else
// to a category slug. An unknown slug falls back to the whole active catalog
// labeled "All Products" rather than an error.
func (s *CatalogService) ListBySelector(ctx context.Context, selector string) (*CategoryListing, error) {
	var (
		products []models.Product
		err      error
	)

	switch selector {
	case "bestsellers":
		products, err = s.productRepo.ListBestsellers(ctx)
		if err != nil {
			return nil, err
		}
		return &CategoryListing{Label: "Bestsellers", Products: products}, nil
	case "ready-to-wear":
		products, err = s.productRepo.ListReadyToWear(ctx)
		if err != nil {
			return nil, err
		}
		return &CategoryListing{Label: "Ready to Wear", Products: products}, nil
	case "wedding":
		products, err = s.productRepo.ListWedding(ctx)
		if err != nil {
			return nil, err
		}
		return &CategoryListing{Label: "Wedding Collection", Products: products}, nil
	case "latest":
		products, err = s.productRepo.ListLatest(ctx, latestLimit)
		if err != nil {
			return nil, err
		}
		return &CategoryListing{Label: "Latest Arrivals", Products: products}, nil
	}

	category, err := s.categoryRepo.GetBySlug(ctx, selector)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
		products, err = s.productRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return &CategoryListing{Label: "All Products", Products: products}, nil
	}

	products, err = s.productRepo.ListByCategorySlug(ctx, category.Slug)
	if err != nil {
		return nil, err
	}
	return &CategoryListing{Label: category.Name, Products: products}, nil
}

func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) HomeContent(ctx context.Context) (*HomeContent, error) {
	slides, err := s.slideRepo.ListActive(ctx, homeMaxSlides)
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}
	testimonials, err := s.testimonialRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	featured, err := s.productRepo.ListFeatured(ctx, homeMaxFeatured)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return &HomeContent{
		Slides:       slides,
		Testimonials: testimonials,
		Featured:     featured,
	}, nil
}
