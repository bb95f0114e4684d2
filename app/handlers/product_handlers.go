package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/services"
	"github.com/sakhi-sarees/storefront/app/utils/format"
)

type ProductHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
}

func NewProductHandler(catalogSvc *services.CatalogService, r *render.Render) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc, render: r}
}

// productPayload decorates the model with derived display fields.
func productPayload(p *models.Product) map[string]interface{} {
	payload := map[string]interface{}{
		"id":                  p.ID,
		"name":                p.Name,
		"slug":                p.Slug,
		"description":         p.Description,
		"fabric":              p.Fabric,
		"occasion":            p.Occasion,
		"original_price":      p.OriginalPrice,
		"sale_price":          p.SalePrice,
		"display_price":       format.INR(p.SalePrice),
		"discount_percentage": p.DiscountPercentage(),
		"stock_quantity":      p.StockQuantity,
		"in_stock":            p.InStock(),
		"is_bestseller":       p.IsBestseller,
		"is_ready_to_wear":    p.IsReadyToWear,
		"is_wedding":          p.IsWedding,
		"is_featured":         p.IsFeatured,
	}
	if p.Category != nil {
		payload["category"] = map[string]interface{}{
			"name": p.Category.Name,
			"slug": p.Category.Slug,
		}
	}
	return payload
}

func productPayloads(products []models.Product) []map[string]interface{} {
	payloads := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		payloads = append(payloads, productPayload(&products[i]))
	}
	return payloads
}

func (h *ProductHandler) ProductDetailGet(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.catalogSvc.ProductBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "Product not found.",
			})
			return
		}
		log.Printf("ProductDetailGet: failed to load product %s: %v", slug, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": productPayload(product),
	})
}

func (h *ProductHandler) CategoryProductsGet(w http.ResponseWriter, r *http.Request) {
	selector := mux.Vars(r)["slug"]

	listing, err := h.catalogSvc.ListBySelector(r.Context(), selector)
	if err != nil {
		log.Printf("CategoryProductsGet: failed to list %q: %v", selector, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"label":    listing.Label,
		"products": productPayloads(listing.Products),
		"count":    len(listing.Products),
	})
}

func (h *ProductHandler) SearchGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.catalogSvc.Search(r.Context(), query)
	if err != nil {
		log.Printf("SearchGet: search %q failed: %v", query, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": productPayloads(products),
		"count":    len(products),
	})
}
