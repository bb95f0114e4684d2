package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/repositories"
)

type WishlistHandler struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	render       *render.Render
}

func NewWishlistHandler(
	wishlistRepo repositories.WishlistRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	r *render.Render,
) *WishlistHandler {
	return &WishlistHandler{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		render:       r,
	}
}

func (h *WishlistHandler) wishlistCount(r *http.Request, sessionKey string) int64 {
	count, err := h.wishlistRepo.CountBySession(r.Context(), sessionKey)
	if err != nil {
		log.Printf("WishlistHandler: failed to count wishlist items: %v", err)
		return 0
	}
	return count
}

func (h *WishlistHandler) GetWishlistGet(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())

	items, err := h.wishlistRepo.GetBySession(r.Context(), sessionKey)
	if err != nil {
		log.Printf("GetWishlistGet: failed to load wishlist: %v", err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	payloads := make([]map[string]interface{}, 0, len(items))
	for i := range items {
		if items[i].Product != nil {
			payloads = append(payloads, productPayload(items[i].Product))
		}
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"products":       payloads,
		"wishlist_count": len(items),
	})
}

func (h *WishlistHandler) WishlistCountGet(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"wishlist_count": h.wishlistCount(r, sessionKey),
	})
}

func (h *WishlistHandler) AddToWishlistPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	if _, err := h.productRepo.GetByID(r.Context(), productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.render.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "Product not found.",
			})
			return
		}
		log.Printf("AddToWishlistPost: failed to load product %s: %v", productID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	created, err := h.wishlistRepo.Add(r.Context(), sessionKey, productID)
	if err != nil {
		log.Printf("AddToWishlistPost: failed to add product %s: %v", productID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	message := "Added to wishlist."
	if !created {
		message = "Already in wishlist."
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        message,
		"wishlist_count": h.wishlistCount(r, sessionKey),
	})
}

func (h *WishlistHandler) RemoveFromWishlistPost(w http.ResponseWriter, r *http.Request) {
	sessionKey := helpers.SessionKeyFromContext(r.Context())
	productID := mux.Vars(r)["productID"]

	removed, err := h.wishlistRepo.Delete(r.Context(), sessionKey, productID)
	if err != nil {
		log.Printf("RemoveFromWishlistPost: failed to remove product %s: %v", productID, err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	message := "Removed from wishlist."
	if !removed {
		message = "Product was not in the wishlist."
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        message,
		"wishlist_count": h.wishlistCount(r, sessionKey),
	})
}
