package handlers

import (
	"log"
	"net/http"

	"github.com/unrolled/render"

	"github.com/sakhi-sarees/storefront/app/services"
)

type HomeHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
}

func NewHomeHandler(catalogSvc *services.CatalogService, r *render.Render) *HomeHandler {
	return &HomeHandler{catalogSvc: catalogSvc, render: r}
}

func (h *HomeHandler) HomeGet(w http.ResponseWriter, r *http.Request) {
	content, err := h.catalogSvc.HomeContent(r.Context())
	if err != nil {
		log.Printf("HomeGet: failed to load home content: %v", err)
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"slides":       content.Slides,
		"testimonials": content.Testimonials,
		"featured":     productPayloads(content.Featured),
	})
}
