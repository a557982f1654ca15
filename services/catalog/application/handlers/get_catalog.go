package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	appsvcs "github.com/ghuser/cartshop/services/catalog/application/services"
)

// CatalogResponse lists every catalog collection.
type CatalogResponse struct {
	Jobs        []JobResponse       `json:"jobs"`
	Parts       []PartResponse      `json:"parts"`
	Inventory   []InventoryResponse `json:"inventory"`
	Accessories []AccessoryResponse `json:"accessories"`
} // @name CatalogResponse

// GetCatalogHandler handles GET /catalog requests.
type GetCatalogHandler struct {
	svc *appsvcs.Services
}

// NewGetCatalogHandler returns a GetCatalogHandler backed by the given services.
func NewGetCatalogHandler(svc *appsvcs.Services) *GetCatalogHandler {
	return &GetCatalogHandler{svc: svc}
}

// Execute returns the whole catalog.
//
//	@Summary		Get catalog
//	@Description	Lists jobs, parts, inventory items and accessories
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	CatalogResponse
//	@Router			/catalog [get]
func (h *GetCatalogHandler) Execute(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Catalog.Listing(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CatalogResponse{
		Jobs:        JobCodec.renderAll(c.Jobs),
		Parts:       PartCodec.renderAll(c.Parts),
		Inventory:   InventoryCodec.renderAll(c.Inventory),
		Accessories: AccessoryCodec.renderAll(c.Accessories),
	})
}
