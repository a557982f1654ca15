package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

// AddItemRequest is the request body for POST /billing/session/items.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=job part inventory accessory" example:"part"`
	ItemID   int64  `json:"item_id"  validate:"required,gt=0"                               example:"1"`
	Quantity *int   `json:"quantity" validate:"omitempty,gte=1"                             example:"1"`
} // @name AddItemRequest

// PostSessionItemHandler handles POST /billing/session/items requests.
type PostSessionItemHandler struct {
	svc *appsvcs.Services
}

// NewPostSessionItemHandler returns a PostSessionItemHandler backed by the given services.
func NewPostSessionItemHandler(svc *appsvcs.Services) *PostSessionItemHandler {
	return &PostSessionItemHandler{svc: svc}
}

// Execute adds a catalog record to the active bill.
//
//	@Summary		Add item to bill
//	@Description	Prices a catalog record and appends it to the active bill. Requires an active customer.
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddItemRequest	true	"Catalog reference"
//	@Success		201		{object}	BillItemResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/billing/session/items [post]
func (h *PostSessionItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AddItemRequest](w, r)
	if !ok {
		return
	}

	kind, err := catalogmodels.ParseKind(req.Kind)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	item, err := h.svc.Billing.AddCatalogItem(r.Context(), kind, req.ItemID, qty)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// DeleteSessionItemHandler handles DELETE /billing/session/items/{id} requests.
type DeleteSessionItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSessionItemHandler returns a DeleteSessionItemHandler backed by the given services.
func NewDeleteSessionItemHandler(svc *appsvcs.Services) *DeleteSessionItemHandler {
	return &DeleteSessionItemHandler{svc: svc}
}

// Execute removes one pending item. Unknown IDs are ignored.
//
//	@Summary	Remove item from bill
//	@Tags		billing
//	@Produce	json
//	@Param		id	path		string	true	"Bill item ID"
//	@Success	200	{object}	SessionResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/billing/session/items/{id} [delete]
func (h *DeleteSessionItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, toSessionResponse(h.svc.Billing.RemoveItem(r.Context(), id)))
}

// ClearSessionItemsHandler handles DELETE /billing/session/items requests.
type ClearSessionItemsHandler struct {
	svc *appsvcs.Services
}

// NewClearSessionItemsHandler returns a ClearSessionItemsHandler backed by the given services.
func NewClearSessionItemsHandler(svc *appsvcs.Services) *ClearSessionItemsHandler {
	return &ClearSessionItemsHandler{svc: svc}
}

// Execute drops every pending item and keeps the active customer.
//
//	@Summary	Clear bill
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/billing/session/items [delete]
func (h *ClearSessionItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toSessionResponse(h.svc.Billing.Clear(r.Context())))
}
