package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
)

// SelectCustomerRequest is the request body for PUT /billing/session/customer.
type SelectCustomerRequest struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0" example:"1"`
} // @name SelectCustomerRequest

// GetSessionHandler handles GET /billing/session requests.
type GetSessionHandler struct {
	svc *appsvcs.Services
}

// NewGetSessionHandler returns a GetSessionHandler backed by the given services.
func NewGetSessionHandler(svc *appsvcs.Services) *GetSessionHandler {
	return &GetSessionHandler{svc: svc}
}

// Execute returns the active customer, the pending items and the running total.
//
//	@Summary	Get active bill
//	@Tags		billing
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/billing/session [get]
func (h *GetSessionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toSessionResponse(h.svc.Billing.Snapshot(r.Context())))
}

// PutSessionCustomerHandler handles PUT /billing/session/customer requests.
type PutSessionCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPutSessionCustomerHandler returns a PutSessionCustomerHandler backed by the given services.
func NewPutSessionCustomerHandler(svc *appsvcs.Services) *PutSessionCustomerHandler {
	return &PutSessionCustomerHandler{svc: svc}
}

// Execute selects the active customer.
//
//	@Summary		Select customer
//	@Description	Makes a customer active. Under the detach policy, switching customers clears pending items.
//	@Tags			billing
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SelectCustomerRequest	true	"Customer to select"
//	@Success		200		{object}	SessionResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/billing/session/customer [put]
func (h *PutSessionCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SelectCustomerRequest](w, r)
	if !ok {
		return
	}

	view, err := h.svc.Billing.SelectCustomer(r.Context(), req.CustomerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSessionResponse(view))
}

// DeleteSessionCustomerHandler handles DELETE /billing/session/customer requests.
type DeleteSessionCustomerHandler struct {
	svc *appsvcs.Services
}

// NewDeleteSessionCustomerHandler returns a DeleteSessionCustomerHandler backed by the given services.
func NewDeleteSessionCustomerHandler(svc *appsvcs.Services) *DeleteSessionCustomerHandler {
	return &DeleteSessionCustomerHandler{svc: svc}
}

// Execute clears the active customer and its pending items.
//
//	@Summary		Deselect customer
//	@Description	Clears the active customer; pending items are dropped with it
//	@Tags			billing
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Router			/billing/session/customer [delete]
func (h *DeleteSessionCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, toSessionResponse(h.svc.Billing.DeselectCustomer(r.Context())))
}
