package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	appsvcs "github.com/ghuser/cartshop/services/customer/application/services"
)

// GetCustomerHandler handles GET /customers/{id} requests.
type GetCustomerHandler struct {
	svc *appsvcs.Services
}

// NewGetCustomerHandler returns a GetCustomerHandler backed by the given services.
func NewGetCustomerHandler(svc *appsvcs.Services) *GetCustomerHandler {
	return &GetCustomerHandler{svc: svc}
}

// Execute returns one customer.
//
//	@Summary	Get customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	CustomerResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/customers/{id} [get]
func (h *GetCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.Customer.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(customer))
}
