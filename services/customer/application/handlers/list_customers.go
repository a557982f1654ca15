package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	appsvcs "github.com/ghuser/cartshop/services/customer/application/services"
)

// ListCustomersHandler handles GET /customers requests.
type ListCustomersHandler struct {
	svc *appsvcs.Services
}

// NewListCustomersHandler returns a ListCustomersHandler backed by the given services.
func NewListCustomersHandler(svc *appsvcs.Services) *ListCustomersHandler {
	return &ListCustomersHandler{svc: svc}
}

// Execute lists customers, filtered by the optional q search term.
//
//	@Summary		List customers
//	@Description	Lists customers; q filters by name or email (case-insensitive) or phone
//	@Tags			customers
//	@Produce		json
//	@Param			q	query		string	false	"Search term"
//	@Success		200	{array}		CustomerResponse
//	@Router			/customers [get]
func (h *ListCustomersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.Customer.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponses(customers))
}
