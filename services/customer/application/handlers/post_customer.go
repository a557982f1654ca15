package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/customer/application/services"
)

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=255"           example:"John Smith"`
	Phone   string `json:"phone"   validate:"required,max=50"            example:"555-123-4567"`
	Email   string `json:"email"   validate:"omitempty,email,max=255"    example:"john@example.com"`
	Address string `json:"address" validate:"omitempty,max=500"          example:"123 Main St"`
} // @name CreateCustomerRequest

// PostCustomerHandler handles POST /customers requests.
type PostCustomerHandler struct {
	svc *appsvcs.Services
}

// NewPostCustomerHandler returns a PostCustomerHandler backed by the given services.
func NewPostCustomerHandler(svc *appsvcs.Services) *PostCustomerHandler {
	return &PostCustomerHandler{svc: svc}
}

// Execute creates a new customer.
//
//	@Summary		Create customer
//	@Description	Adds a customer to the shop's customer list
//	@Tags			customers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCustomerRequest	true	"Customer creation request"
//	@Success		201		{object}	CustomerResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		422		{object}	httpx.ErrorResponse
//	@Router			/customers [post]
func (h *PostCustomerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateCustomerRequest](w, r)
	if !ok {
		return
	}

	customer, err := h.svc.Customer.Create(r.Context(), req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(customer))
}
