package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
	"github.com/ghuser/cartshop/services/billing/domain/models"
)

// SetPaidRequest is the request body for PUT /bills/{id}/paid.
type SetPaidRequest struct {
	Paid *bool `json:"paid" validate:"required" example:"true"`
} // @name SetPaidRequest

// ListBillsHandler handles GET /bills requests.
type ListBillsHandler struct {
	svc *appsvcs.Services
}

// NewListBillsHandler returns a ListBillsHandler backed by the given services.
func NewListBillsHandler(svc *appsvcs.Services) *ListBillsHandler {
	return &ListBillsHandler{svc: svc}
}

// Execute lists committed bills in commit order.
//
//	@Summary	List bills
//	@Tags		bills
//	@Produce	json
//	@Param		customer_id	query		int	false	"Only bills for this customer"
//	@Success	200			{array}		BillResponse
//	@Failure	400			{object}	httpx.ErrorResponse
//	@Router		/bills [get]
func (h *ListBillsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	customerID, filtered, err := httpx.QueryID(r, "customer_id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var bills []*models.Bill
	if filtered {
		bills, err = h.svc.Ledger.FindByCustomer(r.Context(), customerID)
	} else {
		bills, err = h.svc.Ledger.List(r.Context())
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBillResponses(bills))
}

// GetBillHandler handles GET /bills/{id} requests.
type GetBillHandler struct {
	svc *appsvcs.Services
}

// NewGetBillHandler returns a GetBillHandler backed by the given services.
func NewGetBillHandler(svc *appsvcs.Services) *GetBillHandler {
	return &GetBillHandler{svc: svc}
}

// Execute returns one bill with its items.
//
//	@Summary	Get bill
//	@Tags		bills
//	@Produce	json
//	@Param		id	path		string	true	"Bill ID"
//	@Success	200	{object}	BillResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/bills/{id} [get]
func (h *GetBillHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	bill, err := h.svc.Ledger.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBillResponse(bill))
}

// GetBillSummaryHandler handles GET /bills/{id}/summary requests.
type GetBillSummaryHandler struct {
	svc *appsvcs.Services
}

// NewGetBillSummaryHandler returns a GetBillSummaryHandler backed by the given services.
func NewGetBillSummaryHandler(svc *appsvcs.Services) *GetBillSummaryHandler {
	return &GetBillSummaryHandler{svc: svc}
}

// Execute returns the bill summary, served from Redis when cached.
//
//	@Summary	Get bill summary
//	@Tags		bills
//	@Produce	json
//	@Param		id	path		string	true	"Bill ID"
//	@Success	200	{object}	BillSummaryResponse
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/bills/{id}/summary [get]
func (h *GetBillSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.svc.Ledger.Summary(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSummaryResponse(summary))
}

// PutBillPaidHandler handles PUT /bills/{id}/paid requests.
type PutBillPaidHandler struct {
	svc *appsvcs.Services
}

// NewPutBillPaidHandler returns a PutBillPaidHandler backed by the given services.
func NewPutBillPaidHandler(svc *appsvcs.Services) *PutBillPaidHandler {
	return &PutBillPaidHandler{svc: svc}
}

// Execute marks a bill paid or unpaid.
//
//	@Summary	Set bill paid flag
//	@Tags		bills
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Bill ID"
//	@Param		request	body		SetPaidRequest	true	"Paid flag"
//	@Success	200		{object}	BillResponse
//	@Failure	400		{object}	httpx.ErrorResponse
//	@Failure	404		{object}	httpx.ErrorResponse
//	@Router		/bills/{id}/paid [put]
func (h *PutBillPaidHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, ok := pkgvalidator.ValidateRequest[SetPaidRequest](w, r)
	if !ok {
		return
	}

	bill, err := h.svc.Ledger.SetPaid(r.Context(), id, *req.Paid)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toBillResponse(bill))
}
