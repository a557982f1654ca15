package handlers

import (
	"net/http"

	"github.com/ghuser/cartshop/pkg/errhttp"
	"github.com/ghuser/cartshop/pkg/httpx"
	pkgvalidator "github.com/ghuser/cartshop/pkg/validator"
	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
)

// CommitRequest is the optional request body for POST /billing/session/commit.
type CommitRequest struct {
	Notes string `json:"notes" validate:"max=2000" example:"Customer requested rush service"`
} // @name CommitRequest

// PostCommitHandler handles POST /billing/session/commit requests.
type PostCommitHandler struct {
	svc *appsvcs.Services
}

// NewPostCommitHandler returns a PostCommitHandler backed by the given services.
func NewPostCommitHandler(svc *appsvcs.Services) *PostCommitHandler {
	return &PostCommitHandler{svc: svc}
}

// Execute turns the active bill into an unpaid ledger entry and empties the
// pending items. An empty body commits without notes.
//
//	@Summary	Create bill
//	@Tags		billing
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CommitRequest	false	"Bill notes"
//	@Success	201		{object}	CommitResponse
//	@Failure	409		{object}	httpx.ErrorResponse
//	@Failure	422		{object}	httpx.ErrorResponse
//	@Router		/billing/session/commit [post]
func (h *PostCommitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateOptionalRequest[CommitRequest](w, r)
	if !ok {
		return
	}

	bill, err := h.svc.Billing.Commit(r.Context(), req.Notes)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CommitResponse{
		Notice: billingdomain.BillCreatedNotice,
		Bill:   toBillResponse(bill),
	})
}
