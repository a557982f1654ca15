// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/cartshop/pkg/httpx"
	"github.com/ghuser/cartshop/pkg/memstore"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	catalogdomain "github.com/ghuser/cartshop/services/catalog/domain"
	customerdomain "github.com/ghuser/cartshop/services/customer/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, whose text
// is withheld from the client.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, customerdomain.ErrCustomerNotFound),
		errors.Is(err, catalogdomain.ErrRecordNotFound),
		errors.Is(err, billingdomain.ErrBillNotFound):
		return http.StatusNotFound // 404

	case errors.Is(err, billingdomain.ErrNoActiveCustomer),
		errors.Is(err, billingdomain.ErrNothingToBill),
		errors.Is(err, memstore.ErrDuplicateID):
		return http.StatusConflict // 409

	case errors.Is(err, customerdomain.ErrInvalidCustomer),
		errors.Is(err, catalogdomain.ErrInvalidJob),
		errors.Is(err, catalogdomain.ErrInvalidPart),
		errors.Is(err, catalogdomain.ErrInvalidInventoryItem),
		errors.Is(err, catalogdomain.ErrInvalidAccessory),
		errors.Is(err, catalogdomain.ErrUnknownKind),
		errors.Is(err, billingdomain.ErrInvalidQuantity),
		errors.Is(err, billingdomain.ErrNotForSale),
		errors.Is(err, billingdomain.ErrUnsupportedRecord):
		return http.StatusUnprocessableEntity // 422

	default:
		return http.StatusInternalServerError // 500
	}
}
