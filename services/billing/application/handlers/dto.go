package handlers

import (
	"time"

	appsvcs "github.com/ghuser/cartshop/services/billing/application/services"
	"github.com/ghuser/cartshop/services/billing/domain/models"
)

// BillItemResponse is the JSON view of one bill line. IDs are snowflakes and
// are encoded as strings so JavaScript clients do not lose precision.
type BillItemResponse struct {
	ID             int64  `json:"id,string"        example:"1850000000000000001"`
	Type           string `json:"type"             example:"part"`
	Name           string `json:"name"             example:"Golf Cart Battery"`
	Price          string `json:"price"            example:"120.00"`
	Quantity       int    `json:"quantity"         example:"1"`
	LineTotal      string `json:"line_total"       example:"120.00"`
	OriginalItemID int64  `json:"original_item_id" example:"1"`
} // @name BillItemResponse

// SessionResponse is the JSON view of the active billing session.
type SessionResponse struct {
	CustomerID *int64             `json:"customer_id"     example:"1"`
	Items      []BillItemResponse `json:"items"`
	Total      string             `json:"total"           example:"185.00"`
	Policy     string             `json:"customer_switch" example:"preserve"`
} // @name SessionResponse

// BillResponse is the JSON view of a committed bill.
type BillResponse struct {
	ID         int64              `json:"id,string"   example:"1850000000000000001"`
	CustomerID int64              `json:"customer_id" example:"1"`
	Date       time.Time          `json:"date"`
	Items      []BillItemResponse `json:"items"`
	Total      string             `json:"total"       example:"185.00"`
	Paid       bool               `json:"paid"        example:"false"`
	Notes      string             `json:"notes"       example:"Customer requested rush service"`
} // @name BillResponse

// BillSummaryResponse is the compact JSON view of a bill.
type BillSummaryResponse struct {
	BillID     int64     `json:"bill_id,string" example:"1850000000000000001"`
	CustomerID int64     `json:"customer_id"    example:"1"`
	Date       time.Time `json:"date"`
	Total      string    `json:"total"          example:"185.00"`
	ItemCount  int       `json:"item_count"     example:"2"`
	Paid       bool      `json:"paid"           example:"true"`
} // @name BillSummaryResponse

// CommitResponse carries the new bill and the confirmation notice.
type CommitResponse struct {
	Notice string       `json:"notice" example:"bill created successfully"`
	Bill   BillResponse `json:"bill"`
} // @name CommitResponse

func toItemResponse(it models.BillItem) BillItemResponse {
	return BillItemResponse{
		ID:             it.ID,
		Type:           string(it.Type),
		Name:           it.Name,
		Price:          it.Price.StringFixed(2),
		Quantity:       it.Quantity,
		LineTotal:      it.LineTotal().StringFixed(2),
		OriginalItemID: it.OriginalItemID,
	}
}

func toItemResponses(items []models.BillItem) []BillItemResponse {
	out := make([]BillItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

func toSessionResponse(v appsvcs.SessionView) SessionResponse {
	resp := SessionResponse{
		Items:  toItemResponses(v.Items),
		Total:  v.Total.StringFixed(2),
		Policy: string(v.Policy),
	}
	if v.HasCustomer {
		id := v.CustomerID
		resp.CustomerID = &id
	}
	return resp
}

func toBillResponse(b *models.Bill) BillResponse {
	return BillResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Date:       b.Date,
		Items:      toItemResponses(b.Items),
		Total:      b.Total.StringFixed(2),
		Paid:       b.Paid,
		Notes:      b.Notes,
	}
}

func toBillResponses(bills []*models.Bill) []BillResponse {
	out := make([]BillResponse, len(bills))
	for i, b := range bills {
		out[i] = toBillResponse(b)
	}
	return out
}

func toSummaryResponse(s *appsvcs.BillSummary) BillSummaryResponse {
	return BillSummaryResponse{
		BillID:     s.BillID,
		CustomerID: s.CustomerID,
		Date:       s.Date,
		Total:      s.Total.StringFixed(2),
		ItemCount:  s.ItemCount,
		Paid:       s.Paid,
	}
}
