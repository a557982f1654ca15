package handlers

import "github.com/ghuser/cartshop/services/customer/domain/models"

// CustomerResponse is the JSON view of a customer.
type CustomerResponse struct {
	ID      int64  `json:"id"      example:"1"`
	Name    string `json:"name"    example:"John Smith"`
	Phone   string `json:"phone"   example:"555-123-4567"`
	Email   string `json:"email"   example:"john@example.com"`
	Address string `json:"address" example:"123 Main St"`
} // @name CustomerResponse

func toResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

func toResponses(cs []*models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(cs))
	for i, c := range cs {
		out[i] = toResponse(c)
	}
	return out
}
