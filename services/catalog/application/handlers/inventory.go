package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// InventoryRequest is the request body for POST and PUT /catalog/inventory.
// ForSale defaults to true when omitted.
type InventoryRequest struct {
	Name     string          `json:"name"     validate:"required,max=255"   example:"Headlight Kit"`
	Type     string          `json:"type"     validate:"required,oneof=part cart" example:"part"`
	Price    decimal.Decimal `json:"price"    validate:"gt=0"               example:"45.00" swaggertype:"string"`
	ForSale  *bool           `json:"for_sale"                               example:"true"`
	Quantity int             `json:"quantity" validate:"gte=0"              example:"3"`
} // @name InventoryRequest

// InventoryResponse is the JSON view of an inventory item.
type InventoryResponse struct {
	ID       int64  `json:"id"       example:"1"`
	Name     string `json:"name"     example:"Headlight Kit"`
	Type     string `json:"type"     example:"part"`
	Price    string `json:"price"    example:"45.00"`
	ForSale  bool   `json:"for_sale" example:"true"`
	Quantity int    `json:"quantity" example:"3"`
} // @name InventoryResponse

// InventoryCodec maps inventory DTOs to and from models.InventoryItem.
var InventoryCodec = Codec[models.InventoryItem, InventoryRequest, InventoryResponse]{
	Build: func(req *InventoryRequest) (*models.InventoryItem, error) {
		forSale := true
		if req.ForSale != nil {
			forSale = *req.ForSale
		}
		return models.NewInventoryItem(req.Name, models.InventoryType(req.Type), req.Price, forSale, req.Quantity)
	},
	Render: func(i *models.InventoryItem) InventoryResponse {
		return InventoryResponse{
			ID:       i.ID,
			Name:     i.Name,
			Type:     string(i.Type),
			Price:    i.Price.StringFixed(2),
			ForSale:  i.ForSale,
			Quantity: i.QuantityOnHand,
		}
	},
}
