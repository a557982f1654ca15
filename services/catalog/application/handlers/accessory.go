package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// AccessoryRequest is the request body for POST and PUT /catalog/accessories.
type AccessoryRequest struct {
	Name       string          `json:"name"        validate:"required,max=255" example:"Cup Holder"`
	SalesPoint string          `json:"sales_point" validate:"max=255"          example:"Front Counter"`
	Price      decimal.Decimal `json:"price"       validate:"gt=0"             example:"12.99" swaggertype:"string"`
	Quantity   int             `json:"quantity"    validate:"gte=0"            example:"10"`
} // @name AccessoryRequest

// AccessoryResponse is the JSON view of an accessory.
type AccessoryResponse struct {
	ID         int64  `json:"id"          example:"1"`
	Name       string `json:"name"        example:"Cup Holder"`
	SalesPoint string `json:"sales_point" example:"Front Counter"`
	Price      string `json:"price"       example:"12.99"`
	Quantity   int    `json:"quantity"    example:"10"`
} // @name AccessoryResponse

// AccessoryCodec maps accessory DTOs to and from models.Accessory.
var AccessoryCodec = Codec[models.Accessory, AccessoryRequest, AccessoryResponse]{
	Build: func(req *AccessoryRequest) (*models.Accessory, error) {
		return models.NewAccessory(req.Name, req.SalesPoint, req.Price, req.Quantity)
	},
	Render: func(a *models.Accessory) AccessoryResponse {
		return AccessoryResponse{
			ID:         a.ID,
			Name:       a.Name,
			SalesPoint: a.SalesPoint,
			Price:      a.Price.StringFixed(2),
			Quantity:   a.QuantityOnHand,
		}
	},
}
