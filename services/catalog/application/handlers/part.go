package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// PartRequest is the request body for POST and PUT /catalog/parts.
type PartRequest struct {
	Name        string          `json:"name"         validate:"required,max=255" example:"Battery Pack"`
	Cost        decimal.Decimal `json:"cost"         validate:"gt=0"             example:"80.00"  swaggertype:"string"`
	MarketPrice decimal.Decimal `json:"market_price" validate:"gt=0"             example:"120.00" swaggertype:"string"`
	Quantity    int             `json:"quantity"     validate:"gte=0"            example:"5"`
	Supplier    string          `json:"supplier"     validate:"max=255"          example:"GolfCart Supplies Inc."`
} // @name PartRequest

// PartResponse is the JSON view of a part. Markup is a percentage.
type PartResponse struct {
	ID          int64  `json:"id"           example:"1"`
	Name        string `json:"name"         example:"Battery Pack"`
	Cost        string `json:"cost"         example:"80.00"`
	MarketPrice string `json:"market_price" example:"120.00"`
	Markup      string `json:"markup"       example:"50.00"`
	Quantity    int    `json:"quantity"     example:"5"`
	Supplier    string `json:"supplier"     example:"GolfCart Supplies Inc."`
} // @name PartResponse

// PartCodec maps part DTOs to and from models.Part.
var PartCodec = Codec[models.Part, PartRequest, PartResponse]{
	Build: func(req *PartRequest) (*models.Part, error) {
		return models.NewPart(req.Name, req.Cost, req.MarketPrice, req.Quantity, req.Supplier)
	},
	Render: func(p *models.Part) PartResponse {
		return PartResponse{
			ID:          p.ID,
			Name:        p.Name,
			Cost:        p.Cost.StringFixed(2),
			MarketPrice: p.MarketPrice.StringFixed(2),
			Markup:      p.Markup.StringFixed(2),
			Quantity:    p.QuantityOnHand,
			Supplier:    p.Supplier,
		}
	},
}
