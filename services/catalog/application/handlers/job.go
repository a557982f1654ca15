package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// JobRequest is the request body for POST and PUT /catalog/jobs.
type JobRequest struct {
	Description   string          `json:"description"    validate:"required,max=500" example:"Battery Replacement"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"    validate:"gt=0"             example:"65.00" swaggertype:"string"`
	EstimatedTime int             `json:"estimated_time" validate:"gte=0"            example:"60"`
} // @name JobRequest

// JobResponse is the JSON view of a job.
type JobResponse struct {
	ID            int64  `json:"id"             example:"1"`
	Description   string `json:"description"    example:"Battery Replacement"`
	HourlyRate    string `json:"hourly_rate"    example:"65.00"`
	EstimatedTime int    `json:"estimated_time" example:"60"`
} // @name JobResponse

// JobCodec maps job DTOs to and from models.Job.
var JobCodec = Codec[models.Job, JobRequest, JobResponse]{
	Build: func(req *JobRequest) (*models.Job, error) {
		return models.NewJob(req.Description, req.HourlyRate, req.EstimatedTime)
	},
	Render: func(j *models.Job) JobResponse {
		return JobResponse{
			ID:            j.ID,
			Description:   j.Description,
			HourlyRate:    j.HourlyRate.StringFixed(2),
			EstimatedTime: j.EstimatedTime,
		}
	},
}
