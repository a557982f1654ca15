package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain"
)

// DefaultEstimatedMinutes is applied when a job is created without an estimate.
const DefaultEstimatedMinutes = 60

// Job is a billable service. Billing charges HourlyRate once per unit and
// ignores EstimatedTime.
type Job struct {
	ID            int64
	Description   string
	HourlyRate    decimal.Decimal
	EstimatedTime int // minutes
	StartTime     *time.Time
	EndTime       *time.Time
	CustomerID    *int64
}

// NewJob builds a Job. A zero estimate becomes DefaultEstimatedMinutes.
func NewJob(description string, hourlyRate decimal.Decimal, estimatedMinutes int) (*Job, error) {
	j := &Job{
		Description:   strings.TrimSpace(description),
		HourlyRate:    hourlyRate,
		EstimatedTime: estimatedMinutes,
	}
	if j.EstimatedTime == 0 {
		j.EstimatedTime = DefaultEstimatedMinutes
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// Validate checks the job's field constraints.
func (j *Job) Validate() error {
	switch {
	case j.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidJob)
	case !j.HourlyRate.IsPositive():
		return fmt.Errorf("%w: hourly rate must be greater than zero", domain.ErrInvalidJob)
	case j.EstimatedTime < 0:
		return fmt.Errorf("%w: estimated time must not be negative", domain.ErrInvalidJob)
	}
	return nil
}

// Clone returns a copy that shares no pointers with j.
func (j Job) Clone() Job {
	out := j
	if j.StartTime != nil {
		t := *j.StartTime
		out.StartTime = &t
	}
	if j.EndTime != nil {
		t := *j.EndTime
		out.EndTime = &t
	}
	if j.CustomerID != nil {
		id := *j.CustomerID
		out.CustomerID = &id
	}
	return out
}
