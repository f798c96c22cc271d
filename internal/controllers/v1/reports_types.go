package v1

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/report"
	"github.com/envelope-zero/tracker/internal/types"
	ez_uuid "github.com/envelope-zero/tracker/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QueryTrailing struct {
	Mode  report.Mode `form:"mode" example:"ttm"`      // ytd or ttm. Defaults to ytd
	Month types.Month `form:"month" example:"2024-03"` // Last month of the window. Defaults to the current month
}

type QueryRewards struct {
	SourceID ez_uuid.UUID `form:"source" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the source
	Year     int          `form:"year" example:"2024"`                                   // Defaults to the current year
}

type MonthReportResponse struct {
	Data  *report.MonthReport `json:"data"`                                                  // Data for the month
	Error *string             `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type DailySavingsResponse struct {
	Data  []report.DailySavingsPoint `json:"data"`                                                  // One entry per day of the month
	Error *string                    `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type TrailingReportResponse struct {
	Data  *report.TrailingReport `json:"data"`
	Error *string                `json:"error" example:"the mode must be one of 'ytd' or 'ttm'"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *report.BudgetOverview `json:"data"`
	Error *string                `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RewardSource is the source a reward report is computed for.
type RewardSource struct {
	ID         uuid.UUID         `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Name       string            `json:"name" example:"Travel Card"`
	RewardType models.RewardType `json:"rewardType" example:"cashback"`
	AnnualFee  decimal.Decimal   `json:"annualFee" example:"95"`
}

type Rewards struct {
	Source RewardSource `json:"source"`
	Year   int          `json:"year" example:"2024"`
	report.RewardReport
}

type RewardsResponse struct {
	Data  *Rewards `json:"data"`
	Error *string  `json:"error" example:"there is no source matching your query"` // The error, if any occurred
}
