package report

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// DailySavingsPoint is the income and spend of one day.
type DailySavingsPoint struct {
	Day     int             `json:"day" example:"5"`
	Income  decimal.Decimal `json:"income" example:"0"`
	Spend   decimal.Decimal `json:"spend" example:"-23.5"`   // Signed sum of all non-income transactions
	Savings decimal.Decimal `json:"savings" example:"-23.5"` // Income plus spend
}

// DailySavings returns income, spend and savings for every day of the month.
func DailySavings(month types.Month, categories []models.Category, transactions []models.Transaction) []DailySavingsPoint {
	h := NewHierarchy(categories)

	points := make([]DailySavingsPoint, month.Days())
	for i := range points {
		points[i] = DailySavingsPoint{Day: i + 1, Income: decimal.Zero, Spend: decimal.Zero}
	}

	for _, t := range transactions {
		if !month.Contains(t.Date) {
			continue
		}

		p := &points[t.Date.Day()-1]
		if h.IsIncome(t) {
			p.Income = p.Income.Add(t.Amount)
		} else {
			p.Spend = p.Spend.Add(t.Amount)
		}
	}

	for i := range points {
		points[i].Savings = points[i].Income.Add(points[i].Spend).Round(2)
		points[i].Income = points[i].Income.Round(2)
		points[i].Spend = points[i].Spend.Round(2)
	}

	return points
}
