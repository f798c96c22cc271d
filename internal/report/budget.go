package report

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/shopspring/decimal"
)

// TotalRowName is the name of the row summing up all budgets.
const TotalRowName = "Total"

// BudgetRow is the budget of one category.
type BudgetRow struct {
	Name                 string          `json:"name" example:"Food"`
	Budget               decimal.Decimal `json:"budget" example:"400"`
	AnnualBudget         decimal.Decimal `json:"annualBudget" example:"4800"`
	NegativeBudget       decimal.Decimal `json:"negativeBudget" example:"-400"`
	AnnualNegativeBudget decimal.Decimal `json:"annualNegativeBudget" example:"-4800"`
}

// BudgetOverview is the monthly and annual budget of all categories.
type BudgetOverview struct {
	Categories []BudgetRow `json:"categories"`
	Total      BudgetRow   `json:"total"`
}

func newBudgetRow(name string, budget decimal.Decimal) BudgetRow {
	return BudgetRow{
		Name:                 name,
		Budget:               budget,
		AnnualBudget:         budget.Mul(twelve),
		NegativeBudget:       budget.Neg(),
		AnnualNegativeBudget: budget.Mul(twelve).Neg(),
	}
}

// OverviewBudgets returns the budget rows for the categories and their total.
func OverviewBudgets(categories []models.Category) BudgetOverview {
	overview := BudgetOverview{
		Categories: make([]BudgetRow, 0, len(categories)),
	}

	total := decimal.Zero
	for _, c := range categories {
		overview.Categories = append(overview.Categories, newBudgetRow(c.Name, c.Budget))
		total = total.Add(c.Budget)
	}

	overview.Total = newBudgetRow(TotalRowName, total)
	return overview
}
