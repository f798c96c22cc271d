package report

import (
	"strings"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	SavingsRowName = "Savings"
	IncomeRowName  = "Income"
)

var hundred = decimal.NewFromInt(100)

// PieDatum is one slice of the spending pie chart. All values are absolute.
type PieDatum struct {
	Name       string          `json:"name" example:"Food"`
	Total      decimal.Decimal `json:"total" example:"100"`
	Percentage decimal.Decimal `json:"percentage" example:"12.5"`
	Budget     decimal.Decimal `json:"budget" example:"400"`
	Surplus    decimal.Decimal `json:"surplus" example:"300"`
}

// CategoryTableRow is one row of the category table of a month.
type CategoryTableRow struct {
	Name              string          `json:"name" example:"Food"`
	Total             decimal.Decimal `json:"total" example:"100"`            // Absolute spend in the category
	Percentage        decimal.Decimal `json:"percentage" example:"12.5"`      // Share of the total spend. Negative for categories with net refunds
	Budget            decimal.Decimal `json:"budget" example:"400"`           // Absolute monthly budget
	Surplus           decimal.Decimal `json:"surplus" example:"300"`          // Budget left. Negative when overspent
	IsSurplusNegative bool            `json:"isSurplusNegative" example:"false"`
	IsBudgetNegative  bool            `json:"isBudgetNegative" example:"false"`
	IsNegative        bool            `json:"isNegative" example:"false"` // The category has net refunds
	IsSynthetic       bool            `json:"isSynthetic" example:"false"` // The row is the Savings or Income row
}

// CategoryBreakdown is the spend of a period grouped by reporting category.
type CategoryBreakdown struct {
	Income     decimal.Decimal
	TotalSpent decimal.Decimal
	Pie        []PieDatum
	Table      []CategoryTableRow
}

type bucketTotal struct {
	bucket Bucket
	spend  decimal.Decimal
}

// AggregateCategories groups the transactions of a period by their
// reporting category.
//
// Income is excluded from the category rows. Every top-level category with a
// budget gets a row, even without transactions. The Savings and Income rows
// are appended last.
func AggregateCategories(categories []models.Category, transactions []models.Transaction) CategoryBreakdown {
	h := NewHierarchy(categories)

	income := decimal.Zero
	totals := make(map[uuid.UUID]*bucketTotal)
	for _, t := range transactions {
		b := h.Bucket(t)
		if b.IsIncome() {
			income = income.Add(t.Amount)
			continue
		}

		if _, ok := totals[b.ID]; !ok {
			totals[b.ID] = &bucketTotal{bucket: b, spend: decimal.Zero}
		}
		totals[b.ID].spend = totals[b.ID].spend.Sub(t.Amount)
	}

	active := maps.Values(totals)
	slices.SortFunc(active, func(a, b *bucketTotal) int {
		if c := b.spend.Cmp(a.spend); c != 0 {
			return c
		}
		return strings.Compare(a.bucket.Name, b.bucket.Name)
	})

	totalSpent := decimal.Zero
	for _, t := range active {
		totalSpent = totalSpent.Add(t.spend)
	}

	breakdown := CategoryBreakdown{
		Income:     income,
		TotalSpent: totalSpent,
		Pie:        make([]PieDatum, 0, len(active)),
		Table:      make([]CategoryTableRow, 0, len(active)+len(categories)+2),
	}

	for _, t := range active {
		percentage := percentageOf(t.spend, totalSpent)
		surplus := t.bucket.Budget.Sub(t.spend)

		breakdown.Pie = append(breakdown.Pie, PieDatum{
			Name:       t.bucket.Name,
			Total:      t.spend.Abs(),
			Percentage: percentage.Abs(),
			Budget:     t.bucket.Budget.Abs(),
			Surplus:    surplus.Abs(),
		})

		breakdown.Table = append(breakdown.Table, CategoryTableRow{
			Name:              t.bucket.Name,
			Total:             t.spend.Abs(),
			Percentage:        percentage,
			Budget:            t.bucket.Budget.Abs(),
			Surplus:           surplus,
			IsSurplusNegative: surplus.IsNegative(),
			IsBudgetNegative:  t.bucket.Budget.IsNegative(),
			IsNegative:        t.spend.IsNegative(),
		})
	}

	// Budgeted categories without transactions
	totalBudget := decimal.Zero
	incomeBudget := decimal.Zero
	for _, c := range categories {
		totalBudget = totalBudget.Add(c.Budget)

		if c.IsIncome() {
			incomeBudget = c.Budget
			continue
		}

		if _, ok := totals[c.ID]; ok || c.ReportingCategoryID != nil || c.Budget.IsZero() {
			continue
		}

		breakdown.Table = append(breakdown.Table, CategoryTableRow{
			Name:              c.Name,
			Total:             decimal.Zero,
			Percentage:        decimal.Zero,
			Budget:            c.Budget.Abs(),
			Surplus:           c.Budget,
			IsSurplusNegative: c.Budget.IsNegative(),
			IsBudgetNegative:  c.Budget.IsNegative(),
		})
	}

	savings := income.Sub(totalSpent)
	savingsBudget := totalBudget.Neg()
	savingsSurplus := savings.Sub(savingsBudget)
	breakdown.Table = append(breakdown.Table, CategoryTableRow{
		Name:              SavingsRowName,
		Total:             savings,
		Percentage:        decimal.Zero,
		Budget:            savingsBudget.Abs(),
		Surplus:           savingsSurplus,
		IsSurplusNegative: savingsSurplus.IsNegative(),
		IsBudgetNegative:  savingsBudget.IsNegative(),
		IsNegative:        savings.IsNegative(),
		IsSynthetic:       true,
	})

	incomeSurplus := incomeBudget.Add(income)
	breakdown.Table = append(breakdown.Table, CategoryTableRow{
		Name:              IncomeRowName,
		Total:             income.Abs(),
		Percentage:        decimal.Zero,
		Budget:            incomeBudget.Abs(),
		Surplus:           incomeSurplus,
		IsSurplusNegative: incomeSurplus.IsNegative(),
		IsSynthetic:       true,
	})

	return breakdown
}

// percentageOf returns part as percentage of total, rounded to two decimal places.
// For a total of zero, it returns zero.
func percentageOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred).Round(2)
}
