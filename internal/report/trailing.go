package report

import (
	"strings"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Mode is the kind of trailing window.
type Mode string

const (
	ModeYTD Mode = "ytd" // January through the current month
	ModeTTM Mode = "ttm" // The twelve months ending with the current month
)

const (
	TotalSpendRowName = "Total Spend"

	// runningWindow is the number of months the running savings average is computed over.
	runningWindow = 3
)

var twelve = decimal.NewFromInt(12)

// TrailingWindowRow is the aggregate of one category over a trailing window.
type TrailingWindowRow struct {
	Label        string          `json:"label" example:"Food"`
	Total        decimal.Decimal `json:"total" example:"1200"`
	AnnualBudget decimal.Decimal `json:"annualBudget" example:"4800"`
	AvgPerMonth  decimal.Decimal `json:"avgPerMonth" example:"400"`
	Budget       decimal.Decimal `json:"budget" example:"400"`
	AvgSurplus   decimal.Decimal `json:"avgSurplus" example:"0"`
	TotalSurplus decimal.Decimal `json:"totalSurplus" example:"0"`
}

// SavingsChartPoint is the net savings of one month of a trailing window.
type SavingsChartPoint struct {
	Month      types.Month     `json:"month" example:"2024-03"`
	MonthLabel string          `json:"monthLabel" example:"Mar"`
	Income     decimal.Decimal `json:"income" example:"3000"`
	Spend      decimal.Decimal `json:"spend" example:"-2500"`
	Savings    decimal.Decimal `json:"savings" example:"500"`
	Running    decimal.Decimal `json:"running" example:"420.5"` // Mean savings of this month and up to two months before
}

// TrailingInput is the data a trailing window is aggregated from.
type TrailingInput struct {
	Mode         Mode
	Current      types.Month          // Last month of the window
	Categories   []models.Category    // All categories
	TopLevel     []models.Category    // Categories without reporting category
	Income       *models.Category     // The income category, if it exists
	Transactions []models.Transaction // Transactions in the window
}

// TrailingReport is the aggregate of a trailing window.
type TrailingReport struct {
	Mode          Mode                `json:"mode" example:"ytd"`
	Months        []types.Month       `json:"months"`
	MonthsElapsed int                 `json:"monthsElapsed" example:"3"`
	Rows          []TrailingWindowRow `json:"rows"` // One row per reporting category, ordered by label
	TotalSpend    TrailingWindowRow   `json:"totalSpend"`
	Income        TrailingWindowRow   `json:"income"`
	Savings       TrailingWindowRow   `json:"savings"`
	Chart         []SavingsChartPoint `json:"chart"`
}

// WindowMonths returns the months of the trailing window ending with current.
func WindowMonths(mode Mode, current types.Month) []types.Month {
	if mode == ModeTTM {
		return types.TrailingMonths(current, 12)
	}

	return types.MonthsOfYearUntil(current)
}

// AggregateTrailingWindow computes per category averages and the monthly
// savings over a trailing window.
func AggregateTrailingWindow(in TrailingInput) TrailingReport {
	months := WindowMonths(in.Mode, in.Current)
	report := TrailingReport{
		Mode:          in.Mode,
		Months:        months,
		MonthsElapsed: len(months),
		Rows:          make([]TrailingWindowRow, 0),
	}

	h := NewHierarchy(in.Categories)
	perMonth := func(value decimal.Decimal) decimal.Decimal {
		if report.MonthsElapsed == 0 {
			return decimal.Zero
		}
		return value.Div(decimal.NewFromInt(int64(report.MonthsElapsed)))
	}
	elapsed := decimal.NewFromInt(int64(report.MonthsElapsed))

	income := decimal.Zero
	spendByBucket := make(map[uuid.UUID]*bucketTotal)
	monthIncome := make([]decimal.Decimal, len(months))
	monthSpend := make([]decimal.Decimal, len(months))

	for _, t := range in.Transactions {
		index := slices.IndexFunc(months, func(m types.Month) bool { return m.Contains(t.Date) })
		if index < 0 {
			continue
		}

		b := h.Bucket(t)
		if b.IsIncome() {
			income = income.Add(t.Amount)
			monthIncome[index] = monthIncome[index].Add(t.Amount)
			continue
		}

		monthSpend[index] = monthSpend[index].Add(t.Amount)
		if _, ok := spendByBucket[b.ID]; !ok {
			spendByBucket[b.ID] = &bucketTotal{bucket: b, spend: decimal.Zero}
		}
		spendByBucket[b.ID].spend = spendByBucket[b.ID].spend.Sub(t.Amount)
	}

	// Budgeted categories without transactions count against the total budget, too
	for _, c := range in.TopLevel {
		if _, ok := spendByBucket[c.ID]; ok || c.IsIncome() || c.Budget.IsZero() {
			continue
		}
		spendByBucket[c.ID] = &bucketTotal{bucket: Bucket{ID: c.ID, Name: c.Name, Budget: c.Budget}, spend: decimal.Zero}
	}

	totalSpend := decimal.Zero
	totalBudget := decimal.Zero
	for _, t := range spendByBucket {
		avg := perMonth(t.spend)
		avgSurplus := t.bucket.Budget.Sub(avg)

		report.Rows = append(report.Rows, TrailingWindowRow{
			Label:        t.bucket.Name,
			Total:        t.spend,
			AnnualBudget: t.bucket.Budget.Mul(twelve),
			AvgPerMonth:  avg,
			Budget:       t.bucket.Budget,
			AvgSurplus:   avgSurplus,
			TotalSurplus: avgSurplus.Mul(elapsed),
		}.rounded())

		totalSpend = totalSpend.Add(t.spend)
		totalBudget = totalBudget.Add(t.bucket.Budget)
	}

	slices.SortFunc(report.Rows, func(a, b TrailingWindowRow) int {
		return strings.Compare(a.Label, b.Label)
	})

	avgSpend := perMonth(totalSpend)
	report.TotalSpend = TrailingWindowRow{
		Label:        TotalSpendRowName,
		Total:        totalSpend,
		AnnualBudget: totalBudget.Mul(twelve),
		AvgPerMonth:  avgSpend,
		Budget:       totalBudget,
		AvgSurplus:   totalBudget.Sub(avgSpend),
		TotalSurplus: totalBudget.Sub(avgSpend).Mul(elapsed),
	}

	// The income budget is stored negative
	incomeBudget := decimal.Zero
	if in.Income != nil {
		incomeBudget = in.Income.Budget.Neg()
	}
	avgIncome := perMonth(income)
	report.Income = TrailingWindowRow{
		Label:        IncomeRowName,
		Total:        income,
		AnnualBudget: incomeBudget.Mul(twelve),
		AvgPerMonth:  avgIncome,
		Budget:       incomeBudget,
		AvgSurplus:   avgIncome.Sub(incomeBudget),
		TotalSurplus: avgIncome.Sub(incomeBudget).Mul(elapsed),
	}

	report.Savings = TrailingWindowRow{
		Label:        SavingsRowName,
		Total:        report.Income.Total.Sub(report.TotalSpend.Total),
		AnnualBudget: report.Income.AnnualBudget.Sub(report.TotalSpend.AnnualBudget),
		AvgPerMonth:  report.Income.AvgPerMonth.Sub(report.TotalSpend.AvgPerMonth),
		Budget:       report.Income.Budget.Sub(report.TotalSpend.Budget),
		AvgSurplus:   report.Income.AvgSurplus.Add(report.TotalSpend.AvgSurplus),
		TotalSurplus: report.Income.TotalSurplus.Add(report.TotalSpend.TotalSurplus),
	}.rounded()

	report.TotalSpend = report.TotalSpend.rounded()
	report.Income = report.Income.rounded()
	report.Chart = savingsChart(months, monthIncome, monthSpend)

	return report
}

// savingsChart returns the monthly savings with their running average.
func savingsChart(months []types.Month, income, spend []decimal.Decimal) []SavingsChartPoint {
	chart := make([]SavingsChartPoint, 0, len(months))
	history := make([]decimal.Decimal, 0, len(months))

	for i, m := range months {
		savings := income[i].Add(spend[i])
		history = append(history, savings)

		recent := history[max(0, len(history)-runningWindow):]
		running := decimal.Sum(decimal.Zero, recent...).Div(decimal.NewFromInt(int64(len(recent))))

		chart = append(chart, SavingsChartPoint{
			Month:      m,
			MonthLabel: m.ShortName(),
			Income:     income[i].Round(2),
			Spend:      spend[i].Round(2),
			Savings:    savings.Round(2),
			Running:    running.Round(2),
		})
	}

	return chart
}

func (r TrailingWindowRow) rounded() TrailingWindowRow {
	r.Total = r.Total.Round(2)
	r.AnnualBudget = r.AnnualBudget.Round(2)
	r.AvgPerMonth = r.AvgPerMonth.Round(2)
	r.Budget = r.Budget.Round(2)
	r.AvgSurplus = r.AvgSurplus.Round(2)
	r.TotalSurplus = r.TotalSurplus.Round(2)
	return r
}
