// Package report implements the aggregation of transactions into reports.
//
// The aggregation functions are pure. Engine reads the data they need from
// a Repository and keeps the month snapshots up to date.
package report

import (
	"errors"
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository is the data source of the Engine.
//
// models.Store implements it.
type Repository interface {
	SnapshotRepository
	Transactions(filter models.TransactionFilter) ([]models.Transaction, error)
	SumAmount(filter models.TransactionFilter) (decimal.Decimal, error)
	Categories(topLevelOnly bool) ([]models.Category, error)
	Category(name string) (models.Category, error)
	Source(id uuid.UUID) (models.Source, error)
	RewardCategories(sourceID uuid.UUID) ([]models.RewardCategory, error)
	TransactionYears() ([]int, error)
}

// Engine computes reports.
type Engine struct {
	repository Repository
	snapshots  SnapshotCache
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the function the Engine uses to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithoutSnapshots disables the month snapshot cache.
func WithoutSnapshots() Option {
	return func(e *Engine) {
		e.snapshots.disabled = true
	}
}

// NewEngine returns an Engine reading from the repository.
func NewEngine(repository Repository, options ...Option) *Engine {
	e := &Engine{
		repository: repository,
		now:        time.Now,
	}

	for _, o := range options {
		o(e)
	}

	e.snapshots.repository = repository
	e.snapshots.now = e.now

	return e
}

// CurrentMonth returns the month the Engine considers to be the current one.
func (e *Engine) CurrentMonth() types.Month {
	return types.MonthOf(e.now().In(time.UTC))
}

// MonthDisplay contains the headline values of a month formatted as dollars.
type MonthDisplay struct {
	Income     string `json:"income" example:"$3,000.00"`
	TotalSpent string `json:"totalSpent" example:"$2,512.37"`
	Savings    string `json:"savings" example:"$487.63"`
}

// MonthReport is the spending report of one month.
type MonthReport struct {
	Month      types.Month        `json:"month" example:"2024-03"`
	Income     decimal.Decimal    `json:"income" example:"3000"`
	TotalSpent decimal.Decimal    `json:"totalSpent" example:"2512.37"`
	Savings    decimal.Decimal    `json:"savings" example:"487.63"`
	Display    MonthDisplay       `json:"display"`
	Pie        []PieDatum         `json:"pie"`
	Line       []LineDatum        `json:"line"`
	Table      []CategoryTableRow `json:"table"`
	Years      []int              `json:"years"`  // All years with transactions
	Cached     bool               `json:"cached"` // The headline values and the line chart are read from the snapshot of the month
}

// Month returns the report for a month.
func (e *Engine) Month(month types.Month) (MonthReport, error) {
	categories, err := e.repository.Categories(false)
	if err != nil {
		return MonthReport{}, err
	}

	transactions, err := e.repository.Transactions(models.TransactionFilter{Year: month.Year(), Month: month.Month()})
	if err != nil {
		return MonthReport{}, err
	}

	breakdown := AggregateCategories(categories, transactions)
	report := MonthReport{
		Month:      month,
		Income:     breakdown.Income,
		TotalSpent: breakdown.TotalSpent,
		Pie:        breakdown.Pie,
		Table:      breakdown.Table,
	}

	snapshot, found, err := e.snapshots.Find(month)
	if err != nil {
		return MonthReport{}, err
	}

	var series []decimal.Decimal
	if found && len(snapshot.DailySpend) == SeriesLength {
		report.Income = snapshot.TotalIncome
		report.TotalSpent = snapshot.TotalSpend
		report.Cached = true
		series = snapshot.DailySpend
	} else {
		series = DailySeries(month, spendAmounts(NewHierarchy(categories), transactions))

		err = e.snapshots.Save(month, models.MonthSnapshot{
			TotalSpend:  report.TotalSpent,
			TotalIncome: report.Income,
			DailySpend:  series,
		})
		if err != nil {
			return MonthReport{}, err
		}
	}

	report.Line = LineData(month, series)
	report.Savings = report.Income.Sub(report.TotalSpent)
	report.Display = MonthDisplay{
		Income:     FormatDollars(report.Income),
		TotalSpent: FormatDollars(report.TotalSpent),
		Savings:    FormatDollars(report.Savings),
	}

	report.Years, err = e.repository.TransactionYears()
	if err != nil {
		return MonthReport{}, err
	}

	return report, nil
}

// DailySavings returns the income, spend and savings for each day of the month.
func (e *Engine) DailySavings(month types.Month) ([]DailySavingsPoint, error) {
	categories, err := e.repository.Categories(false)
	if err != nil {
		return nil, err
	}

	transactions, err := e.repository.Transactions(models.TransactionFilter{Year: month.Year(), Month: month.Month()})
	if err != nil {
		return nil, err
	}

	return DailySavings(month, categories, transactions), nil
}

// TrailingWindow returns the trailing window report ending with the current month.
func (e *Engine) TrailingWindow(mode Mode, current types.Month) (TrailingReport, error) {
	months := WindowMonths(mode, current)

	categories, err := e.repository.Categories(false)
	if err != nil {
		return TrailingReport{}, err
	}

	topLevel, err := e.repository.Categories(true)
	if err != nil {
		return TrailingReport{}, err
	}

	var income *models.Category
	c, err := e.repository.Category(models.IncomeCategoryName)
	if err == nil {
		income = &c
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		return TrailingReport{}, err
	}

	transactions, err := e.repository.Transactions(models.TransactionFilter{
		From:  months[0].Start(),
		Until: current.End(),
	})
	if err != nil {
		return TrailingReport{}, err
	}

	return AggregateTrailingWindow(TrailingInput{
		Mode:         mode,
		Current:      current,
		Categories:   categories,
		TopLevel:     topLevel,
		Income:       income,
		Transactions: transactions,
	}), nil
}

// Rewards returns the rewards a source earned in a year.
func (e *Engine) Rewards(sourceID uuid.UUID, year int) (models.Source, RewardReport, error) {
	source, err := e.repository.Source(sourceID)
	if err != nil {
		return models.Source{}, RewardReport{}, err
	}

	rules, err := e.repository.RewardCategories(sourceID)
	if err != nil {
		return models.Source{}, RewardReport{}, err
	}

	spends := make([]RuleSpend, 0, len(rules))
	for _, rule := range rules {
		from, until, active := RuleWindow(rule, year)
		if !active {
			spends = append(spends, RuleSpend{Rule: rule, Spend: decimal.Zero})
			continue
		}

		spend, err := e.repository.SumAmount(models.TransactionFilter{
			SourceID:   &sourceID,
			CategoryID: &rule.CategoryID,
			From:       from,
			Until:      until,
		})
		if err != nil {
			return models.Source{}, RewardReport{}, err
		}

		spends = append(spends, RuleSpend{Rule: rule, Spend: spend})
	}

	total, err := e.repository.SumAmount(models.TransactionFilter{
		SourceID:                     &sourceID,
		Year:                         year,
		ExcludeCategoryName:          models.IncomeCategoryName,
		ExcludeReportingCategoryName: models.IncomeCategoryName,
	})
	if err != nil {
		return models.Source{}, RewardReport{}, err
	}

	return source, AttributeRewards(source, spends, total), nil
}

// BudgetOverview returns the budgets of all categories.
func (e *Engine) BudgetOverview() (BudgetOverview, error) {
	categories, err := e.repository.Categories(false)
	if err != nil {
		return BudgetOverview{}, err
	}

	return OverviewBudgets(categories), nil
}

// spendAmounts returns the spend of all non-income transactions.
func spendAmounts(h Hierarchy, transactions []models.Transaction) []DailyAmount {
	amounts := make([]DailyAmount, 0, len(transactions))
	for _, t := range transactions {
		if h.IsIncome(t) {
			continue
		}

		amounts = append(amounts, DailyAmount{Date: t.Date, Amount: t.Amount.Neg()})
	}

	return amounts
}
