package report

import (
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// BlanketCategoryName is the category name of the row for spend no reward rule covers.
const BlanketCategoryName = "Everything else"

var (
	// cashbackUnit converts cashback multipliers, which are percentages, into rates.
	cashbackUnit = decimal.NewFromFloat(0.01)

	blanketCashback = decimal.NewFromFloat(0.01)
	blanketDefault  = decimal.NewFromInt(1)
)

// RewardRow is the reward earned for spend in one category.
type RewardRow struct {
	CategoryName          string          `json:"categoryName" example:"Dining"`
	ReportingCategoryName *string         `json:"reportingCategoryName" example:"Food"`
	Multiplier            decimal.Decimal `json:"multiplier" example:"3"`
	Spend                 decimal.Decimal `json:"spend" example:"150"`
	Rewards               decimal.Decimal `json:"rewards" example:"4.5"`
	IsBlanket             bool            `json:"isBlanket" example:"false"`
}

// RuleSpend is the spend matching a reward rule in its active window.
type RuleSpend struct {
	Rule  models.RewardCategory
	Spend decimal.Decimal
}

// RewardReport is the reward attribution for one source and year.
type RewardReport struct {
	Rows             []RewardRow     `json:"rows"`
	CoveredSpend     decimal.Decimal `json:"coveredSpend" example:"350"`      // Spend matched by a reward rule
	BlanketSpend     decimal.Decimal `json:"blanketSpend" example:"650"`      // Spend of the source no rule covers
	TotalSourceSpend decimal.Decimal `json:"totalSourceSpend" example:"1000"` // All non-income spend of the source in the year
	TotalRewards     decimal.Decimal `json:"totalRewards" example:"17"`
	AnnualFee        decimal.Decimal `json:"annualFee" example:"95"`
	NetRewards       decimal.Decimal `json:"netRewards" example:"-78"`
}

// RuleWindow returns the half-open time range a reward rule is active in
// during the year.
//
// Rules without a quarter or with a quarter label that cannot be parsed
// apply to the whole year. If the rule's quarter is in a different year,
// active is false.
func RuleWindow(rule models.RewardCategory, year int) (from, until time.Time, active bool) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until = from.AddDate(1, 0, 0)

	if rule.ApplicableQuarter == "" {
		return from, until, true
	}

	start, end, ok := types.QuarterDateRange(rule.ApplicableQuarter)
	if !ok {
		return from, until, true
	}

	if start.Year() != year {
		return time.Time{}, time.Time{}, false
	}

	return start, end.AddDate(0, 0, 1), true
}

// BlanketMultiplier returns the reward rate for spend not covered by a rule.
func BlanketMultiplier(rewardType models.RewardType) decimal.Decimal {
	if rewardType == models.RewardTypeCashback {
		return blanketCashback
	}

	return blanketDefault
}

// AttributeRewards computes the rewards a source earns.
//
// Spend values are absolute. Spend of the source that no rule covers earns
// the blanket multiplier.
func AttributeRewards(source models.Source, rules []RuleSpend, totalSourceSpend decimal.Decimal) RewardReport {
	report := RewardReport{
		Rows:             make([]RewardRow, 0, len(rules)+1),
		CoveredSpend:     decimal.Zero,
		BlanketSpend:     decimal.Zero,
		TotalSourceSpend: totalSourceSpend.Abs(),
		TotalRewards:     decimal.Zero,
		AnnualFee:        source.AnnualFee,
	}

	unit := decimal.NewFromInt(1)
	if source.RewardType == models.RewardTypeCashback {
		unit = cashbackUnit
	}

	for _, r := range rules {
		spend := r.Spend.Abs()
		rewards := spend.Mul(r.Rule.Multiplier).Mul(unit)

		var reportingName *string
		if r.Rule.Category.ReportingCategory != nil {
			name := r.Rule.Category.ReportingCategory.Name
			reportingName = &name
		}

		report.Rows = append(report.Rows, RewardRow{
			CategoryName:          r.Rule.Category.Name,
			ReportingCategoryName: reportingName,
			Multiplier:            r.Rule.Multiplier,
			Spend:                 spend,
			Rewards:               rewards,
		})

		report.CoveredSpend = report.CoveredSpend.Add(spend)
		report.TotalRewards = report.TotalRewards.Add(rewards)
	}

	slices.SortFunc(report.Rows, func(a, b RewardRow) int {
		return strings.Compare(strings.ToLower(a.CategoryName), strings.ToLower(b.CategoryName))
	})

	report.BlanketSpend = decimal.Max(report.TotalSourceSpend.Sub(report.CoveredSpend), decimal.Zero)
	if report.BlanketSpend.IsPositive() {
		multiplier := BlanketMultiplier(source.RewardType)
		rewards := report.BlanketSpend.Mul(multiplier)

		report.Rows = append(report.Rows, RewardRow{
			CategoryName: BlanketCategoryName,
			Multiplier:   multiplier,
			Spend:        report.BlanketSpend,
			Rewards:      rewards,
			IsBlanket:    true,
		})
		report.TotalRewards = report.TotalRewards.Add(rewards)
	}

	report.NetRewards = report.TotalRewards.Sub(report.AnnualFee)
	return report
}
