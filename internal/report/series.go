package report

import (
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
)

// SeriesLength is the number of values in a daily series.
const SeriesLength = 31

// DailyAmount is the spend on one day. Spend is positive.
type DailyAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// LineDatum is the cumulative spend at the end of one day.
type LineDatum struct {
	Date       string          `json:"date" example:"2024-03-05"`
	Cumulative decimal.Decimal `json:"cumulative" example:"127.89"`
}

// DailySeries returns the cumulative spend for every day of the month.
//
// The running total starts at 0 and days without transactions carry the
// previous value forward. The result always has SeriesLength entries, the
// entries after the last day of the month repeat the final value.
// Amounts dated outside of the month are ignored.
func DailySeries(month types.Month, amounts []DailyAmount) []decimal.Decimal {
	days := month.Days()
	perDay := make([]decimal.Decimal, days)
	for _, a := range amounts {
		if !month.Contains(a.Date) {
			continue
		}

		day := a.Date.Day() - 1
		perDay[day] = perDay[day].Add(a.Amount)
	}

	series := make([]decimal.Decimal, 0, SeriesLength)
	cumulative := decimal.Zero
	for _, amount := range perDay {
		cumulative = cumulative.Add(amount)
		series = append(series, cumulative)
	}

	for len(series) < SeriesLength {
		series = append(series, cumulative)
	}

	return series
}

// LineData returns the line chart data for the real days of the month.
func LineData(month types.Month, series []decimal.Decimal) []LineDatum {
	days := month.Days()
	if len(series) < days {
		days = len(series)
	}

	data := make([]LineDatum, 0, days)
	for i := 0; i < days; i++ {
		data = append(data, LineDatum{
			Date:       month.Day(i + 1).Format(time.DateOnly),
			Cumulative: series[i],
		})
	}

	return data
}
