package v1_test

import (
	"fmt"
	"net/http"
	"os"

	v1 "github.com/envelope-zero/tracker/internal/controllers/v1"
	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/report"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/envelope-zero/tracker/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReportOptions() {
	for _, path := range []string{"months", "months/daily-savings", "trailing", "budget", "rewards"} {
		suite.Run(path, func() {
			recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/v1/reports/%s", path), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
			assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMonthReport() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Nil(suite.T(), response.Error)
	assert.Equal(suite.T(), "2024-03", response.Data.Month.String())
	suite.assertDecimal(3000, response.Data.Income)
	suite.assertDecimal(200, response.Data.TotalSpent)
	suite.assertDecimal(2800, response.Data.Savings)
	assert.Equal(suite.T(), "$2,800.00", response.Data.Display.Savings)
	assert.Len(suite.T(), response.Data.Line, 31)
	assert.Len(suite.T(), response.Data.Pie, 2)
	assert.Equal(suite.T(), []int{2024}, response.Data.Years)
	assert.False(suite.T(), response.Data.Cached)
}

func (suite *TestSuiteStandard) TestMonthReportCached() {
	_ = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/months?month=2024-03", "")
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/months?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	assert.True(suite.T(), response.Data.Cached)
	suite.assertDecimal(200, response.Data.TotalSpent)
}

func (suite *TestSuiteStandard) TestMonthReportSnapshotsDisabled() {
	os.Setenv("DISABLE_SNAPSHOT_CACHE", "true")
	defer os.Unsetenv("DISABLE_SNAPSHOT_CACHE")

	for range 2 {
		recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/months?month=2024-03", "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.MonthReportResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Require().NotNil(response.Data)
		assert.False(suite.T(), response.Data.Cached)
	}
}

func (suite *TestSuiteStandard) TestMonthReportQueryErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing month", "", "the month query parameter must be set"},
		{"Empty month", "?month=", "the month query parameter must be set"},
		{"Invalid month", "?month=March", httputil.ErrInvalidQueryString.Error()},
		{"Month out of range", "?month=2024-13", httputil.ErrInvalidQueryString.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			for _, path := range []string{"months", "months/daily-savings"} {
				recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s%s", path, tt.query), "")
				test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

				var response v1.MonthReportResponse
				test.DecodeResponse(suite.T(), &recorder, &response)
				suite.Require().NotNil(response.Error)
				assert.Equal(suite.T(), tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDailySavings() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/months/daily-savings?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DailySavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 31)
	assert.Equal(suite.T(), 1, response.Data[0].Day)
	suite.assertDecimal(3000, response.Data[0].Income)
	suite.assertDecimal(-40, response.Data[1].Spend)
	suite.assertDecimal(-100, response.Data[9].Savings)
}

func (suite *TestSuiteStandard) TestTrailingReport() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/trailing?mode=ttm&month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrailingReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), report.ModeTTM, response.Data.Mode)
	assert.Equal(suite.T(), 12, response.Data.MonthsElapsed)
	assert.Equal(suite.T(), types.NewMonth(2023, 4), response.Data.Months[0])
	suite.assertDecimal(3000, response.Data.Income.Total)
	suite.assertDecimal(200, response.Data.TotalSpend.Total)
	suite.assertDecimal(2800, response.Data.Savings.Total)
	assert.Len(suite.T(), response.Data.Chart, 12)
}

func (suite *TestSuiteStandard) TestTrailingReportDefaultMode() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/trailing?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TrailingReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), report.ModeYTD, response.Data.Mode)
	assert.Equal(suite.T(), 3, response.Data.MonthsElapsed)
}

func (suite *TestSuiteStandard) TestTrailingReportQueryErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Invalid mode", "?mode=weekly", "the mode must be one of 'ytd' or 'ttm'"},
		{"Invalid month", "?month=2024", httputil.ErrInvalidQueryString.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/trailing"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

			var response v1.TrailingReportResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Require().NotNil(response.Error)
			assert.Equal(suite.T(), tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetOverview() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.assertDecimal(-2600, response.Data.Total.Budget)
}

func (suite *TestSuiteStandard) TestBudgetOverviewDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/budget", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestRewards() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/rewards?source=%s&year=2024", suite.card.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RewardsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	assert.Equal(suite.T(), suite.card.ID, response.Data.Source.ID)
	assert.Equal(suite.T(), "CardX", response.Data.Source.Name)
	assert.Equal(suite.T(), 2024, response.Data.Year)
	suite.Require().Len(response.Data.Rows, 2)
	assert.Equal(suite.T(), "Groceries", response.Data.Rows[0].CategoryName)
	assert.True(suite.T(), response.Data.Rows[1].IsBlanket)
	suite.assertDecimal(3.4, response.Data.TotalRewards)
	suite.assertDecimal(-91.6, response.Data.NetRewards)
}

func (suite *TestSuiteStandard) TestRewardsOtherYear() {
	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/rewards?source=%s&year=2023", suite.card.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RewardsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.assertDecimal(0, response.Data.TotalRewards)
	suite.assertDecimal(-95, response.Data.NetRewards)
}

func (suite *TestSuiteStandard) TestRewardsErrors() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Missing source", "?year=2024", http.StatusBadRequest},
		{"Invalid source", "?source=not-a-uuid", http.StatusBadRequest},
		{"Unknown source", fmt.Sprintf("?source=%s", uuid.New()), http.StatusNotFound},
		{"Invalid year", fmt.Sprintf("?source=%s&year=12000", suite.card.ID), http.StatusBadRequest},
		{"Year not a number", fmt.Sprintf("?source=%s&year=last", suite.card.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/rewards"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.RewardsResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			assert.NotNil(suite.T(), response.Error)
			assert.Nil(suite.T(), response.Data)
		})
	}
}
