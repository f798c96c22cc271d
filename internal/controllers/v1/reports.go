package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/report"
	ez_uuid "github.com/envelope-zero/tracker/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/months", OptionsReport)
		r.GET("/months", GetMonthReport)
		r.OPTIONS("/months/daily-savings", OptionsReport)
		r.GET("/months/daily-savings", GetDailySavings)
		r.OPTIONS("/trailing", OptionsReport)
		r.GET("/trailing", GetTrailingReport)
		r.OPTIONS("/budget", OptionsReport)
		r.GET("/budget", GetBudgetOverview)
		r.OPTIONS("/rewards", OptionsReport)
		r.GET("/rewards", GetRewards)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/months [options]
// @Router			/v1/reports/months/daily-savings [options]
// @Router			/v1/reports/trailing [options]
// @Router			/v1/reports/budget [options]
// @Router			/v1/reports/rewards [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Month report
// @Description	Returns spend per category, the cumulative daily spend and the savings of a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthReportResponse
// @Failure		400		{object}	MonthReportResponse
// @Failure		500		{object}	MonthReportResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/months [get]
func GetMonthReport(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MonthReportResponse{Error: &e})
		return
	}

	if query.Month.IsZero() {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthReportResponse{Error: &e})
		return
	}

	data, err := engine(c).Month(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthReportResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthReportResponse{Data: &data})
}

// @Summary		Daily savings
// @Description	Returns income, spend and savings for every day of a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	DailySavingsResponse
// @Failure		400		{object}	DailySavingsResponse
// @Failure		500		{object}	DailySavingsResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/months/daily-savings [get]
func GetDailySavings(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DailySavingsResponse{Error: &e})
		return
	}

	if query.Month.IsZero() {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, DailySavingsResponse{Error: &e})
		return
	}

	data, err := engine(c).DailySavings(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DailySavingsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DailySavingsResponse{Data: data})
}

// @Summary		Trailing window report
// @Description	Returns per category averages, budgets and surpluses for the year to date or the trailing twelve months
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	TrailingReportResponse
// @Failure		400		{object}	TrailingReportResponse
// @Failure		500		{object}	TrailingReportResponse
// @Param			mode	query		string	false	"ytd (default) or ttm"
// @Param			month	query		string	false	"Last month of the window in YYYY-MM format. Defaults to the current month"
// @Router			/v1/reports/trailing [get]
func GetTrailingReport(c *gin.Context) {
	var query QueryTrailing
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TrailingReportResponse{Error: &e})
		return
	}

	if query.Mode == "" {
		query.Mode = report.ModeYTD
	}

	if query.Mode != report.ModeYTD && query.Mode != report.ModeTTM {
		e := errModeInvalid.Error()
		c.JSON(http.StatusBadRequest, TrailingReportResponse{Error: &e})
		return
	}

	e := engine(c)
	current := query.Month
	if current.IsZero() {
		current = e.CurrentMonth()
	}

	data, err := e.TrailingWindow(query.Mode, current)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrailingReportResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TrailingReportResponse{Data: &data})
}

// @Summary		Budget overview
// @Description	Returns the monthly and annual budgets of all categories
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/reports/budget [get]
func GetBudgetOverview(c *gin.Context) {
	data, err := engine(c).BudgetOverview()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Rewards
// @Description	Returns the rewards a source earned in a year, per reward category and for all other spend
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	RewardsResponse
// @Failure		400		{object}	RewardsResponse
// @Failure		404		{object}	RewardsResponse
// @Failure		500		{object}	RewardsResponse
// @Param			source	query		string	true	"ID of the source"
// @Param			year	query		int		false	"The year. Defaults to the current year"
// @Router			/v1/reports/rewards [get]
func GetRewards(c *gin.Context) {
	var query QueryRewards
	if err := c.ShouldBindQuery(&query); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, RewardsResponse{Error: &e})
		return
	}

	if query.SourceID == ez_uuid.Nil {
		e := errSourceNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, RewardsResponse{Error: &e})
		return
	}

	e := engine(c)
	year := query.Year
	if year == 0 {
		year = e.CurrentMonth().Year()
	}

	if year < 1 || year > 9999 {
		s := errYearInvalid.Error()
		c.JSON(http.StatusBadRequest, RewardsResponse{Error: &s})
		return
	}

	source, rewards, err := e.Rewards(query.SourceID.UUID, year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RewardsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, RewardsResponse{Data: &Rewards{
		Source: RewardSource{
			ID:         source.ID,
			Name:       source.Name,
			RewardType: source.RewardType,
			AnnualFee:  source.AnnualFee,
		},
		Year:         year,
		RewardReport: rewards,
	}})
}
