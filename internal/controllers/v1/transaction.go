package v1

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, ordered by date
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			category		query	string	false	"Filter by category ID"
// @Param			categoryName	query	string	false	"Filter by category name"
// @Param			source			query	string	false	"Filter by source ID"
// @Param			fromDate		query	string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate		query	string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Param			description		query	string	false	"Glob pattern the description must match, e.g. *coffee*"
// @Param			offset			query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	transactions, err := models.NewStore(models.DB).Transactions(filter.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	page := paginate(transactions, filter.Offset, limit)

	data := make([]Transaction, 0, len(page))
	for _, transaction := range page {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(transactions)),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// paginate returns the page of the transactions. A negative limit returns
// all transactions after the offset.
func paginate(transactions []models.Transaction, offset uint, limit int) []models.Transaction {
	if int(offset) >= len(transactions) {
		return []models.Transaction{}
	}

	page := transactions[offset:]
	if limit >= 0 && limit < len(page) {
		page = page[:limit]
	}

	return page
}
