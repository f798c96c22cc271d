package v1

import (
	"fmt"
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	ez_uuid "github.com/envelope-zero/tracker/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionLinks struct {
	Category string `json:"category,omitempty" example:"https://example.com/api/v1/transactions?category=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions in the same category
	Source   string `json:"source,omitempty" example:"https://example.com/api/v1/transactions?source=8e16b456-a719-48ce-9fec-e115cfa7cbcc"`     // Transactions of the same source
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	Date                  time.Time        `json:"date" example:"2024-03-10T00:00:00Z"`
	Description           string           `json:"description" example:"Farmers market"`
	Amount                decimal.Decimal  `json:"amount" example:"-23.5"`                                      // Negative for spend, positive for income and refunds
	CategoryID            *uuid.UUID       `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`   // ID of the category, if any
	CategoryName          *string          `json:"categoryName" example:"Groceries"`                            // Name of the category, if any
	ReportingCategoryName *string          `json:"reportingCategoryName" example:"Food"`                        // Name of the category the category reports into, if any
	SourceID              *uuid.UUID       `json:"sourceId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`     // ID of the payment source, if any
	SourceName            *string          `json:"sourceName" example:"Travel Card"`                            // Name of the payment source, if any
	Links                 TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Description:  model.Description,
		Amount:       model.Amount,
		CategoryID:   model.CategoryID,
		SourceID:     model.SourceID,
	}

	if model.Category != nil {
		t.CategoryName = &model.Category.Name
		t.Links.Category = fmt.Sprintf("%s/v1/transactions?category=%s", url, model.Category.ID)

		if model.Category.ReportingCategory != nil {
			t.ReportingCategoryName = &model.Category.ReportingCategory.Name
		}
	}

	if model.Source != nil {
		t.SourceName = &model.Source.Name
		t.Links.Source = fmt.Sprintf("%s/v1/transactions?source=%s", url, model.Source.ID)
	}

	return t
}

type TransactionQueryFilter struct {
	CategoryID   ez_uuid.UUID `form:"category"`                                        // ID of the category
	CategoryName string       `form:"categoryName"`                                    // Name of the category, case-insensitive
	SourceID     ez_uuid.UUID `form:"source"`                                          // ID of the source
	FromDate     time.Time    `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // At and after this date
	UntilDate    time.Time    `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Before and at this date
	Description  string       `form:"description"`                                     // Glob pattern for the description, e.g. *coffee*
	Offset       uint         `form:"offset" filterField:"false"`                      // The offset of the first Transaction returned
	Limit        int          `form:"limit" filterField:"false"`                       // Maximum number of transactions to return
}

// model returns the store filter for the query
func (f TransactionQueryFilter) model() models.TransactionFilter {
	filter := models.TransactionFilter{
		CategoryID:   f.CategoryID.Ptr(),
		CategoryName: f.CategoryName,
		SourceID:     f.SourceID.Ptr(),
		Description:  f.Description,
	}

	if !f.FromDate.IsZero() {
		filter.From = time.Date(f.FromDate.Year(), f.FromDate.Month(), f.FromDate.Day(), 0, 0, 0, 0, time.UTC)
	}

	if !f.UntilDate.IsZero() {
		filter.Until = time.Date(f.UntilDate.Year(), f.UntilDate.Month(), f.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC)
	}

	return filter
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}
