package v1

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/report"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/gin-gonic/gin"
)

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-03"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// engine returns the report engine for the request.
func engine(c *gin.Context) *report.Engine {
	var options []report.Option
	if c.GetBool(string(models.ContextSnapshotsDisabled)) {
		options = append(options, report.WithoutSnapshots())
	}

	return report.NewEngine(models.NewStore(models.DB), options...)
}
