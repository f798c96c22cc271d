package healthz

import (
	"net/http"

	"github.com/envelope-zero/tracker/internal/httputil"
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Error *string `json:"error" example:"The database cannot be accessed"` // The error, if any occurred
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, Response{Error: &e})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, Response{Error: &e})
		return
	}

	c.JSON(http.StatusOK, Response{})
}
