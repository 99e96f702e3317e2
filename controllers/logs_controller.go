package controllers

import (
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// LogsController serves the alert log, outstanding alerts and parameters.
type LogsController struct {
	svc services.LogsService
}

func NewLogsController(svc services.LogsService) *LogsController {
	return &LogsController{svc: svc}
}

// Alert returns the newest alert log lines
// @Summary Alert log
// @Tags Logs
// @Produce json
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /logs/alert [get]
func (lc *LogsController) Alert(c *gin.Context) {
	limit := utils.IntOrDefault(c.Query("limit"), services.DefaultAlertLimit)
	rows, err := lc.svc.Alert(c.Request.Context(), limit)
	respond(c, rows, err)
}

// @Summary Outstanding server alerts
// @Tags Logs
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /logs/outstanding [get]
func (lc *LogsController) Outstanding(c *gin.Context) {
	rows, err := lc.svc.Outstanding(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Initialization parameters
// @Tags Configuration
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /configuration/parameters [get]
func (lc *LogsController) Parameters(c *gin.Context) {
	rows, err := lc.svc.Parameters(c.Request.Context())
	respond(c, rows, err)
}

// RegisterLogsRoutes registers the log and configuration endpoints.
func RegisterLogsRoutes(rg *gin.RouterGroup, lc *LogsController) {
	logs := rg.Group("/logs")
	{
		logs.GET("/alert", lc.Alert)
		logs.GET("/outstanding", lc.Outstanding)
	}
	rg.GET("/configuration/parameters", lc.Parameters)
}
