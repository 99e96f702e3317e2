package controllers

import (
	"oraconsoleapi/services"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the summary widgets and the health check.
type DashboardController struct {
	svc services.DashboardService
}

func NewDashboardController(svc services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

// @Summary Dashboard metrics
// @Description Session counts, SGA components, invalid objects, disabled triggers and open cursors.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardMetrics
// @Failure 404 {object} utils.ErrorDetail "No active connection"
// @Failure 500 {object} utils.ErrorDetail
// @Router /dashboard/metrics [get]
func (dc *DashboardController) Metrics(c *gin.Context) {
	m, err := dc.svc.Metrics(c.Request.Context())
	respond(c, m, err)
}

// @Summary Tablespace summary ordered by used percentage
// @Tags Dashboard
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /dashboard/tablespaces [get]
func (dc *DashboardController) Tablespaces(c *gin.Context) {
	rows, err := dc.svc.Tablespaces(c.Request.Context())
	respond(c, rows, err)
}

// Healthcheck evaluates parameters, profiles and auditing
// @Summary Configuration health check
// @Tags Dashboard
// @Produce json
// @Success 200 {array} services.Finding
// @Failure 404 {object} utils.ErrorDetail
// @Router /healthcheck [get]
func (dc *DashboardController) Healthcheck(c *gin.Context) {
	findings, err := dc.svc.Healthcheck(c.Request.Context())
	respond(c, findings, err)
}

// RegisterDashboardRoutes registers the dashboard and health check endpoints.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dc *DashboardController) {
	d := rg.Group("/dashboard")
	{
		d.GET("/metrics", dc.Metrics)
		d.GET("/tablespaces", dc.Tablespaces)
	}
	rg.GET("/healthcheck", dc.Healthcheck)
}
