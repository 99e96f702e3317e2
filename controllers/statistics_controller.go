package controllers

import (
	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// StatisticsController serves optimizer statistics maintenance.
type StatisticsController struct {
	svc services.StatisticsService
}

func NewStatisticsController(svc services.StatisticsService) *StatisticsController {
	return &StatisticsController{svc: svc}
}

func bindStatsFilter(c *gin.Context) (services.StatsFilter, bool) {
	var f services.StatsFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		utils.ErrorResponse(c, utils.Invalidf("invalid filter: %v", err))
		return f, false
	}
	return f, true
}

// @Summary Tables with stale or missing statistics
// @Tags Statistics
// @Produce json
// @Param owner query string false "Owner"
// @Param table_name query string false "Table name pattern"
// @Param exclude_system query bool false "Hide system schemas"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /statistics/stale [get]
func (sc *StatisticsController) Stale(c *gin.Context) {
	f, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	rows, err := sc.svc.Stale(c.Request.Context(), f)
	respond(c, rows, err)
}

// @Summary DML activity since the last gather
// @Tags Statistics
// @Produce json
// @Param owner query string false "Owner"
// @Param table_name query string false "Table name pattern"
// @Param exclude_system query bool false "Hide system schemas"
// @Success 200 {array} map[string]interface{}
// @Router /statistics/dml [get]
func (sc *StatisticsController) DML(c *gin.Context) {
	f, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	rows, err := sc.svc.DMLChanges(c.Request.Context(), f)
	respond(c, rows, err)
}

// @Summary Schemas owning tables
// @Tags Statistics
// @Produce json
// @Param exclude_system query bool false "Hide system schemas"
// @Success 200 {array} string
// @Router /statistics/schemas [get]
func (sc *StatisticsController) Schemas(c *gin.Context) {
	names, err := sc.svc.Schemas(c.Request.Context(), utils.BoolOrDefault(c.Query("exclude_system"), false))
	respond(c, names, err)
}

// @Summary Tables of a schema
// @Tags Statistics
// @Produce json
// @Param owner query string true "Owner"
// @Success 200 {array} string
// @Failure 400 {object} utils.ErrorDetail
// @Router /statistics/tables [get]
func (sc *StatisticsController) Tables(c *gin.Context) {
	names, err := sc.svc.Tables(c.Request.Context(), c.Query("owner"))
	respond(c, names, err)
}

// Gather runs DBMS_STATS with bound parameters
// @Summary Gather statistics
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body scriptgen.GatherStatsOptions true "Level, target and options"
// @Success 200 {object} services.ActionResult
// @Failure 400 {object} utils.ErrorDetail
// @Failure 500 {object} utils.ErrorDetail
// @Router /statistics/gather [post]
func (sc *StatisticsController) Gather(c *gin.Context) {
	var opts scriptgen.GatherStatsOptions
	if !bindJSON(c, &opts) {
		return
	}
	logger.Infof("Gather statistics request: level=%s owner=%s table=%s", opts.Level, opts.Owner, opts.Table)
	res, err := sc.svc.Gather(c.Request.Context(), opts)
	respond(c, res, err)
}

// Preview renders the DBMS_STATS call without running it
// @Summary Preview a statistics gather
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body scriptgen.GatherStatsOptions true "Level, target and options"
// @Success 200 {object} scriptgen.GatherStatsCall
// @Failure 400 {object} utils.ErrorDetail
// @Router /statistics/gather/preview [post]
func (sc *StatisticsController) Preview(c *gin.Context) {
	var opts scriptgen.GatherStatsOptions
	if !bindJSON(c, &opts) {
		return
	}
	call, err := sc.svc.PreviewGather(opts)
	respond(c, call, err)
}

// @Summary Lock or unlock table statistics
// @Tags Statistics
// @Accept json
// @Produce json
// @Param request body models.LockStatsRequest true "Owner, table and action"
// @Success 200 {object} services.ActionResult
// @Failure 400 {object} utils.ErrorDetail
// @Router /statistics/lock [post]
func (sc *StatisticsController) Lock(c *gin.Context) {
	var req models.LockStatsRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := sc.svc.Lock(c.Request.Context(), req)
	respond(c, res, err)
}

// @Summary Flush database monitoring info
// @Tags Statistics
// @Produce json
// @Success 200 {object} services.ActionResult
// @Router /statistics/flush [post]
func (sc *StatisticsController) Flush(c *gin.Context) {
	res, err := sc.svc.Flush(c.Request.Context())
	respond(c, res, err)
}

// RegisterStatisticsRoutes registers the statistics endpoints.
func RegisterStatisticsRoutes(rg *gin.RouterGroup, sc *StatisticsController) {
	st := rg.Group("/statistics")
	{
		st.GET("/stale", sc.Stale)
		st.GET("/dml", sc.DML)
		st.GET("/schemas", sc.Schemas)
		st.GET("/tables", sc.Tables)
		st.POST("/gather", sc.Gather)
		st.POST("/gather/preview", sc.Preview)
		st.POST("/lock", sc.Lock)
		st.POST("/flush", sc.Flush)
	}
}
