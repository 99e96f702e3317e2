package controllers

import (
	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// JobsController handles DBMS_JOB endpoints.
type JobsController struct {
	svc services.JobsService
}

func NewJobsController(svc services.JobsService) *JobsController {
	return &JobsController{svc: svc}
}

// Legacy lists DBA_JOBS entries
// @Summary Legacy jobs
// @Tags Jobs
// @Produce json
// @Success 200 {array} readmodel.LegacyJob
// @Failure 404 {object} utils.ErrorDetail
// @Router /jobs/legacy [get]
func (jc *JobsController) Legacy(c *gin.Context) {
	jobs, err := jc.svc.Legacy(c.Request.Context())
	respond(c, jobs, err)
}

// @Summary Job counts
// @Tags Jobs
// @Produce json
// @Success 200 {object} readmodel.JobCounts
// @Router /jobs/summary [get]
func (jc *JobsController) Summary(c *gin.Context) {
	counts, err := jc.svc.Summary(c.Request.Context())
	respond(c, counts, err)
}

// @Summary Running jobs
// @Tags Jobs
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /jobs/running [get]
func (jc *JobsController) Running(c *gin.Context) {
	rows, err := jc.svc.Running(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Run a job now
// @Tags Jobs
// @Produce json
// @Param id path int true "Job number"
// @Success 200 {object} StatusResponse
// @Router /jobs/run/{id} [post]
func (jc *JobsController) Run(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	logger.Infof("Run job request: job=%d", id)
	respondStatus(c, jc.svc.Run(c.Request.Context(), id))
}

// @Summary Mark a job broken or fixed
// @Tags Jobs
// @Produce json
// @Param id path int true "Job number"
// @Param broken query bool false "Broken flag" default(true)
// @Success 200 {object} StatusResponse
// @Router /jobs/broken/{id} [post]
func (jc *JobsController) Broken(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	broken := utils.BoolOrDefault(c.Query("broken"), true)
	respondStatus(c, jc.svc.Broken(c.Request.Context(), id, broken))
}

// @Summary Remove a job
// @Tags Jobs
// @Produce json
// @Param id path int true "Job number"
// @Success 200 {object} StatusResponse
// @Router /jobs/remove/{id} [post]
// @Router /jobs/remove/{id} [delete]
func (jc *JobsController) Remove(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	logger.Infof("Remove job request: job=%d", id)
	respondStatus(c, jc.svc.Remove(c.Request.Context(), id))
}

// @Summary Submit a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body models.JobSubmitRequest true "PL/SQL, first run and interval"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /jobs/submit [post]
func (jc *JobsController) Submit(c *gin.Context) {
	var req models.JobSubmitRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, jc.svc.Submit(c.Request.Context(), req))
}

// RegisterJobsRoutes registers the DBMS_JOB endpoints.
func RegisterJobsRoutes(rg *gin.RouterGroup, jc *JobsController) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jc.Legacy)
		jobs.GET("/legacy", jc.Legacy)
		jobs.GET("/summary", jc.Summary)
		jobs.GET("/running", jc.Running)
		jobs.POST("/run/:id", jc.Run)
		jobs.POST("/broken/:id", jc.Broken)
		jobs.POST("/remove/:id", jc.Remove)
		jobs.DELETE("/remove/:id", jc.Remove)
		jobs.POST("/submit", jc.Submit)
	}
}
