package controllers

import (
	"oraconsoleapi/models"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// RedoController serves online redo, archiving and log switch actions.
type RedoController struct {
	svc services.RedoService
}

func NewRedoController(svc services.RedoService) *RedoController {
	return &RedoController{svc: svc}
}

// @Summary Redo log groups
// @Tags Redo
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /storage/redo [get]
func (rc *RedoController) Groups(c *gin.Context) {
	rows, err := rc.svc.Groups(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Redo log members
// @Tags Redo
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/redo/members [get]
func (rc *RedoController) Members(c *gin.Context) {
	rows, err := rc.svc.Members(c.Request.Context())
	respond(c, rows, err)
}

// History returns log switches per hour for the last days
// @Summary Log switch heat map
// @Tags Redo
// @Produce json
// @Param days query int false "Days of history" default(7)
// @Param inst_id query int false "Redo thread"
// @Success 200 {array} map[string]interface{}
// @Router /storage/redo/history [get]
func (rc *RedoController) History(c *gin.Context) {
	thread, ok := instParam(c)
	if !ok {
		return
	}
	days := utils.IntOrDefault(c.Query("days"), services.DefaultHistoryDays)
	rows, err := rc.svc.History(c.Request.Context(), days, thread)
	respond(c, rows, err)
}

// @Summary Redo threads
// @Tags Redo
// @Produce json
// @Success 200 {array} int
// @Router /storage/redo/threads [get]
func (rc *RedoController) Threads(c *gin.Context) {
	threads, err := rc.svc.Threads(c.Request.Context())
	respond(c, threads, err)
}

// @Summary Standby redo logs
// @Tags Redo
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/redo/standby [get]
func (rc *RedoController) Standby(c *gin.Context) {
	rows, err := rc.svc.StandbyLogs(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Recent archived logs
// @Tags Redo
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/redo/archives [get]
func (rc *RedoController) Archives(c *gin.Context) {
	rows, err := rc.svc.ArchivedLogs(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Log buffer statistics
// @Tags Redo
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /storage/redo/logbuffer [get]
func (rc *RedoController) LogBuffer(c *gin.Context) {
	stats, err := rc.svc.LogBuffer(c.Request.Context())
	respond(c, stats, err)
}

// @Summary Archiving configuration
// @Tags Redo
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /storage/redo/management [get]
func (rc *RedoController) Management(c *gin.Context) {
	info, err := rc.svc.Management(c.Request.Context())
	respond(c, info, err)
}

// @Summary Add a redo log group
// @Tags Redo
// @Accept json
// @Produce json
// @Param request body models.RedoGroupAddRequest true "Thread, size and member"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /storage/redo/group/add [post]
func (rc *RedoController) AddGroup(c *gin.Context) {
	var req models.RedoGroupAddRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, rc.svc.AddGroup(c.Request.Context(), req))
}

// @Summary Drop a redo log group
// @Tags Redo
// @Accept json
// @Produce json
// @Param request body models.RedoGroupDropRequest true "Group"
// @Success 200 {object} StatusResponse
// @Router /storage/redo/group/drop [post]
func (rc *RedoController) DropGroup(c *gin.Context) {
	var req models.RedoGroupDropRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, rc.svc.DropGroup(c.Request.Context(), req))
}

// @Summary Add a member to a redo group
// @Tags Redo
// @Accept json
// @Produce json
// @Param request body models.RedoMemberAddRequest true "Group and member path"
// @Success 200 {object} StatusResponse
// @Router /storage/redo/member/add [post]
func (rc *RedoController) AddMember(c *gin.Context) {
	var req models.RedoMemberAddRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, rc.svc.AddMember(c.Request.Context(), req))
}

// @Summary Drop a redo member
// @Tags Redo
// @Accept json
// @Produce json
// @Param request body models.RedoMemberDropRequest true "Member path"
// @Success 200 {object} StatusResponse
// @Router /storage/redo/member/drop [post]
func (rc *RedoController) DropMember(c *gin.Context) {
	var req models.RedoMemberDropRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, rc.svc.DropMember(c.Request.Context(), req))
}

// @Summary Switch the current log
// @Description ARCHIVE LOG CURRENT, falling back to SWITCH LOGFILE.
// @Tags Redo
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /storage/redo/switch [post]
func (rc *RedoController) Switch(c *gin.Context) {
	respondStatus(c, rc.svc.Switch(c.Request.Context()))
}

// RegisterRedoRoutes registers the redo endpoints under /storage/redo.
func RegisterRedoRoutes(rg *gin.RouterGroup, rc *RedoController) {
	redo := rg.Group("/storage/redo")
	{
		redo.GET("", rc.Groups)
		redo.GET("/members", rc.Members)
		redo.GET("/history", rc.History)
		redo.GET("/threads", rc.Threads)
		redo.GET("/standby", rc.Standby)
		redo.GET("/archives", rc.Archives)
		redo.GET("/logbuffer", rc.LogBuffer)
		redo.GET("/management", rc.Management)
		redo.POST("/group/add", rc.AddGroup)
		redo.POST("/group/drop", rc.DropGroup)
		redo.POST("/member/add", rc.AddMember)
		redo.POST("/member/drop", rc.DropMember)
		redo.POST("/switch", rc.Switch)
	}
}
