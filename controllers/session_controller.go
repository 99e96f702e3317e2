package controllers

import (
	"net/http"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// SessionController serves the sessions view.
type SessionController struct {
	svc services.SessionService
}

func NewSessionController(svc services.SessionService) *SessionController {
	return &SessionController{svc: svc}
}

// KillCommandsRequest is a selection of session rows.
type KillCommandsRequest struct {
	Sessions []map[string]interface{} `json:"sessions" binding:"required"`
}

// ListSessions returns sessions matching the visibility filters
// @Summary List sessions
// @Description Sessions across all instances unless inst_id is set. Omitted flags default to true.
// @Tags Sessions
// @Produce json
// @Param inst_id query int false "Instance number"
// @Param show_inactive query bool false "Include INACTIVE sessions"
// @Param show_background query bool false "Include background processes"
// @Param show_system query bool false "Include system schemas"
// @Param show_idle query bool false "Include idle waits"
// @Param show_killed query bool false "Include KILLED and SNIPED sessions"
// @Param search query string false "Free-text search"
// @Success 200 {array} readmodel.Session
// @Failure 404 {object} utils.ErrorDetail "No active connection"
// @Failure 500 {object} utils.ErrorDetail
// @Router /sessions [get]
func (sc *SessionController) ListSessions(c *gin.Context) {
	inst, ok := instParam(c)
	if !ok {
		return
	}
	filters := readmodel.AllFiltersOn()
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.ErrorResponse(c, utils.Invalidf("invalid filters: %v", err))
		return
	}
	sessions, err := sc.svc.Sessions(c.Request.Context(), filters, inst)
	respond(c, sessions, err)
}

// Blocking lists blocked sessions and their blockers
// @Summary Blocking sessions
// @Tags Sessions
// @Produce json
// @Param inst_id query int false "Instance number"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /sessions/blocking [get]
func (sc *SessionController) Blocking(c *gin.Context) {
	inst, ok := instParam(c)
	if !ok {
		return
	}
	rows, err := sc.svc.Blocking(c.Request.Context(), inst)
	respond(c, rows, err)
}

// Zombies lists sessions whose server process is gone
// @Summary Zombie sessions
// @Tags Sessions
// @Produce json
// @Param inst_id query int false "Instance number"
// @Success 200 {array} map[string]interface{}
// @Router /sessions/zombies [get]
func (sc *SessionController) Zombies(c *gin.Context) {
	inst, ok := instParam(c)
	if !ok {
		return
	}
	rows, err := sc.svc.Zombies(c.Request.Context(), inst)
	respond(c, rows, err)
}

// LongOps lists unfinished long operations
// @Summary Long operations
// @Tags Sessions
// @Produce json
// @Param inst_id query int false "Instance number"
// @Success 200 {array} map[string]interface{}
// @Router /sessions/longops [get]
func (sc *SessionController) LongOps(c *gin.Context) {
	inst, ok := instParam(c)
	if !ok {
		return
	}
	rows, err := sc.svc.LongOps(c.Request.Context(), inst)
	respond(c, rows, err)
}

// @Summary Long operation totals by operation name
// @Tags Sessions
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /sessions/longops/stats [get]
func (sc *SessionController) LongOpsStats(c *gin.Context) {
	rows, err := sc.svc.LongOpsStats(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Open instances
// @Tags Sessions
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /sessions/instances [get]
func (sc *SessionController) Instances(c *gin.Context) {
	rows, err := sc.svc.Instances(c.Request.Context())
	respond(c, rows, err)
}

// SQLText returns the full text of a cursor
// @Summary SQL text
// @Tags Sessions
// @Produce json
// @Param sql_id path string true "SQL_ID"
// @Success 200 {object} services.SQLText
// @Failure 400 {object} utils.ErrorDetail "sql_id missing"
// @Failure 404 {object} utils.ErrorDetail "SQL not found in cursor cache"
// @Router /sessions/sql/{sql_id} [get]
func (sc *SessionController) SQLText(c *gin.Context) {
	text, err := sc.svc.SQLText(c.Request.Context(), c.Param("sql_id"))
	respond(c, text, err)
}

// Blocker returns one session with its locks, waiters and current SQL
// @Summary Session detail for the blocker tree
// @Tags Sessions
// @Produce json
// @Param sid path int true "SID"
// @Param inst_id query int false "Instance number, default 1"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail "Session not found"
// @Router /sessions/blocker/{sid} [get]
func (sc *SessionController) Blocker(c *gin.Context) {
	sid, ok := intParam(c, "sid")
	if !ok {
		return
	}
	inst, ok := instParam(c)
	if !ok {
		return
	}
	detail, err := sc.svc.Blocker(c.Request.Context(), sid, inst)
	respond(c, detail, err)
}

// ObjectDDL returns DBMS_METADATA DDL for an object
// @Summary Object DDL
// @Tags Sessions
// @Produce json
// @Param type path string true "Object type"
// @Param owner path string true "Owner"
// @Param name path string true "Object name"
// @Success 200 {object} map[string]string
// @Router /sessions/ddl/{type}/{owner}/{name} [get]
func (sc *SessionController) ObjectDDL(c *gin.Context) {
	ddl, err := sc.svc.ObjectDDL(c.Request.Context(), c.Param("type"), c.Param("owner"), c.Param("name"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"ddl": ddl})
}

// Kill terminates a session
// @Summary Kill session
// @Description Issues ALTER SYSTEM KILL SESSION ... IMMEDIATE. On RAC the instance is part of the session id.
// @Tags Sessions
// @Produce json
// @Param sid path int true "SID"
// @Param serial path int true "SERIAL#"
// @Param inst_id query int false "Instance number"
// @Success 200 {object} services.KillResult
// @Failure 404 {object} utils.ErrorDetail
// @Failure 500 {object} utils.ErrorDetail
// @Router /sessions/kill/{sid}/{serial} [post]
func (sc *SessionController) Kill(c *gin.Context) {
	sid, ok := intParam(c, "sid")
	if !ok {
		return
	}
	serial, ok := intParam(c, "serial")
	if !ok {
		return
	}
	inst, ok := instParam(c)
	if !ok {
		return
	}
	logger.Infof("Kill session request: sid=%d serial=%d inst_id=%d", sid, serial, inst)
	res, err := sc.svc.Kill(c.Request.Context(), sid, serial, inst)
	respond(c, res, err)
}

// KillCommands previews kill statements for a selection
// @Summary Kill command preview
// @Description Renders the SQL and OS kill commands for the selected rows without running them.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body KillCommandsRequest true "Selected session rows"
// @Success 200 {array} scriptgen.KillCommand
// @Failure 400 {object} utils.ErrorDetail
// @Router /sessions/kill-commands [post]
func (sc *SessionController) KillCommands(c *gin.Context) {
	var req KillCommandsRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Sessions) == 0 {
		utils.ErrorResponse(c, utils.Invalidf("no sessions selected"))
		return
	}
	cmds := sc.svc.KillCommands(req.Sessions)
	logger.Debugf("Rendered %d kill commands", len(cmds))
	utils.JSONResponse(c, http.StatusOK, cmds)
}

// RegisterSessionRoutes registers the sessions endpoints.
func RegisterSessionRoutes(rg *gin.RouterGroup, sc *SessionController) {
	s := rg.Group("/sessions")
	{
		s.GET("", sc.ListSessions)
		s.GET("/blocking", sc.Blocking)
		s.GET("/zombies", sc.Zombies)
		s.GET("/longops", sc.LongOps)
		s.GET("/longops/stats", sc.LongOpsStats)
		s.GET("/instances", sc.Instances)
		s.GET("/sql/:sql_id", sc.SQLText)
		s.GET("/blocker/:sid", sc.Blocker)
		s.GET("/ddl/:type/:owner/:name", sc.ObjectDDL)
		s.POST("/kill/:sid/:serial", sc.Kill)
		s.POST("/kill-commands", sc.KillCommands)
	}
}
