package controllers

import (
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/scriptgen"
	"oraconsoleapi/services"

	"github.com/gin-gonic/gin"
)

// BackupController serves RMAN history and the script generators.
type BackupController struct {
	svc services.BackupService
}

func NewBackupController(svc services.BackupService) *BackupController {
	return &BackupController{svc: svc}
}

// @Summary RMAN jobs
// @Tags Backup
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /backups/jobs [get]
func (bc *BackupController) Jobs(c *gin.Context) {
	rows, err := bc.svc.Jobs(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Backup totals for the last 30 days
// @Tags Backup
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /backups/summary [get]
func (bc *BackupController) Summary(c *gin.Context) {
	rows, err := bc.svc.Summary(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Backup sets of one RMAN session
// @Tags Backup
// @Produce json
// @Param session_key path int true "RMAN session key"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorDetail
// @Router /backups/sets/{session_key} [get]
func (bc *BackupController) Sets(c *gin.Context) {
	key, ok := intParam(c, "session_key")
	if !ok {
		return
	}
	rows, err := bc.svc.Sets(c.Request.Context(), key)
	respond(c, rows, err)
}

// @Summary Datafiles in a backup set
// @Tags Backup
// @Produce json
// @Param bs_key path int true "Backup set key"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorDetail
// @Router /backups/files/{bs_key} [get]
func (bc *BackupController) Files(c *gin.Context) {
	key, ok := intParam(c, "bs_key")
	if !ok {
		return
	}
	rows, err := bc.svc.Files(c.Request.Context(), key)
	respond(c, rows, err)
}

// @Summary NLS settings for the export NLS_LANG hint
// @Tags Backup
// @Produce json
// @Success 200 {object} services.NLSSettings
// @Router /backups/nls [get]
func (bc *BackupController) NLS(c *gin.Context) {
	nls, err := bc.svc.NLS(c.Request.Context())
	respond(c, nls, err)
}

// @Summary Schemas excluded from exports and statistics
// @Description Configured system schemas plus Oracle-maintained users of the active database.
// @Tags Backup
// @Produce json
// @Success 200 {array} string
// @Router /system/excluded-schemas [get]
func (bc *BackupController) ExcludedSchemas(c *gin.Context) {
	schemas, err := bc.svc.ExcludedSchemas(c.Request.Context())
	respond(c, schemas, err)
}

// Rman renders an RMAN RUN block
// @Summary RMAN script
// @Tags Scripts
// @Accept json
// @Produce json
// @Param request body scriptgen.RmanOptions true "Backup or restore options"
// @Success 200 {object} services.Script
// @Failure 400 {object} utils.ErrorDetail
// @Router /scripts/rman [post]
func (bc *BackupController) Rman(c *gin.Context) {
	var opts scriptgen.RmanOptions
	if !bindJSON(c, &opts) {
		return
	}
	script, err := bc.svc.Rman(opts)
	respond(c, script, err)
}

// Expdp renders a Data Pump export command or parfile
// @Summary Data Pump export script
// @Tags Scripts
// @Accept json
// @Produce json
// @Param request body scriptgen.ExpdpOptions true "Export options"
// @Success 200 {object} services.Script
// @Failure 400 {object} utils.ErrorDetail
// @Router /scripts/expdp [post]
func (bc *BackupController) Expdp(c *gin.Context) {
	var opts scriptgen.ExpdpOptions
	if !bindJSON(c, &opts) {
		return
	}
	logger.Debugf("Rendering expdp script mode=%s directory=%s", opts.Mode, opts.Directory)
	script, err := bc.svc.Expdp(c.Request.Context(), opts)
	respond(c, script, err)
}

// TNS renders a connect descriptor
// @Summary TNS descriptor
// @Tags Scripts
// @Accept json
// @Produce json
// @Param request body scriptgen.TNSOptions true "Host, port and service"
// @Success 200 {object} services.Script
// @Failure 400 {object} utils.ErrorDetail
// @Router /scripts/tns [post]
func (bc *BackupController) TNS(c *gin.Context) {
	var opts scriptgen.TNSOptions
	if !bindJSON(c, &opts) {
		return
	}
	script, err := bc.svc.TNS(opts)
	respond(c, script, err)
}

// RegisterBackupRoutes registers backup history and script generator endpoints.
func RegisterBackupRoutes(rg *gin.RouterGroup, bc *BackupController) {
	backups := rg.Group("/backups")
	{
		backups.GET("/jobs", bc.Jobs)
		backups.GET("/summary", bc.Summary)
		backups.GET("/sets/:session_key", bc.Sets)
		backups.GET("/files/:bs_key", bc.Files)
		backups.GET("/nls", bc.NLS)
	}
	scripts := rg.Group("/scripts")
	{
		scripts.POST("/rman", bc.Rman)
		scripts.POST("/expdp", bc.Expdp)
		scripts.POST("/tns", bc.TNS)
	}
	rg.GET("/system/excluded-schemas", bc.ExcludedSchemas)
}
