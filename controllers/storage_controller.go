package controllers

import (
	"net/http"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// StorageController serves tablespaces, datafiles and the extent map.
type StorageController struct {
	svc services.StorageService
}

func NewStorageController(svc services.StorageService) *StorageController {
	return &StorageController{svc: svc}
}

// ReorgRequest asks for the reorganization SQL of one map block.
type ReorgRequest struct {
	Tablespace string                `json:"tablespace"`
	Block      readmodel.ExtentBlock `json:"block"`
}

// @Summary Tablespace usage
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorDetail
// @Router /storage/tablespaces [get]
func (sc *StorageController) Tablespaces(c *gin.Context) {
	rows, err := sc.svc.Tablespaces(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Datafiles and tempfiles
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/datafiles [get]
func (sc *StorageController) Datafiles(c *gin.Context) {
	rows, err := sc.svc.Datafiles(c.Request.Context())
	respond(c, rows, err)
}

// TablespaceMap returns used and free extents with summary metrics
// @Summary Tablespace extent map
// @Tags Storage
// @Produce json
// @Param ts_name query string true "Tablespace name"
// @Param file_id query int false "Restrict to one datafile"
// @Success 200 {object} services.TablespaceMap
// @Failure 400 {object} utils.ErrorDetail
// @Router /storage/tablespace-map [get]
func (sc *StorageController) TablespaceMap(c *gin.Context) {
	ts := c.Query("ts_name")
	if ts == "" {
		utils.ErrorResponse(c, utils.Invalidf("ts_name is required"))
		return
	}
	fileID, err := utils.OptionalInt("file_id", c.Query("file_id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	id := 0
	if fileID != nil {
		id = *fileID
	}
	m, err := sc.svc.TablespaceMap(c.Request.Context(), ts, id)
	respond(c, m, err)
}

// @Summary Largest segments of a tablespace
// @Tags Storage
// @Produce json
// @Param ts path string true "Tablespace name"
// @Success 200 {array} map[string]interface{}
// @Router /storage/segments/{ts} [get]
func (sc *StorageController) TopSegments(c *gin.Context) {
	rows, err := sc.svc.TopSegments(c.Request.Context(), c.Param("ts"))
	respond(c, rows, err)
}

// @Summary Control files
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/control [get]
func (sc *StorageController) ControlFiles(c *gin.Context) {
	rows, err := sc.svc.ControlFiles(c.Request.Context())
	respond(c, rows, err)
}

// @Summary SYSAUX occupants
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/sysaux [get]
func (sc *StorageController) Sysaux(c *gin.Context) {
	rows, err := sc.svc.SysauxOccupants(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Undo statistics
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/undo [get]
func (sc *StorageController) Undo(c *gin.Context) {
	rows, err := sc.svc.UndoStats(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Temp usage by session
// @Tags Storage
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /storage/temp [get]
func (sc *StorageController) Temp(c *gin.Context) {
	rows, err := sc.svc.TempUsage(c.Request.Context())
	respond(c, rows, err)
}

// @Summary Checkpoint progress
// @Tags Storage
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /storage/checkpoint [get]
func (sc *StorageController) Checkpoint(c *gin.Context) {
	row, err := sc.svc.Checkpoint(c.Request.Context())
	respond(c, row, err)
}

// Charts returns the storage overview series
// @Summary Storage charts
// @Description FRA usage, datafile totals, SGA, PGA, undo and temp series. Sections the account cannot read are empty.
// @Tags Storage
// @Produce json
// @Success 200 {object} services.StorageCharts
// @Failure 404 {object} utils.ErrorDetail "No active connection"
// @Router /storage/charts [get]
func (sc *StorageController) Charts(c *gin.Context) {
	charts, err := sc.svc.Charts(c.Request.Context())
	respond(c, charts, err)
}

// @Summary Force a checkpoint
// @Tags Storage
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} utils.ErrorDetail
// @Router /storage/checkpoint/force [post]
func (sc *StorageController) ForceCheckpoint(c *gin.Context) {
	respondStatus(c, sc.svc.ForceCheckpoint(c.Request.Context()))
}

// @Summary Resize a datafile
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body models.DatafileResizeRequest true "File and new size"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /storage/files/resize [post]
func (sc *StorageController) ResizeDatafile(c *gin.Context) {
	var req models.DatafileResizeRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, sc.svc.ResizeDatafile(c.Request.Context(), req))
}

// @Summary Add a datafile to a tablespace
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body models.DatafileAddRequest true "Tablespace, path and size"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} utils.ErrorDetail
// @Router /storage/files/add [post]
func (sc *StorageController) AddDatafile(c *gin.Context) {
	var req models.DatafileAddRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, sc.svc.AddDatafile(c.Request.Context(), req))
}

// ReorgSQL previews the MOVE or SHRINK statements for a used block
// @Summary Reorganization SQL preview
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body ReorgRequest true "Extent block"
// @Success 200 {object} services.Script
// @Failure 400 {object} utils.ErrorDetail
// @Router /storage/reorg-sql [post]
func (sc *StorageController) ReorgSQL(c *gin.Context) {
	var req ReorgRequest
	if !bindJSON(c, &req) {
		return
	}
	sql, err := sc.svc.ReorgSQL(req.Block, req.Tablespace)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, services.Script{Script: sql})
}

// RegisterStorageRoutes registers the storage endpoints.
func RegisterStorageRoutes(rg *gin.RouterGroup, sc *StorageController) {
	st := rg.Group("/storage")
	{
		st.GET("/tablespaces", sc.Tablespaces)
		st.GET("/datafiles", sc.Datafiles)
		st.GET("/files", sc.Datafiles)
		st.GET("/tablespace-map", sc.TablespaceMap)
		st.GET("/segments/:ts", sc.TopSegments)
		st.GET("/control", sc.ControlFiles)
		st.GET("/sysaux", sc.Sysaux)
		st.GET("/undo", sc.Undo)
		st.GET("/temp", sc.Temp)
		st.GET("/checkpoint", sc.Checkpoint)
		st.GET("/charts", sc.Charts)
		st.POST("/checkpoint/force", sc.ForceCheckpoint)
		st.POST("/files/resize", sc.ResizeDatafile)
		st.POST("/files/add", sc.AddDatafile)
		st.POST("/reorg-sql", sc.ReorgSQL)
	}
}
