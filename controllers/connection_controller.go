package controllers

import (
	"net/http"

	"oraconsoleapi/models"
	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/services"
	"oraconsoleapi/services/oracle"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// ConnectionController manages saved connection profiles.
type ConnectionController struct {
	svc services.ConnectionService
}

func NewConnectionController(svc services.ConnectionService) *ConnectionController {
	return &ConnectionController{svc: svc}
}

// DiscoveryResponse is returned by activate and test.
type DiscoveryResponse struct {
	Message   string            `json:"message" example:"Connection activated"`
	Discovery *oracle.Discovery `json:"discovery"`
}

// List returns every profile with passwords masked
// @Summary List connections
// @Tags Connections
// @Produce json
// @Success 200 {array} models.DatabaseConnection
// @Failure 500 {object} utils.ErrorDetail
// @Router /connections [get]
func (cc *ConnectionController) List(c *gin.Context) {
	conns, err := cc.svc.List(c.Request.Context())
	respond(c, conns, err)
}

// @Summary Get connection
// @Tags Connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} models.DatabaseConnection
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /connections/{id} [get]
func (cc *ConnectionController) Get(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	conn, err := cc.svc.Get(c.Request.Context(), id)
	respond(c, conn, err)
}

// @Summary Active connection
// @Tags Connections
// @Produce json
// @Success 200 {object} models.DatabaseConnection
// @Failure 404 {object} utils.ErrorDetail "No active connection"
// @Router /connections/active [get]
func (cc *ConnectionController) Active(c *gin.Context) {
	conn, err := cc.svc.GetActive(c.Request.Context())
	respond(c, conn, err)
}

// @Summary Lifecycle state of the active connection
// @Tags Connections
// @Produce json
// @Success 200 {object} services.ConnectionStatus
// @Router /connections/status [get]
func (cc *ConnectionController) Status(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, cc.svc.Status())
}

// Create stores a new profile
// @Summary Create connection
// @Description The password is sealed before it is stored. BASIC profiles get a generated connect descriptor.
// @Tags Connections
// @Accept json
// @Produce json
// @Param connection body models.ConnectionRequest true "Connection profile"
// @Success 200 {object} models.DatabaseConnection
// @Failure 400 {object} utils.ErrorDetail
// @Failure 500 {object} utils.ErrorDetail
// @Router /connections [post]
func (cc *ConnectionController) Create(c *gin.Context) {
	var req models.ConnectionRequest
	if !bindJSON(c, &req) {
		return
	}
	logger.Infof("Creating connection: %s", req.Name)
	conn, err := cc.svc.Create(c.Request.Context(), req)
	respond(c, conn, err)
}

// Update replaces a profile; the masked password placeholder keeps the stored one
// @Summary Update connection
// @Tags Connections
// @Accept json
// @Produce json
// @Param id path int true "Connection ID"
// @Param connection body models.ConnectionRequest true "Connection profile"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /connections/{id} [put]
func (cc *ConnectionController) Update(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	var req models.ConnectionRequest
	if !bindJSON(c, &req) {
		return
	}
	logger.Infof("Updating connection %d: %s", id, req.Name)
	respond(c, MessageResponse{Message: "Connection updated"}, cc.svc.Update(c.Request.Context(), id, req))
}

// @Summary Delete connection
// @Tags Connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} utils.ErrorDetail
// @Router /connections/{id} [delete]
func (cc *ConnectionController) Delete(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	respond(c, MessageResponse{Message: "Connection deleted"}, cc.svc.Delete(c.Request.Context(), id))
}

// Activate connects, runs discovery and makes the profile the active one
// @Summary Activate connection
// @Tags Connections
// @Produce json
// @Param id path int true "Connection ID"
// @Success 200 {object} DiscoveryResponse
// @Failure 400 {object} utils.ErrorDetail "Connectivity/Discovery failed"
// @Failure 404 {object} utils.ErrorDetail "Connection not found"
// @Router /connections/{id}/activate [post]
func (cc *ConnectionController) Activate(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	d, err := cc.svc.Activate(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, DiscoveryResponse{Message: "Connection activated", Discovery: d})
}

// Test checks an unsaved profile without storing it
// @Summary Test connection
// @Tags Connections
// @Accept json
// @Produce json
// @Param connection body models.ConnectionRequest true "Connection profile"
// @Success 200 {object} DiscoveryResponse
// @Failure 400 {object} utils.ErrorDetail "Connectivity/Discovery failed"
// @Router /connections/test [post]
func (cc *ConnectionController) Test(c *gin.Context) {
	var req models.ConnectionRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := cc.svc.Test(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, DiscoveryResponse{Message: "Connection successful", Discovery: d})
}

// RegisterConnectionRoutes registers the connection profile endpoints.
func RegisterConnectionRoutes(rg *gin.RouterGroup, cc *ConnectionController) {
	conns := rg.Group("/connections")
	{
		conns.GET("", cc.List)
		conns.POST("", cc.Create)
		conns.GET("/active", cc.Active)
		conns.GET("/status", cc.Status)
		conns.POST("/test", cc.Test)
		conns.GET("/:id", cc.Get)
		conns.PUT("/:id", cc.Update)
		conns.DELETE("/:id", cc.Delete)
		conns.POST("/:id/activate", cc.Activate)
	}
}
