package controllers

import (
	"oraconsoleapi/models"
	"oraconsoleapi/services"

	"github.com/gin-gonic/gin"
)

// PreferenceController stores per-connection screen settings.
type PreferenceController struct {
	svc services.PreferenceService
}

func NewPreferenceController(svc services.PreferenceService) *PreferenceController {
	return &PreferenceController{svc: svc}
}

// @Summary Screen preferences
// @Description Empty object when nothing is stored or no connection is active.
// @Tags Preferences
// @Produce json
// @Param screen_id path string true "Screen identifier"
// @Success 200 {object} map[string]interface{}
// @Router /preferences/{screen_id} [get]
func (pc *PreferenceController) Get(c *gin.Context) {
	data, err := pc.svc.Get(c.Request.Context(), c.Param("screen_id"))
	respond(c, data, err)
}

// @Summary Save screen preferences
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body models.PreferenceRequest true "Screen and settings"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} utils.ErrorDetail "No active connection"
// @Router /preferences [post]
func (pc *PreferenceController) Save(c *gin.Context) {
	var req models.PreferenceRequest
	if !bindJSON(c, &req) {
		return
	}
	respondStatus(c, pc.svc.Save(c.Request.Context(), req))
}

// RegisterPreferenceRoutes registers the preference endpoints.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, pc *PreferenceController) {
	rg.GET("/preferences/:screen_id", pc.Get)
	rg.POST("/preferences", pc.Save)
}
