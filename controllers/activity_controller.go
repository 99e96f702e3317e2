package controllers

import (
	"net/http"
	"strconv"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/pkg/readmodel"
	"oraconsoleapi/services/activity"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// ActivityController exposes the in-memory action log.
type ActivityController struct {
	log *activity.Log
}

func NewActivityController(log *activity.Log) *ActivityController {
	return &ActivityController{log: log}
}

// List returns recorded actions, newest first
// @Summary Activity log
// @Description Without page or page_size the full list is returned. connection_id narrows it to one profile.
// @Tags Activity
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param page_size query int false "Items per page (default 10)"
// @Param connection_id query int false "Connection ID"
// @Success 200 {object} readmodel.Page[activity.Entry]
// @Failure 400 {object} utils.ErrorDetail
// @Router /activity [get]
func (ac *ActivityController) List(c *gin.Context) {
	var connectionID uint
	if v := c.Query("connection_id"); v != "" {
		id, err := utils.ParseID("connection_id", v)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		connectionID = id
	}

	pageStr, sizeStr := c.Query("page"), c.Query("page_size")
	page, pageSize := 1, 0
	if pageStr != "" || sizeStr != "" {
		pageSize = readmodel.DefaultPageSize
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		} else if pageStr != "" {
			logger.Warnf("Invalid page parameter: %s, using default: 1", pageStr)
		}
		if ps, err := strconv.Atoi(sizeStr); err == nil && ps > 0 {
			pageSize = ps
		} else if sizeStr != "" {
			logger.Warnf("Invalid page_size parameter: %s, using default: %d", sizeStr, pageSize)
		}
	}
	utils.JSONResponse(c, http.StatusOK, ac.log.Page(connectionID, page, pageSize))
}

// Get returns one action
// @Summary Activity entry
// @Tags Activity
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} activity.Entry
// @Failure 404 {object} utils.ErrorDetail
// @Router /activity/{id} [get]
func (ac *ActivityController) Get(c *gin.Context) {
	e, ok := ac.log.Get(c.Param("id"))
	if !ok {
		utils.ErrorResponse(c, utils.NotFoundf("Activity not found"))
		return
	}
	utils.JSONResponse(c, http.StatusOK, e)
}

// RegisterActivityRoutes registers the activity log endpoints.
func RegisterActivityRoutes(rg *gin.RouterGroup, ac *ActivityController) {
	rg.GET("/activity", ac.List)
	rg.GET("/activity/:id", ac.Get)
}
