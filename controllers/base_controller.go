package controllers

import (
	"net/http"

	"oraconsoleapi/pkg/logger"
	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// StatusResponse is the body of every successful mutation.
type StatusResponse struct {
	Status string `json:"status" example:"success"`
}

// MessageResponse carries a human-readable outcome.
type MessageResponse struct {
	Message string `json:"message" example:"Connection updated"`
}

// respond writes v as JSON, or err through the error mapper.
func respond[T any](c *gin.Context, v T, err error) {
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, v)
}

// respondStatus answers a mutation with {"status":"success"}.
func respondStatus(c *gin.Context, err error) {
	respond(c, services.StatusOK, err)
}

// bindJSON decodes the request body into obj and answers 400 on failure.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warnf("Invalid request body for %s: %v", c.FullPath(), err)
		utils.ErrorResponse(c, utils.Invalidf("invalid request body: %v", err))
		return false
	}
	return true
}

// instParam reads the optional inst_id query parameter; 0 means all instances.
func instParam(c *gin.Context) (int, bool) {
	inst, err := utils.OptionalInt("inst_id", c.Query("inst_id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return 0, false
	}
	if inst == nil {
		return 0, true
	}
	return *inst, true
}

// intParam reads a required integer path parameter.
func intParam(c *gin.Context, name string) (int, bool) {
	n, err := utils.ParseInt(name, c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, err)
		return 0, false
	}
	return n, true
}
