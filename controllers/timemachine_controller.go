package controllers

import (
	"time"

	"oraconsoleapi/services"
	"oraconsoleapi/utils"

	"github.com/gin-gonic/gin"
)

// TimeMachineController replays stored workload snapshots.
type TimeMachineController struct {
	svc services.TimeMachineService
}

func NewTimeMachineController(svc services.TimeMachineService) *TimeMachineController {
	return &TimeMachineController{svc: svc}
}

// timeParam parses an optional RFC 3339 query value.
func timeParam(c *gin.Context, name string) (time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		utils.ErrorResponse(c, utils.Invalidf("invalid %s %q: expected RFC 3339 time", name, v))
		return time.Time{}, false
	}
	return t.UTC(), true
}

// History returns session counts per snapshot
// @Summary Snapshot timeline
// @Description Defaults to the last hour.
// @Tags Time Machine
// @Produce json
// @Param start query string false "RFC 3339 start"
// @Param end query string false "RFC 3339 end"
// @Success 200 {array} services.HistoryPoint
// @Failure 400 {object} utils.ErrorDetail
// @Failure 404 {object} utils.ErrorDetail
// @Router /timemachine/history [get]
func (tc *TimeMachineController) History(c *gin.Context) {
	from, ok := timeParam(c, "start")
	if !ok {
		return
	}
	to, ok := timeParam(c, "end")
	if !ok {
		return
	}
	points, err := tc.svc.History(c.Request.Context(), from, to)
	respond(c, points, err)
}

// Snapshot returns the latest snapshot taken at or before at
// @Summary Snapshot at a point in time
// @Tags Time Machine
// @Produce json
// @Param at query string false "RFC 3339 time, default now"
// @Success 200 {object} services.Snapshot
// @Failure 404 {object} utils.ErrorDetail "No snapshot"
// @Router /timemachine/snapshot [get]
func (tc *TimeMachineController) Snapshot(c *gin.Context) {
	at, ok := timeParam(c, "at")
	if !ok {
		return
	}
	snap, err := tc.svc.SnapshotAt(c.Request.Context(), at)
	if err == nil && snap == nil {
		err = utils.NotFoundf("No snapshot recorded at or before the requested time")
	}
	respond(c, snap, err)
}

// RegisterTimeMachineRoutes registers the snapshot playback endpoints.
func RegisterTimeMachineRoutes(rg *gin.RouterGroup, tc *TimeMachineController) {
	tm := rg.Group("/timemachine")
	{
		tm.GET("/history", tc.History)
		tm.GET("/snapshot", tc.Snapshot)
	}
}
