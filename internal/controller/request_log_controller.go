package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
	"StockDashboard/internal/notifier"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/trace"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 200
)

// RequestLogController exposes the latest recorded page requests.
type RequestLogController struct {
	recorder recorder.Recorder
}

func NewRequestLogController(rec recorder.Recorder) *RequestLogController {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &RequestLogController{recorder: rec}
}

func (ctrl *RequestLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/requests", ctrl.GetRecent)
}

// GetRecent returns up to ?limit= events, newest first. Without a request log
// configured the list is empty.
func (ctrl *RequestLogController) GetRecent(c *gin.Context) {
	limit := defaultLogLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxLogLimit {
			err = fmt.Errorf("%w: limit must be between 1 and %d", customerrors.ErrInvalidInput, maxLogLimit)
			c.JSON(http.StatusBadRequest, model.Response{
				Success: false,
				Message: "Failed to read request log",
				Error:   notifier.FormatError(err),
			})
			return
		}
		limit = n
	}

	events, err := ctrl.recorder.Recent(limit)
	if err != nil {
		trace.Logger(c.Request.Context()).Error().Err(err).Msg("read request log")
		c.JSON(StatusFor(err), model.Response{
			Success: false,
			Message: "Failed to read request log",
			Error:   notifier.FormatError(err),
		})
		return
	}
	if events == nil {
		events = []recorder.RequestEvent{}
	}
	c.JSON(http.StatusOK, model.Response{Success: true, Message: "Fetch Success", Data: events})
}
