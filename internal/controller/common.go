package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
	"StockDashboard/internal/notifier"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/trace"
)

// StatusFor maps an error class to the HTTP status the API answers with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, customerrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, customerrors.ErrNetwork):
		return http.StatusServiceUnavailable
	case errors.Is(err, customerrors.ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, customerrors.ErrEmptySeries):
		return http.StatusNotFound
	case errors.Is(err, customerrors.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// pageRun tracks one page request from query parsing to response.
type pageRun struct {
	page    string
	symbols []string
	points  int
	skipped int
	start   time.Time
}

func newRun(page string, symbols ...string) *pageRun {
	return &pageRun{page: page, symbols: symbols, start: time.Now()}
}

// observe adds a fetched series to the run's counters.
func (r *pageRun) observe(s *model.SeriesResult) {
	if s == nil {
		return
	}
	r.points += s.Len()
	r.skipped += s.Skipped
}

func (ctrl *PageController) handleSuccess(c *gin.Context, run *pageRun, message string, data any) {
	ctrl.record(c, run, nil)
	c.JSON(http.StatusOK, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// handleError answers with the error envelope. The user-facing text names
// subject when given, otherwise every symbol of the run.
func (ctrl *PageController) handleError(c *gin.Context, run *pageRun, message string, err error, subject ...string) {
	ctrl.record(c, run, err)
	if len(subject) == 0 {
		subject = run.symbols
	}
	c.JSON(StatusFor(err), model.Response{
		Success: false,
		Message: message,
		Error:   notifier.FormatError(err, subject...),
	})
}

func (ctrl *PageController) record(c *gin.Context, run *pageRun, err error) {
	ctx := c.Request.Context()
	evt := &recorder.RequestEvent{
		Time:       run.start,
		RequestID:  trace.RequestID(ctx),
		Page:       run.page,
		Symbols:    run.symbols,
		Outcome:    recorder.OutcomeOK,
		ErrorKind:  customerrors.Kind(err),
		Points:     run.points,
		Skipped:    run.skipped,
		DurationMS: time.Since(run.start).Milliseconds(),
	}
	if err != nil {
		evt.Outcome = recorder.OutcomeError
	}

	logger := trace.Logger(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("page", run.page).Strs("symbols", run.symbols).Str("kind", evt.ErrorKind).Msg("page failed")
	}
	if rerr := ctrl.recorder.RecordRequest(evt); rerr != nil {
		logger.Error().Err(rerr).Str("page", run.page).Msg("record request")
	}
}
