package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"StockDashboard/internal/chart"
	"StockDashboard/internal/collector"
	"StockDashboard/internal/customerrors"
	"StockDashboard/internal/model"
	"StockDashboard/internal/notifier"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/strategy"
)

// Pages is the navigation menu in display order.
var Pages = []model.Page{
	{ID: "information", Title: "Information", Icon: "info-circle"},
	{ID: "analysis", Title: "Stock Price Analysis", Icon: "chart-line"},
	{ID: "compare", Title: "Compare Stocks", Icon: "chart-bar"},
	{ID: "suggestion", Title: "Stock Suggestions", Icon: "lightbulb"},
}

// Options are the page defaults taken from configuration.
type Options struct {
	Palette       model.Palette
	AnalysisRange model.OutputSize
}

// PageController serves the four dashboard pages. Every request reads its
// query once and passes the values down; nothing is shared between requests.
type PageController struct {
	collector *collector.Collector
	recorder  recorder.Recorder
	opts      Options
}

func NewPageController(col *collector.Collector, rec recorder.Recorder, opts Options) *PageController {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if opts.Palette == "" {
		opts.Palette = model.RedGreen
	}
	if opts.AnalysisRange == "" {
		opts.AnalysisRange = model.Full
	}
	return &PageController{collector: col, recorder: rec, opts: opts}
}

// RegisterRoutes sets up the page endpoints under the given group.
func (ctrl *PageController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/pages", ctrl.ListPages)
	router.GET("/information", ctrl.GetInformation)
	router.GET("/analysis", ctrl.GetAnalysis)
	router.GET("/compare", ctrl.GetComparison)
	router.GET("/suggestion", ctrl.GetSuggestion)
}

type informationQuery struct {
	Ticker string `form:"ticker"`
}

type analysisQuery struct {
	Ticker  string `form:"ticker"`
	Range   string `form:"range"`
	Palette string `form:"palette"`
}

type compareQuery struct {
	Ticker1 string `form:"ticker1"`
	Ticker2 string `form:"ticker2"`
	Chart   string `form:"chart"`
	Palette string `form:"palette"`
	Range   string `form:"range"`
}

// AnalysisPage is the payload of the Stock Price Analysis page.
type AnalysisPage struct {
	Chart        *model.ChartSpec       `json:"chart"`
	Summary      *model.AnalysisSummary `json:"summary"`
	SummaryText  string                 `json:"summary_text"`
	Skipped      int                    `json:"skipped"`
	Inconsistent int                    `json:"inconsistent"`
}

// ComparePage is the payload of the Compare Stocks page.
type ComparePage struct {
	Chart   *model.ChartSpec `json:"chart"`
	Skipped map[string]int   `json:"skipped"`
}

// SuggestionPage is the payload of the Stock Suggestions page.
type SuggestionPage struct {
	Suggestion model.Suggestion `json:"suggestion"`
	Text       string           `json:"text"`
}

// ListPages returns the navigation menu.
func (ctrl *PageController) ListPages(c *gin.Context) {
	c.JSON(http.StatusOK, model.Response{Success: true, Message: "Fetch Success", Data: Pages})
}

// GetInformation returns the raw company overview for a ticker.
func (ctrl *PageController) GetInformation(c *gin.Context) {
	var q informationQuery
	_ = c.ShouldBindQuery(&q)
	run := newRun("information", q.Ticker)

	symbol, err := collector.CleanSymbol(q.Ticker)
	if err != nil {
		ctrl.handleError(c, run, "Failed to get company information", err)
		return
	}
	run.symbols = []string{symbol}

	rec, err := ctrl.collector.Overview(c.Request.Context(), symbol)
	if err != nil {
		ctrl.handleError(c, run, "Failed to get company information", err)
		return
	}
	ctrl.handleSuccess(c, run, "Fetch Success", rec)
}

// GetAnalysis returns a candlestick chart and indicator summary for one ticker.
func (ctrl *PageController) GetAnalysis(c *gin.Context) {
	var q analysisQuery
	_ = c.ShouldBindQuery(&q)
	run := newRun("analysis", q.Ticker)
	const failed = "Failed to build price analysis"

	symbol, err := collector.CleanSymbol(q.Ticker)
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}
	run.symbols = []string{symbol}

	size, err := model.ParseOutputSize(q.Range, ctrl.opts.AnalysisRange)
	if err != nil {
		ctrl.handleError(c, run, failed, invalid(err))
		return
	}
	palette, err := model.ParsePalette(q.Palette, ctrl.opts.Palette)
	if err != nil {
		ctrl.handleError(c, run, failed, invalid(err))
		return
	}

	ctx := c.Request.Context()
	series, err := ctrl.collector.Daily(ctx, symbol, size)
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}
	run.observe(series)

	spec, err := chart.Build(chart.Request{
		Kind:         model.KindCandlestick,
		Primary:      series,
		Palette:      palette,
		PrimaryLabel: symbol,
	})
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}
	summary, err := ctrl.collector.Analyze(ctx, series)
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}

	ctrl.handleSuccess(c, run, "Analysis ready", AnalysisPage{
		Chart:        spec,
		Summary:      summary,
		SummaryText:  notifier.FormatAnalysis(summary),
		Skipped:      series.Skipped,
		Inconsistent: series.Inconsistent,
	})
}

// GetComparison returns one chart of the selected kind comparing two tickers.
// The two series are fetched one after the other.
func (ctrl *PageController) GetComparison(c *gin.Context) {
	var q compareQuery
	_ = c.ShouldBindQuery(&q)
	run := newRun("compare", q.Ticker1, q.Ticker2)
	const failed = "Failed to compare stocks"

	s1, err := collector.CleanSymbol(q.Ticker1)
	if err != nil {
		ctrl.handleError(c, run, failed, fmt.Errorf("first ticker: %w", err))
		return
	}
	s2, err := collector.CleanSymbol(q.Ticker2)
	if err != nil {
		ctrl.handleError(c, run, failed, fmt.Errorf("second ticker: %w", err))
		return
	}
	run.symbols = []string{s1, s2}

	kind := model.KindLine
	if q.Chart != "" {
		if kind, err = model.ParseChartKind(q.Chart); err != nil {
			ctrl.handleError(c, run, failed, invalid(err))
			return
		}
	}
	size, err := model.ParseOutputSize(q.Range, model.Full)
	if err != nil {
		ctrl.handleError(c, run, failed, invalid(err))
		return
	}
	palette, err := model.ParsePalette(q.Palette, ctrl.opts.Palette)
	if err != nil {
		ctrl.handleError(c, run, failed, invalid(err))
		return
	}

	ctx := c.Request.Context()
	first, err := ctrl.collector.Daily(ctx, s1, size)
	if err != nil {
		ctrl.handleError(c, run, failed, err, s1)
		return
	}
	run.observe(first)
	second, err := ctrl.collector.Daily(ctx, s2, size)
	if err != nil {
		ctrl.handleError(c, run, failed, err, s2)
		return
	}
	run.observe(second)

	spec, err := chart.Build(chart.Request{
		Kind:           kind,
		Primary:        first,
		Secondary:      second,
		Palette:        palette,
		PrimaryLabel:   s1,
		SecondaryLabel: s2,
	})
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}

	ctrl.handleSuccess(c, run, "Comparison ready", ComparePage{
		Chart:   spec,
		Skipped: map[string]int{s1: first.Skipped, s2: second.Skipped},
	})
}

// GetSuggestion fetches the compact series and suggests buy or sell.
func (ctrl *PageController) GetSuggestion(c *gin.Context) {
	var q informationQuery
	_ = c.ShouldBindQuery(&q)
	run := newRun("suggestion", q.Ticker)
	const failed = "Failed to get suggestion"

	symbol, err := collector.CleanSymbol(q.Ticker)
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}
	run.symbols = []string{symbol}

	series, err := ctrl.collector.Daily(c.Request.Context(), symbol, model.Compact)
	if err != nil {
		ctrl.handleError(c, run, failed, err)
		return
	}
	run.observe(series)

	s := strategy.Suggest(symbol, series)
	ctrl.handleSuccess(c, run, "Suggestion ready", SuggestionPage{
		Suggestion: s,
		Text:       notifier.FormatSuggestion(s),
	})
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", customerrors.ErrInvalidInput, err)
}
