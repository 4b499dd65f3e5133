package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	svcmetrics "FinSignal/internal/service/metrics"
	"FinSignal/internal/service/notify"
	"FinSignal/internal/service/ratelimit"
	"FinSignal/internal/services/catalog"
	xhttp "FinSignal/pkg/http"
	xlogger "FinSignal/pkg/logger"
	xutil "FinSignal/pkg/util"

	"github.com/labstack/echo/v4"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const pageTitle = "TradingView Futures Analysis Dashboard"

// SignalEvaluator runs one dashboard cycle.
type SignalEvaluator interface {
	Evaluate(ctx context.Context, symbols []string, tf domrepo.Timeframe) []models.SignalRecord
}

// DashboardConfig holds the presentation defaults.
type DashboardConfig struct {
	DefaultSymbols   []string
	DefaultTimeframe domrepo.Timeframe
	RefreshInterval  time.Duration
	Push             bool
}

// DashboardEchoHandler serves the HTML dashboard and its JSON API.
type DashboardEchoHandler struct {
	logger  *xlogger.Logger
	eval    SignalEvaluator
	catalog *catalog.Catalog
	limiter *ratelimit.Limiter
	push    http.Handler
	cfg     DashboardConfig
}

func NewDashboardEchoHandler(
	logger *xlogger.Logger,
	eval SignalEvaluator,
	cat *catalog.Catalog,
	limiter *ratelimit.Limiter,
	push http.Handler,
	cfg DashboardConfig,
) *DashboardEchoHandler {
	if !domrepo.IsValidTimeframe(cfg.DefaultTimeframe) {
		cfg.DefaultTimeframe = domrepo.DefaultTimeframe()
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Minute
	}
	if push == nil {
		cfg.Push = false
	}
	return &DashboardEchoHandler{
		logger:  logger,
		eval:    eval,
		catalog: cat,
		limiter: limiter,
		push:    push,
		cfg:     cfg,
	}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	svcmetrics.Register()

	e.GET("/", h.Page)
	if h.push != nil {
		e.GET("/ws", echo.WrapHandler(h.push))
	}

	g := e.Group("/api")
	g.GET("/signals", h.Signals)
	g.GET("/symbols", h.Symbols)
	g.GET("/timeframes", h.Timeframes)
}

type selectOption struct {
	Label    string
	Value    string
	Selected bool
}

type pageConfig struct {
	RefreshMS int64  `json:"refreshMs"`
	EventType string `json:"eventType"`
	Push      bool   `json:"push"`
}

type pageData struct {
	Title      string
	Symbols    []selectOption
	Timeframes []selectOption
	Config     pageConfig
}

func (h *DashboardEchoHandler) Page(c echo.Context) error {
	selected := make(map[string]struct{}, len(h.cfg.DefaultSymbols))
	for _, s := range h.cfg.DefaultSymbols {
		selected[s] = struct{}{}
	}

	data := pageData{
		Title: pageTitle,
		Config: pageConfig{
			RefreshMS: h.cfg.RefreshInterval.Milliseconds(),
			EventType: notify.MessageType,
			Push:      h.cfg.Push,
		},
	}
	for _, o := range h.catalog.Options() {
		_, ok := selected[o.Value]
		data.Symbols = append(data.Symbols, selectOption{Label: o.Label, Value: o.Value, Selected: ok})
	}
	for _, tf := range domrepo.Timeframes() {
		data.Timeframes = append(data.Timeframes, selectOption{Label: tf.Label(), Value: string(tf), Selected: tf == h.cfg.DefaultTimeframe})
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if err := dashboardTmpl.Execute(c.Response(), data); err != nil {
		if h.logger != nil {
			h.logger.Error("render dashboard", xlogger.Error(err))
		}
		return err
	}
	return nil
}

func (h *DashboardEchoHandler) Signals(c echo.Context) error {
	const endpoint = "signals"
	start := time.Now()
	defer func() {
		svcmetrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if !h.limiter.Allow(c.RealIP()) {
		svcmetrics.APIErrors.WithLabelValues(endpoint, "rate_limit").Inc()
		return xhttp.AppErrorResponse(c, xhttp.RateLimitError("too many requests"))
	}

	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.APIErrors.WithLabelValues(endpoint, "validation").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	// An absent key means first load; an explicit empty selection shows nothing.
	symbols := xutil.SplitSymbols(req.Symbols)
	if !c.QueryParams().Has("symbols") {
		symbols = h.cfg.DefaultSymbols
	}
	if len(symbols) == 0 {
		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		return xhttp.SuccessResponse(c, []models.SignalRecord{})
	}
	var unknown []xhttp.ValidationError
	for _, s := range symbols {
		if !h.catalog.Contains(s) {
			unknown = append(unknown, xhttp.ValidationError{
				Code:    "ERR_UNKNOWN_SYMBOL",
				Field:   "Symbols",
				Message: s + " is not a supported symbol",
				Params:  map[string]interface{}{"symbol": s},
			})
		}
	}
	if len(unknown) > 0 {
		svcmetrics.APIErrors.WithLabelValues(endpoint, "validation").Inc()
		return xhttp.BadRequestResponse(c, unknown)
	}

	tf := domrepo.NormalizeTimeframe(req.TF, h.cfg.DefaultTimeframe)

	records := h.eval.Evaluate(c.Request().Context(), symbols, tf)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, records)
}

func (h *DashboardEchoHandler) Symbols(c echo.Context) error {
	opts := h.catalog.Options()
	return xhttp.ListResponse(c, opts, int64(len(opts)))
}

func (h *DashboardEchoHandler) Timeframes(c echo.Context) error {
	tfs := domrepo.Timeframes()
	opts := make([]models.TimeframeOption, 0, len(tfs))
	for _, tf := range tfs {
		opts = append(opts, models.TimeframeOption{Label: tf.Label(), Value: string(tf)})
	}
	return xhttp.ListResponse(c, opts, int64(len(opts)))
}
