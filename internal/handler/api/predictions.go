package api

import (
	"fmt"
	"net/http"
	"time"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	"PitchCast/internal/engine"
	"PitchCast/internal/service/ratelimit"
	"PitchCast/internal/usecase"
	"PitchCast/pkg/cache"
	xhttp "PitchCast/pkg/http"
	xlogger "PitchCast/pkg/logger"
	"PitchCast/pkg/util"

	"github.com/labstack/echo/v4"
)

// Per-client allowance for the compute-heavy endpoints.
const (
	rateCapacity  = 10
	rateRefillSec = 5
)

// PredictionsHandler exposes the prediction engine over REST.
type PredictionsHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.MatchAnalyzer
	jackpot  *usecase.JackpotAnalyzer
	picks    *usecase.DailyPicks
	store    drepo.PredictionStore
	limiter  *ratelimit.Limiter
	cache    cache.Service
	picksTTL time.Duration
}

func NewPredictionsHandler(
	logger *xlogger.Logger,
	analyzer *usecase.MatchAnalyzer,
	jackpot *usecase.JackpotAnalyzer,
	picks *usecase.DailyPicks,
	store drepo.PredictionStore,
	cacheSvc cache.Service,
	picksTTL time.Duration,
) *PredictionsHandler {
	return &PredictionsHandler{
		logger:   logger,
		analyzer: analyzer,
		jackpot:  jackpot,
		picks:    picks,
		store:    store,
		limiter:  ratelimit.New(),
		cache:    cacheSvc,
		picksTTL: picksTTL,
	}
}

func (h *PredictionsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/v1")
	g.POST("/predict", h.Predict)
	g.POST("/jackpot", h.Jackpot)
	g.GET("/picks/daily", h.DailyPicks)
	g.GET("/history", h.History)
	g.GET("/accuracy", h.Accuracy)
}

func (h *PredictionsHandler) Predict(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), rateCapacity, rateRefillSec) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	fixture := models.Fixture{
		League:     req.League,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	}
	venue := engine.VenueTeamA
	if req.Venue == string(engine.VenueTeamB) {
		venue = engine.VenueTeamB
	}

	res, err := h.analyzer.Predict(c.Request().Context(), fixture, venue)
	if err != nil {
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("prediction inputs unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictionsHandler) Jackpot(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), rateCapacity, rateRefillSec) {
		return xhttp.TooManyRequestsResponse(c)
	}

	req := &models.JackpotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.jackpot.AnalyzeSlate(c.Request().Context(), req.Name, req.Fixtures)
	if err != nil {
		h.logger.Error("jackpot usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictionsHandler) DailyPicks(c echo.Context) error {
	req := &models.DailyPicksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	date := util.DayKey(req.Date)
	cacheKey := fmt.Sprintf("picks:%s:%d", date, req.Limit)

	ctx := c.Request().Context()
	if h.cache != nil {
		var cached []*models.DailyPick
		if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
			return xhttp.SuccessResponse(c, cached)
		}
	}

	picks, err := h.picks.Picks(ctx, date, req.Limit)
	if err != nil {
		h.logger.Error("daily picks usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	if h.cache != nil && h.picksTTL > 0 {
		if err := h.cache.Set(ctx, cacheKey, picks, h.picksTTL); err != nil {
			h.logger.Warn("picks cache set failed", xlogger.Error(err))
		}
	}
	return xhttp.SuccessResponse(c, picks)
}

func (h *PredictionsHandler) History(c echo.Context) error {
	if h.store == nil {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("history store not configured"))
	}

	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rows, err := h.store.History(c.Request().Context(), req.TeamID, req.Limit)
	if err != nil {
		h.logger.Error("history query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("history unavailable").WithError(err))
	}
	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *PredictionsHandler) Accuracy(c echo.Context) error {
	if h.store == nil {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("history store not configured"))
	}

	summary, err := h.store.Accuracy(c.Request().Context())
	if err != nil {
		h.logger.Error("accuracy query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("accuracy unavailable").WithError(err))
	}
	return xhttp.SuccessResponse(c, summary)
}

func (h *PredictionsHandler) Health(c echo.Context) error {
	status := map[string]string{"service": "ok"}
	if h.store != nil {
		if err := h.store.Health(c.Request().Context()); err != nil {
			status["store"] = "unavailable"
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		status["store"] = "ok"
	}
	return c.JSON(http.StatusOK, status)
}
