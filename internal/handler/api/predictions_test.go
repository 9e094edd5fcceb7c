package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"PitchCast/internal/domain/models"
	"PitchCast/internal/usecase"
	xlogger "PitchCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubProvider struct {
	teams map[int64]models.Team
}

func (s *stubProvider) Team(_ context.Context, league string, teamID int64) (models.Team, error) {
	t := s.teams[teamID]
	t.ID = teamID
	t.League = league
	return t, nil
}

func (s *stubProvider) H2H(_ context.Context, _, _ int64) ([]models.H2HMatch, error) {
	return nil, nil
}

func (s *stubProvider) Fixtures(_ context.Context, _, _ string) ([]models.Fixture, error) {
	return nil, nil
}

func newTestHandler(t *testing.T) *PredictionsHandler {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	provider := &stubProvider{teams: map[int64]models.Team{
		1: {Name: "Alpha", Position: 1, Played: 30, Wins: 20, Draws: 6, Losses: 4,
			GoalsScored: 60, GoalsConceded: 20, RecentForm: "WWWWD"},
		2: {Name: "Beta", Position: 18, Played: 30, Wins: 5, Draws: 7, Losses: 18,
			GoalsScored: 22, GoalsConceded: 55, RecentForm: "LLDLL"},
	}}
	analyzer := usecase.NewMatchAnalyzer(provider, nil, nil, nil)
	jackpot := usecase.NewJackpotAnalyzer(analyzer, nil, nil)
	picks := usecase.NewDailyPicks(analyzer, provider, nil, []string{"premier-league"}, nil)

	return NewPredictionsHandler(logger, analyzer, jackpot, picks, nil, nil, 0)
}

func doRequest(h *PredictionsHandler, method, target, body string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPredictEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/predict",
		`{"league":"premier-league","home_team_id":1,"away_team_id":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int               `json:"status"`
		Data   models.Prediction `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", envelope.Status)
	}
	sum := envelope.Data.HomeWinPct + envelope.Data.DrawPct + envelope.Data.AwayWinPct
	if sum < 99.9 || sum > 100.1 {
		t.Fatalf("percentages sum to %.2f", sum)
	}
}

func TestPredictRejectsSameTeams(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/predict",
		`{"home_team_id":1,"away_team_id":1}`)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("identical teams must fail validation, got %d", envelope.Status)
	}
}

func TestPredictRejectsMissingTeams(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/predict", `{"league":"premier-league"}`)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("missing team ids must fail validation, got %d", envelope.Status)
	}
}

func TestJackpotEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/jackpot",
		`{"name":"saturday","fixtures":[{"league":"premier-league","home_team_id":1,"away_team_id":2}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int                 `json:"status"`
		Data   usecase.SlateResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Summary.Fixtures != 1 {
		t.Fatalf("expected 1 analyzed fixture, got %d", envelope.Data.Summary.Fixtures)
	}
}

func TestJackpotRequiresFixtures(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/jackpot", `{"name":"empty","fixtures":[]}`)

	var envelope struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusBadRequest {
		t.Fatalf("empty slate must fail validation, got %d", envelope.Status)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
