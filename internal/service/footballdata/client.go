package footballdata

import (
	"context"
	"fmt"
	"time"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	xhttp "PitchCast/pkg/http"
	"PitchCast/pkg/util"
)

// Client fetches standings, head-to-head history and fixtures from the
// football data provider's REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
}

// NewClient creates a provider API client.
func NewClient(baseURL, apiKey string, timeout time.Duration) drepo.DataProvider {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithClientTimeout(timeout)),
	}
}

type standingRow struct {
	TeamID           int64  `json:"team_id"`
	TeamName         string `json:"team_name"`
	Position         int    `json:"position"`
	Points           int    `json:"points"`
	Played           int    `json:"played"`
	Wins             int    `json:"wins"`
	Draws            int    `json:"draws"`
	Losses           int    `json:"losses"`
	GoalsFor         int    `json:"goals_for"`
	GoalsAgainst     int    `json:"goals_against"`
	HomePlayed       int    `json:"home_played"`
	HomeWins         int    `json:"home_wins"`
	HomeDraws        int    `json:"home_draws"`
	HomeLosses       int    `json:"home_losses"`
	HomeGoalsFor     int    `json:"home_goals_for"`
	HomeGoalsAgainst int    `json:"home_goals_against"`
	AwayPlayed       int    `json:"away_played"`
	AwayWins         int    `json:"away_wins"`
	AwayDraws        int    `json:"away_draws"`
	AwayLosses       int    `json:"away_losses"`
	AwayGoalsFor     int    `json:"away_goals_for"`
	AwayGoalsAgainst int    `json:"away_goals_against"`
	Form             string `json:"form"`
	Injuries         int    `json:"injuries"`
}

type standingsResponse struct {
	League    string        `json:"league"`
	Standings []standingRow `json:"standings"`
}

// Team resolves one team's season snapshot from the league standings.
func (c *Client) Team(ctx context.Context, league string, teamID int64) (models.Team, error) {
	var resp standingsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/v1/standings",
		Headers:     c.headers(),
		QueryParams: map[string][]string{"league": {league}},
	}, &resp)
	if err != nil {
		return models.Team{}, fmt.Errorf("fetch standings %s: %w", league, err)
	}

	for _, row := range resp.Standings {
		if row.TeamID == teamID {
			return toTeam(league, row), nil
		}
	}
	return models.Team{}, fmt.Errorf("team %d not in %s standings", teamID, league)
}

type h2hRow struct {
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

type h2hResponse struct {
	Matches []h2hRow `json:"matches"`
}

// H2H returns the recent meetings between two teams, most recent first.
func (c *Client) H2H(ctx context.Context, teamAID, teamBID int64) ([]models.H2HMatch, error) {
	var resp h2hResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     c.baseURL + "/v1/h2h",
		Headers: c.headers(),
		QueryParams: map[string][]string{
			"team_a": {fmt.Sprintf("%d", teamAID)},
			"team_b": {fmt.Sprintf("%d", teamBID)},
			"limit":  {"10"},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch h2h %d vs %d: %w", teamAID, teamBID, err)
	}

	out := make([]models.H2HMatch, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		out = append(out, models.H2HMatch{
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
			HomeScore:  m.HomeScore,
			AwayScore:  m.AwayScore,
			Completed:  m.Status == "finished",
			Date:       util.ParseTimeDefault(m.Date, time.Time{}),
		})
	}
	return out, nil
}

type fixtureRow struct {
	ID         string `json:"id"`
	League     string `json:"league"`
	HomeTeamID int64  `json:"home_team_id"`
	AwayTeamID int64  `json:"away_team_id"`
	KickoffUTC int64  `json:"kickoff_utc"`
}

type fixturesResponse struct {
	Fixtures []fixtureRow `json:"fixtures"`
}

// Fixtures returns fixtures for a league on a YYYY-MM-DD date.
func (c *Client) Fixtures(ctx context.Context, league, date string) ([]models.Fixture, error) {
	var resp fixturesResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     c.baseURL + "/v1/fixtures",
		Headers: c.headers(),
		QueryParams: map[string][]string{
			"league": {league},
			"date":   {date},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures %s %s: %w", league, date, err)
	}

	out := make([]models.Fixture, 0, len(resp.Fixtures))
	for _, f := range resp.Fixtures {
		out = append(out, models.Fixture{
			ID:         f.ID,
			League:     f.League,
			HomeTeamID: f.HomeTeamID,
			AwayTeamID: f.AwayTeamID,
			KickoffUTC: time.Unix(f.KickoffUTC, 0).UTC(),
		})
	}
	return out, nil
}

func (c *Client) headers() map[string]string {
	h := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		h["X-Auth-Token"] = c.apiKey
	}
	return h
}

func toTeam(league string, row standingRow) models.Team {
	t := models.Team{
		ID:               row.TeamID,
		Name:             row.TeamName,
		League:           league,
		Position:         row.Position,
		Points:           row.Points,
		Played:           row.Played,
		Wins:             row.Wins,
		Draws:            row.Draws,
		Losses:           row.Losses,
		GoalsScored:      row.GoalsFor,
		GoalsConceded:    row.GoalsAgainst,
		HomePlayed:       row.HomePlayed,
		HomeWins:         row.HomeWins,
		HomeDraws:        row.HomeDraws,
		HomeLosses:       row.HomeLosses,
		HomeGoalsFor:     row.HomeGoalsFor,
		HomeGoalsAgainst: row.HomeGoalsAgainst,
		AwayPlayed:       row.AwayPlayed,
		AwayWins:         row.AwayWins,
		AwayDraws:        row.AwayDraws,
		AwayLosses:       row.AwayLosses,
		AwayGoalsFor:     row.AwayGoalsFor,
		AwayGoalsAgainst: row.AwayGoalsAgainst,
		RecentForm:       row.Form,
		Injuries:         row.Injuries,
	}
	for _, ch := range row.Form {
		switch ch {
		case 'W', 'w':
			t.RecentWins++
		case 'D', 'd':
			t.RecentDraws++
		case 'L', 'l':
			t.RecentLosses++
		}
	}
	return t
}
