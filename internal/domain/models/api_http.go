package models

// Requests for the prediction HTTP endpoints. Defined in domain for consistency and reuse.

type PredictRequest struct {
	League     string `query:"league" json:"league" default:"premier-league"`
	HomeTeamID int64  `query:"home_team_id" json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64  `query:"away_team_id" json:"away_team_id" validate:"required,gt=0,nefield=HomeTeamID"`
	Venue      string `query:"venue" json:"venue" default:"team_a" validate:"oneof=team_a team_b"`
}

type JackpotRequest struct {
	Name     string    `json:"name" default:"jackpot"`
	Fixtures []Fixture `json:"fixtures" validate:"required,min=1,max=20,dive"`
}

type DailyPicksRequest struct {
	Date  string `query:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Limit int    `query:"limit" json:"limit" default:"5" validate:"gte=1,lte=20"`
}

type HistoryRequest struct {
	TeamID int64 `query:"team_id" json:"team_id" validate:"omitempty,gt=0"`
	Limit  int   `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=500"`
}
