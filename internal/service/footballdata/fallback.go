package footballdata

import (
	"context"
	"fmt"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
)

// StaticProvider serves a bundled sample dataset so predictions stay
// available when the provider API is unreachable. Unknown teams get a
// synthesized mid-table placeholder rather than an error.
type StaticProvider struct {
	teams map[int64]models.Team
}

// NewStaticProvider creates the static fallback dataset.
func NewStaticProvider() drepo.DataProvider {
	teams := make(map[int64]models.Team, len(sampleTeams))
	for _, t := range sampleTeams {
		teams[t.ID] = t
	}
	return &StaticProvider{teams: teams}
}

func (s *StaticProvider) Team(_ context.Context, league string, teamID int64) (models.Team, error) {
	if t, ok := s.teams[teamID]; ok {
		return t, nil
	}
	return placeholderTeam(league, teamID), nil
}

func (s *StaticProvider) H2H(_ context.Context, _, _ int64) ([]models.H2HMatch, error) {
	// No meeting history in the sample set; the engine applies its
	// neutral defaults.
	return nil, nil
}

func (s *StaticProvider) Fixtures(_ context.Context, _, _ string) ([]models.Fixture, error) {
	return nil, nil
}

func placeholderTeam(league string, teamID int64) models.Team {
	return models.Team{
		ID:     teamID,
		Name:   fmt.Sprintf("Team %d", teamID),
		League: league,
		// Position 0 signals "unknown"; the engine assumes mid-table.
		Played: 10, Wins: 4, Draws: 3, Losses: 3,
		GoalsScored: 13, GoalsConceded: 12,
		RecentWins: 2, RecentDraws: 1, RecentLosses: 2,
	}
}

// sampleTeams is a frozen snapshot of one Premier League matchweek, kept
// small but shaped like real standings output.
var sampleTeams = []models.Team{
	{
		ID: 57, Name: "Arsenal", League: "premier-league",
		Position: 1, Points: 74, Played: 32, Wins: 23, Draws: 5, Losses: 4,
		GoalsScored: 75, GoalsConceded: 26,
		HomePlayed: 16, HomeWins: 13, HomeDraws: 2, HomeLosses: 1, HomeGoalsFor: 42, HomeGoalsAgainst: 11,
		AwayPlayed: 16, AwayWins: 10, AwayDraws: 3, AwayLosses: 3, AwayGoalsFor: 33, AwayGoalsAgainst: 15,
		RecentForm: "WWWDW", RecentWins: 4, RecentDraws: 1,
	},
	{
		ID: 65, Name: "Manchester City", League: "premier-league",
		Position: 2, Points: 71, Played: 32, Wins: 22, Draws: 5, Losses: 5,
		GoalsScored: 78, GoalsConceded: 31,
		HomePlayed: 16, HomeWins: 13, HomeDraws: 2, HomeLosses: 1, HomeGoalsFor: 45, HomeGoalsAgainst: 13,
		AwayPlayed: 16, AwayWins: 9, AwayDraws: 3, AwayLosses: 4, AwayGoalsFor: 33, AwayGoalsAgainst: 18,
		RecentForm: "WWDWW", RecentWins: 4, RecentDraws: 1,
	},
	{
		ID: 64, Name: "Liverpool", League: "premier-league",
		Position: 3, Points: 67, Played: 32, Wins: 20, Draws: 7, Losses: 5,
		GoalsScored: 72, GoalsConceded: 33,
		HomePlayed: 16, HomeWins: 12, HomeDraws: 3, HomeLosses: 1, HomeGoalsFor: 41, HomeGoalsAgainst: 14,
		AwayPlayed: 16, AwayWins: 8, AwayDraws: 4, AwayLosses: 4, AwayGoalsFor: 31, AwayGoalsAgainst: 19,
		RecentForm: "WDWWL", RecentWins: 3, RecentDraws: 1, RecentLosses: 1,
	},
	{
		ID: 61, Name: "Chelsea", League: "premier-league",
		Position: 6, Points: 54, Played: 32, Wins: 15, Draws: 9, Losses: 8,
		GoalsScored: 58, GoalsConceded: 42,
		HomePlayed: 16, HomeWins: 9, HomeDraws: 4, HomeLosses: 3, HomeGoalsFor: 33, HomeGoalsAgainst: 18,
		AwayPlayed: 16, AwayWins: 6, AwayDraws: 5, AwayLosses: 5, AwayGoalsFor: 25, AwayGoalsAgainst: 24,
		RecentForm: "DWLWD", RecentWins: 2, RecentDraws: 2, RecentLosses: 1,
	},
	{
		ID: 66, Name: "Manchester United", League: "premier-league",
		Position: 8, Points: 49, Played: 32, Wins: 14, Draws: 7, Losses: 11,
		GoalsScored: 47, GoalsConceded: 44,
		HomePlayed: 16, HomeWins: 9, HomeDraws: 3, HomeLosses: 4, HomeGoalsFor: 27, HomeGoalsAgainst: 18,
		AwayPlayed: 16, AwayWins: 5, AwayDraws: 4, AwayLosses: 7, AwayGoalsFor: 20, AwayGoalsAgainst: 26,
		RecentForm: "LWDLW", RecentWins: 2, RecentDraws: 1, RecentLosses: 2,
	},
	{
		ID: 73, Name: "Tottenham Hotspur", League: "premier-league",
		Position: 5, Points: 57, Played: 32, Wins: 17, Draws: 6, Losses: 9,
		GoalsScored: 63, GoalsConceded: 47,
		HomePlayed: 16, HomeWins: 10, HomeDraws: 3, HomeLosses: 3, HomeGoalsFor: 36, HomeGoalsAgainst: 20,
		AwayPlayed: 16, AwayWins: 7, AwayDraws: 3, AwayLosses: 6, AwayGoalsFor: 27, AwayGoalsAgainst: 27,
		RecentForm: "WLWWD", RecentWins: 3, RecentDraws: 1, RecentLosses: 1,
	},
	{
		ID: 67, Name: "Newcastle United", League: "premier-league",
		Position: 7, Points: 50, Played: 32, Wins: 14, Draws: 8, Losses: 10,
		GoalsScored: 61, GoalsConceded: 48,
		HomePlayed: 16, HomeWins: 9, HomeDraws: 4, HomeLosses: 3, HomeGoalsFor: 36, HomeGoalsAgainst: 19,
		AwayPlayed: 16, AwayWins: 5, AwayDraws: 4, AwayLosses: 7, AwayGoalsFor: 25, AwayGoalsAgainst: 29,
		RecentForm: "DLWWL", RecentWins: 2, RecentDraws: 1, RecentLosses: 2,
	},
	{
		ID: 563, Name: "West Ham United", League: "premier-league",
		Position: 12, Points: 39, Played: 32, Wins: 10, Draws: 9, Losses: 13,
		GoalsScored: 44, GoalsConceded: 56,
		HomePlayed: 16, HomeWins: 6, HomeDraws: 5, HomeLosses: 5, HomeGoalsFor: 25, HomeGoalsAgainst: 26,
		AwayPlayed: 16, AwayWins: 4, AwayDraws: 4, AwayLosses: 8, AwayGoalsFor: 19, AwayGoalsAgainst: 30,
		RecentForm: "LDLWD", RecentWins: 1, RecentDraws: 2, RecentLosses: 2,
	},
	{
		ID: 62, Name: "Everton", League: "premier-league",
		Position: 16, Points: 32, Played: 32, Wins: 8, Draws: 8, Losses: 16,
		GoalsScored: 33, GoalsConceded: 50,
		HomePlayed: 16, HomeWins: 5, HomeDraws: 5, HomeLosses: 6, HomeGoalsFor: 19, HomeGoalsAgainst: 22,
		AwayPlayed: 16, AwayWins: 3, AwayDraws: 3, AwayLosses: 10, AwayGoalsFor: 14, AwayGoalsAgainst: 28,
		RecentForm: "LLDWL", RecentWins: 1, RecentDraws: 1, RecentLosses: 3,
	},
	{
		ID: 71, Name: "Sheffield United", League: "premier-league",
		Position: 20, Points: 16, Played: 32, Wins: 3, Draws: 7, Losses: 22,
		GoalsScored: 27, GoalsConceded: 77,
		HomePlayed: 16, HomeWins: 2, HomeDraws: 4, HomeLosses: 10, HomeGoalsFor: 16, HomeGoalsAgainst: 36,
		AwayPlayed: 16, AwayWins: 1, AwayDraws: 3, AwayLosses: 12, AwayGoalsFor: 11, AwayGoalsAgainst: 41,
		RecentForm: "LLLDL", RecentDraws: 1, RecentLosses: 4,
	},
}
