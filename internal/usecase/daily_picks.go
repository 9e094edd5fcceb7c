package usecase

import (
	"context"
	"sort"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	applogger "PitchCast/pkg/logger"
	"PitchCast/pkg/util"
)

// DailyPicks assembles the day's ranked selections across the configured
// leagues. Ranking uses edge = top outcome percentage weighted by the
// confidence band, so a 55% High beats a 60% Low.
type DailyPicks struct {
	analyzer  *MatchAnalyzer
	provider  drepo.DataProvider
	publisher drepo.PickPublisher
	leagues   []string
	logger    *applogger.Logger
}

func NewDailyPicks(analyzer *MatchAnalyzer, provider drepo.DataProvider, publisher drepo.PickPublisher, leagues []string, logger *applogger.Logger) *DailyPicks {
	return &DailyPicks{
		analyzer:  analyzer,
		provider:  provider,
		publisher: publisher,
		leagues:   leagues,
		logger:    logger,
	}
}

// Picks returns up to limit ranked picks for the given date (today when
// empty) and publishes them to the picks topic. Timestamps are normalized
// to the YYYY-MM-DD day key before fixtures are fetched.
func (d *DailyPicks) Picks(ctx context.Context, date string, limit int) ([]*models.DailyPick, error) {
	date = util.DayKey(date)
	if limit <= 0 {
		limit = 5
	}

	var picks []*models.DailyPick
	for _, league := range d.leagues {
		fixtures, err := d.provider.Fixtures(ctx, league, date)
		if err != nil {
			if d.logger != nil {
				d.logger.Warn("fixtures unavailable",
					applogger.String("league", league), applogger.Error(err))
			}
			continue
		}

		for _, f := range fixtures {
			a, err := d.analyzer.Analyze(ctx, f)
			if err != nil {
				if d.logger != nil {
					d.logger.Warn("fixture skipped for picks",
						applogger.String("fixture", f.Key()), applogger.Error(err))
				}
				continue
			}
			picks = append(picks, pickFrom(a, date))
		}
	}

	sort.Slice(picks, func(i, j int) bool {
		return picks[i].Edge > picks[j].Edge
	})
	if len(picks) > limit {
		picks = picks[:limit]
	}

	if d.publisher != nil {
		for _, p := range picks {
			if err := d.publisher.PublishPick(ctx, p); err != nil && d.logger != nil {
				d.logger.Warn("pick not published",
					applogger.String("fixture", p.Fixture.Key()), applogger.Error(err))
			}
		}
	}

	return picks, nil
}

func pickFrom(a *models.MatchAnalysis, date string) *models.DailyPick {
	pct := topPct(&a.Prediction)
	return &models.DailyPick{
		Fixture:    a.Fixture,
		HomeTeam:   a.HomeTeam,
		AwayTeam:   a.AwayTeam,
		Pick:       a.Pick,
		PickPct:    pct,
		Edge:       pct * a.Prediction.Confidence.Weight(),
		Confidence: a.Prediction.Confidence,
		Reasons:    a.Prediction.KeyFactors,
		Date:       date,
	}
}
