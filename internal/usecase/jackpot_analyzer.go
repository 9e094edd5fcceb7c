package usecase

import (
	"context"

	"PitchCast/internal/domain/models"
	drepo "PitchCast/internal/domain/repository"
	applogger "PitchCast/pkg/logger"
)

// JackpotAnalyzer analyzes a multi-match slate. One failing fixture does not
// sink the slate; it is skipped and counted.
type JackpotAnalyzer struct {
	analyzer  *MatchAnalyzer
	publisher drepo.PickPublisher
	logger    *applogger.Logger
}

func NewJackpotAnalyzer(analyzer *MatchAnalyzer, publisher drepo.PickPublisher, logger *applogger.Logger) *JackpotAnalyzer {
	return &JackpotAnalyzer{analyzer: analyzer, publisher: publisher, logger: logger}
}

// SlateResult is the full jackpot output.
type SlateResult struct {
	Name     string                  `json:"name"`
	Analyses []*models.MatchAnalysis `json:"analyses"`
	Summary  models.JackpotSummary   `json:"summary"`
	Skipped  int                     `json:"skipped,omitempty"`
}

// AnalyzeSlate analyzes every fixture in the slate and aggregates a summary.
func (j *JackpotAnalyzer) AnalyzeSlate(ctx context.Context, name string, fixtures []models.Fixture) (*SlateResult, error) {
	result := &SlateResult{
		Name:     name,
		Analyses: make([]*models.MatchAnalysis, 0, len(fixtures)),
		Summary: models.JackpotSummary{
			PickCounts: map[string]int{"1": 0, "X": 0, "2": 0},
		},
	}

	var topPctSum float64
	for _, f := range fixtures {
		a, err := j.analyzer.Analyze(ctx, f)
		if err != nil {
			result.Skipped++
			if j.logger != nil {
				j.logger.Warn("fixture skipped in slate",
					applogger.String("fixture", f.Key()), applogger.Error(err))
			}
			continue
		}

		result.Analyses = append(result.Analyses, a)
		result.Summary.Fixtures++
		result.Summary.PickCounts[a.Pick]++
		if a.Prediction.Confidence == models.ConfidenceHigh {
			result.Summary.HighConfidence++
		}
		topPctSum += topPct(&a.Prediction)

		if j.publisher != nil {
			if err := j.publisher.PublishAnalysis(ctx, a); err != nil && j.logger != nil {
				j.logger.Warn("analysis not published",
					applogger.String("fixture", f.Key()), applogger.Error(err))
			}
		}
	}

	if result.Summary.Fixtures > 0 {
		result.Summary.AvgTopPct = topPctSum / float64(result.Summary.Fixtures)
	}
	return result, nil
}

func topPct(p *models.Prediction) float64 {
	top := p.HomeWinPct
	if p.DrawPct > top {
		top = p.DrawPct
	}
	if p.AwayWinPct > top {
		top = p.AwayWinPct
	}
	return top
}
