package rating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/DraughtsGo/internal/config"
)

func TestDefaultRatingMatchesConfig(t *testing.T) {
	r := DefaultRating()
	cfg := config.Settings.Rating
	assert.Equal(t, cfg.DefaultRating, r.Value)
	assert.Equal(t, cfg.DefaultRD, r.RD)
	assert.Equal(t, cfg.DefaultVolatility, r.Volatility)
}

func TestUpdateRatingEmptyResultsOnlyDecaysRD(t *testing.T) {
	current := Rating{Value: 1500, RD: 200, Volatility: 0.06}
	next := UpdateRating(current, nil)
	assert.InDelta(t, current.Value, next.Value, 1e-9)
	assert.Greater(t, next.RD, current.RD)
	assert.Equal(t, current.Volatility, next.Volatility)
}

func TestUpdateRatingMatchesPublishedGlickoExample(t *testing.T) {
	// The worked example from Glickman's Glicko-2 paper: a 1500/200/0.06
	// player facing three opponents.
	current := Rating{Value: 1500, RD: 200, Volatility: 0.06}
	results := []Result{
		{OpponentRating: Rating{Value: 1400, RD: 30}, Score: 1},
		{OpponentRating: Rating{Value: 1550, RD: 100}, Score: 0},
		{OpponentRating: Rating{Value: 1700, RD: 300}, Score: 0},
	}

	next := UpdateRating(current, results)

	assert.InDelta(t, 1464.06, next.Value, 0.5)
	assert.InDelta(t, 151.52, next.RD, 0.5)
	assert.InDelta(t, 0.05999, next.Volatility, 0.0005)
}

func TestUpdateRatingWinAgainstWeakerOpponentIncreasesRating(t *testing.T) {
	current := Rating{Value: 1500, RD: 50, Volatility: 0.06}
	results := []Result{
		{OpponentRating: Rating{Value: 1300, RD: 50}, Score: 1},
	}
	next := UpdateRating(current, results)
	assert.Greater(t, next.Value, current.Value)
}

func TestUpdateRatingLossAgainstStrongerOpponentDecreasesRating(t *testing.T) {
	current := Rating{Value: 1500, RD: 50, Volatility: 0.06}
	results := []Result{
		{OpponentRating: Rating{Value: 1700, RD: 50}, Score: 0},
	}
	next := UpdateRating(current, results)
	assert.Less(t, next.Value, current.Value)
}

func TestApplyRdDecayGrowsUncertaintyOverPeriods(t *testing.T) {
	r := Rating{Value: 1500, RD: 50, Volatility: 0.06}
	decayed := ApplyRdDecay(r, 5)
	assert.Greater(t, decayed.RD, r.RD)
}

func TestApplyRdDecayCapsAtMaxRD(t *testing.T) {
	r := Rating{Value: 1500, RD: 349, Volatility: 0.2}
	decayed := ApplyRdDecay(r, 100)
	assert.LessOrEqual(t, decayed.RD, config.Settings.Rating.MaxRD+1e-9)
}

func TestGAndEAreBounded(t *testing.T) {
	assert.True(t, g(0) == 1)
	assert.True(t, g(5) > 0 && g(5) < 1)
	v := e(0, 0, 0)
	assert.InDelta(t, 0.5, v, 1e-9)
	assert.True(t, e(10, 0, 0.1) > 0.9)
	assert.False(t, math.IsNaN(e(0, 0, 0)))
}
