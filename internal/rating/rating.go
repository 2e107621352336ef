// Package rating implements the Glicko-2 rating update used to track
// player and engine-profile strength across games. It has no dependency
// on the rest of the engine; it is a pure numeric procedure over a
// player's current rating and a batch of game results.
package rating

import (
	"math"

	"github.com/frankkopp/DraughtsGo/internal/config"
)

// Rating is a player's rating state on the familiar Glicko-1 scale.
type Rating struct {
	Value      float64
	RD         float64
	Volatility float64
}

// Result is one game outcome against an opponent, scored 1 for a win,
// 0.5 for a draw, 0 for a loss.
type Result struct {
	OpponentRating Rating
	Score          float64
}

// DefaultRating returns the rating assigned to a player with no game
// history.
func DefaultRating() Rating {
	cfg := config.Settings.Rating
	return Rating{Value: cfg.DefaultRating, RD: cfg.DefaultRD, Volatility: cfg.DefaultVolatility}
}

// scaled is a rating expressed on the Glicko-2 internal (mu, phi) scale.
type scaled struct {
	mu  float64
	phi float64
}

func toScaled(r Rating) scaled {
	scale := config.Settings.Rating.GlickoScale
	return scaled{mu: (r.Value - 1500) / scale, phi: r.RD / scale}
}

func (s scaled) toRating(volatility float64) Rating {
	scale := config.Settings.Rating.GlickoScale
	maxRD := config.Settings.Rating.MaxRD
	rd := s.phi * scale
	if rd > maxRD {
		rd = maxRD
	}
	return Rating{Value: s.mu*scale + 1500, RD: rd, Volatility: volatility}
}

// g dampens an opponent's rating impact by how uncertain that opponent's
// own rating is.
func g(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

// e is the expected score of a player rated mu against an opponent rated
// muJ with uncertainty phiJ.
func e(mu, muJ, phiJ float64) float64 {
	return 1 / (1 + math.Exp(-g(phiJ)*(mu-muJ)))
}

// UpdateRating runs the published Glicko-2 procedure over current and a
// batch of game results, returning the player's new rating. An empty
// results batch only decays RD for the passage of one rating period.
func UpdateRating(current Rating, results []Result) Rating {
	cfg := config.Settings.Rating
	self := toScaled(current)

	if len(results) == 0 {
		phiStar := math.Sqrt(self.phi*self.phi + current.Volatility*current.Volatility)
		return scaled{mu: self.mu, phi: phiStar}.toRating(current.Volatility)
	}

	variance := glickoVariance(self, results)
	delta := glickoDelta(self, results, variance)

	sigmaPrime := solveVolatility(self.phi, current.Volatility, variance, delta, cfg.Tau, cfg.Epsilon)

	phiStar := math.Sqrt(self.phi*self.phi + sigmaPrime*sigmaPrime)
	phiPrime := 1 / math.Sqrt(1/(phiStar*phiStar)+1/variance)

	sum := 0.0
	for _, res := range results {
		opp := toScaled(res.OpponentRating)
		sum += g(opp.phi) * (res.Score - e(self.mu, opp.mu, opp.phi))
	}
	muPrime := self.mu + phiPrime*phiPrime*sum

	return scaled{mu: muPrime, phi: phiPrime}.toRating(sigmaPrime)
}

// ApplyRdDecay advances a rating through periods rating periods with no
// games played, growing RD (capped at max_rd) to reflect accumulating
// uncertainty.
func ApplyRdDecay(r Rating, periods int) Rating {
	self := toScaled(r)
	phi := self.phi
	for i := 0; i < periods; i++ {
		phi = math.Sqrt(phi*phi + r.Volatility*r.Volatility)
	}
	return scaled{mu: self.mu, phi: phi}.toRating(r.Volatility)
}

func glickoVariance(self scaled, results []Result) float64 {
	sum := 0.0
	for _, res := range results {
		opp := toScaled(res.OpponentRating)
		gPhi := g(opp.phi)
		expected := e(self.mu, opp.mu, opp.phi)
		sum += gPhi * gPhi * expected * (1 - expected)
	}
	return 1 / sum
}

func glickoDelta(self scaled, results []Result, variance float64) float64 {
	sum := 0.0
	for _, res := range results {
		opp := toScaled(res.OpponentRating)
		sum += g(opp.phi) * (res.Score - e(self.mu, opp.mu, opp.phi))
	}
	return variance * sum
}

// solveVolatility finds sigma' via the Illinois variant of regula falsi
// described in the Glicko-2 paper: f is monotonic on the bracket, and
// Illinois halves whichever endpoint's function value keeps the same
// sign across iterations so the bracket shrinks reliably instead of
// stalling the way plain regula falsi can.
func solveVolatility(phi, sigma, variance, delta, tau, epsilon float64) float64 {
	a := math.Log(sigma * sigma)
	f := func(x float64) float64 {
		ex := math.Exp(x)
		num := ex * (delta*delta - phi*phi - variance - ex)
		den := 2 * (phi*phi + variance + ex) * (phi*phi + variance + ex)
		return num/den - (x-a)/(tau*tau)
	}

	A := a
	var B float64
	if delta*delta > phi*phi+variance {
		B = math.Log(delta*delta - phi*phi - variance)
	} else {
		k := 1.0
		for f(a-k*tau) < 0 {
			k++
		}
		B = a - k*tau
	}

	fA := f(A)
	fB := f(B)
	for math.Abs(B-A) > epsilon {
		C := A + (A-B)*fA/(fB-fA)
		fC := f(C)
		if fC*fB < 0 {
			A, fA = B, fB
		} else {
			fA /= 2
		}
		B, fB = C, fC
	}

	return math.Exp(A / 2)
}
