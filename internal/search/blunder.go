package search

import (
	"math/rand"

	"github.com/frankkopp/DraughtsGo/internal/config"
	"github.com/frankkopp/DraughtsGo/internal/evaluator"
	"github.com/frankkopp/DraughtsGo/internal/movegen"
	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

// applyBlunderPolicy gives lower difficulty profiles a chance to swap the
// search's preferred root move for a near-as-good alternative, the way a
// weaker human player might miss the objectively best move without
// playing an outright bad one.
func applyBlunderPolicy(board *position.Board, player Color, profile config.Profile, legalMoves []Move, best Result, rng *rand.Rand) *Result {
	if profile.BlunderProb <= 0 || rng.Float64() >= profile.BlunderProb {
		return &best
	}

	type staticMove struct {
		move  Move
		score int
	}
	statics := make([]staticMove, len(legalMoves))
	bestStatic := -infinity
	for i, m := range legalMoves {
		child := movegen.ApplyMoveToBoard(*board, m)
		score := evaluator.Evaluate(&child, player, profile.FeatureScale)
		statics[i] = staticMove{move: m, score: score}
		if score > bestStatic {
			bestStatic = score
		}
	}

	var candidates []staticMove
	for _, sm := range statics {
		if sm.move.Equals(best.Move) {
			continue
		}
		if bestStatic-sm.score <= profile.BlunderMargin {
			candidates = append(candidates, sm)
		}
	}
	if len(candidates) == 0 {
		return &best
	}

	chosen := candidates[rng.Intn(len(candidates))]
	return &Result{Move: chosen.move, Score: chosen.score, DepthReached: best.DepthReached, Nodes: best.Nodes}
}
