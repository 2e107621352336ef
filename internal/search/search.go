// Package search implements the engine's move-finding core: iterative
// deepening NegaMax with fail-soft alpha-beta, an optional transposition
// table, killer-move ordering, and a blunder policy applied at the root
// to give lower difficulty profiles a human-like miss rate.
package search

import (
	"math/rand"
	"sort"
	"time"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/frankkopp/DraughtsGo/internal/config"
	"github.com/frankkopp/DraughtsGo/internal/evaluator"
	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/movegen"
	"github.com/frankkopp/DraughtsGo/internal/position"
	"github.com/frankkopp/DraughtsGo/internal/transpositiontable"
	. "github.com/frankkopp/DraughtsGo/internal/types"
	"github.com/frankkopp/DraughtsGo/internal/zobrist"
)

var log *logging.Logger

func init() {
	log = myLogging.GetSearchLog()
}

// infinity bounds the alpha-beta window; it is kept well clear of the
// evaluator's terminal shortcut values so negation never overflows.
const infinity = 1 << 30

// Result is what FindBestMove returns for a completed (or time-aborted)
// search.
type Result struct {
	Move         Move
	Score        int
	DepthReached int
	Nodes        uint64
	Aborted      bool
}

// state carries everything one FindBestMove call needs threaded through
// the recursive search; a fresh state is built per call so concurrent
// searches never share mutable state.
type state struct {
	log      *logging.Logger
	profile  config.Profile
	tt       *transpositiontable.TtTable
	killers  *killerTable
	rng      *rand.Rand
	deadline time.Time
	aborted  bool
	stats    Statistics
}

func newState(profile config.Profile, seed int64) *state {
	var tt *transpositiontable.TtTable
	if profile.UseTT {
		entrySize := int(unsafe.Sizeof(transpositiontable.TtEntry{}))
		bytes := config.Settings.Search.TTSizeMB * 1024 * 1024
		entries := bytes / entrySize
		tt = transpositiontable.NewTtTable(entries)
	}
	var killers *killerTable
	if profile.UseKillers {
		killers = newKillerTable(profile.MaxDepth + 1)
	}
	return &state{
		log:     log,
		profile: profile,
		tt:      tt,
		killers: killers,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// FindBestMove searches board for player under the given difficulty
// profile and returns the chosen move, or nil if player has no legal
// moves. seed makes the search's internal randomness (leaf noise and the
// blunder policy) reproducible for a given call.
func FindBestMove(board *position.Board, player Color, profile config.Profile, seed int64) *Result {
	legalMoves := movegen.GenerateLegalMoves(board, player)
	if len(legalMoves) == 0 {
		return nil
	}
	if len(legalMoves) == 1 {
		return &Result{Move: legalMoves[0], Score: evaluator.QuickEvaluate(board, player), DepthReached: 0}
	}

	s := newState(profile, seed)
	s.deadline = time.Now().Add(profile.TimeLimit)
	s.log.Debugf("search start profile=%s maxDepth=%d timeLimit=%s", profile.Name, profile.MaxDepth, profile.TimeLimit)

	var best Result
	for depth := 1; depth <= profile.MaxDepth; depth++ {
		s.aborted = false
		score, idx := s.negamax(board, player, depth, -infinity, infinity)
		if s.aborted {
			break
		}
		best = Result{Move: legalMoves[idx], Score: score, DepthReached: depth, Nodes: s.stats.NodesVisited}
		if time.Now().After(s.deadline) {
			break
		}
	}

	return applyBlunderPolicy(board, player, profile, legalMoves, best, s.rng)
}

// negamax returns the score of board from player's perspective at the
// given remaining depth, and the index (into a fresh GenerateLegalMoves
// call on the same board/player) of the move that produced it. Returning
// an index rather than a Move lets a TT entry seed move ordering on a
// later probe without storing a move value in the entry.
func (s *state) negamax(board *position.Board, player Color, depth, alpha, beta int) (int, int) {
	s.stats.NodesVisited++
	if s.stats.NodesVisited%config.Settings.Search.TimeCheckInterval == 0 && time.Now().After(s.deadline) {
		s.aborted = true
	}
	if s.aborted {
		return 0, -1
	}

	if depth == 0 {
		s.stats.LeafEvaluations++
		score := evaluator.Evaluate(board, player, s.profile.FeatureScale)
		if s.profile.NoiseAmp > 0 {
			amp := float64(s.profile.NoiseAmp)
			score += int(s.rng.Float64()*amp - amp/2)
		}
		return score, -1
	}

	legalMoves := movegen.GenerateLegalMoves(board, player)
	if len(legalMoves) == 0 {
		return -config.Settings.Eval.TerminalWin, -1
	}

	key := zobrist.PositionKey(board, player)
	originalAlpha := alpha
	ttBestIndex := -1
	if s.tt != nil {
		if entry, ok := s.tt.Probe(key); ok {
			if entry.Depth >= depth {
				switch entry.Kind {
				case transpositiontable.Exact:
					return entry.Score, entry.BestMoveIndex
				case transpositiontable.LowerBound:
					if entry.Score > alpha {
						alpha = entry.Score
					}
				case transpositiontable.UpperBound:
					if entry.Score < beta {
						beta = entry.Score
					}
				}
				if alpha >= beta {
					return entry.Score, entry.BestMoveIndex
				}
			}
			ttBestIndex = entry.BestMoveIndex
		}
	}

	ordered := s.orderMoves(board, player, depth, legalMoves, ttBestIndex)

	bestScore := -infinity
	bestIndex := ordered[0].idx
	for _, cand := range ordered {
		child := movegen.ApplyMoveToBoard(*board, cand.move)
		value, _ := s.negamax(&child, player.Flip(), depth-1, -beta, -alpha)
		if s.aborted {
			return 0, -1
		}
		score := -value
		if score > bestScore {
			bestScore = score
			bestIndex = cand.idx
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.BetaCuts++
			if !cand.move.IsCapture() && s.killers != nil {
				s.killers.record(depth, cand.move.Signature())
			}
			break
		}
	}

	if s.tt != nil {
		kind := transpositiontable.Exact
		switch {
		case bestScore <= originalAlpha:
			kind = transpositiontable.UpperBound
		case bestScore >= beta:
			kind = transpositiontable.LowerBound
		}
		s.tt.Store(key, bestScore, depth, kind, bestIndex)
	}

	return bestScore, bestIndex
}

type scoredMove struct {
	idx   int
	move  Move
	score int
}

// orderMoves scores each legal move by the priority table the search
// uses to visit the most promising candidates first: the TT's
// recollection of the best move, then captures by size, then killer
// moves for this depth, then a quick material estimate of the child
// position.
func (s *state) orderMoves(board *position.Board, player Color, depth int, legalMoves []Move, ttBestIndex int) []scoredMove {
	scored := make([]scoredMove, len(legalMoves))
	for i, m := range legalMoves {
		var sc int
		switch {
		case i == ttBestIndex:
			sc = 1_000_000
		case m.IsCapture():
			sc = 500_000 + 1_000*m.CaptureCount()
		case s.killers != nil && s.killers.matches(depth, 0, m.Signature()):
			sc = 400_000
		case s.killers != nil && s.killers.matches(depth, 1, m.Signature()):
			sc = 399_000
		default:
			child := movegen.ApplyMoveToBoard(*board, m)
			sc = evaluator.QuickEvaluate(&child, player)
		}
		scored[i] = scoredMove{idx: i, move: m, score: sc}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	return scored
}
