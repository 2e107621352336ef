// Package evaluator scores a draughts position from one player's point of
// view: material, always unscaled, plus a set of positional heuristics
// that get multiplied by a caller-supplied feature scale so difficulty
// profiles can dial positional awareness up or down without touching
// material weighting.
package evaluator

import (
	"math"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/DraughtsGo/internal/board"
	"github.com/frankkopp/DraughtsGo/internal/config"
	myLogging "github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/movegen"
	"github.com/frankkopp/DraughtsGo/internal/position"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

var log *logging.Logger
var out = message.NewPrinter(language.German)

func init() {
	log = myLogging.GetLog()
}

var centerSquares = buildSquareSet(17, 18, 19, 22, 23, 24, 27, 28, 29, 32, 33, 34)
var innerCenterSquares = buildSquareSet(22, 23, 24, 28, 29)

func buildSquareSet(squares ...int) [SqLength]bool {
	var set [SqLength]bool
	for _, s := range squares {
		set[s] = true
	}
	return set
}

// Evaluate returns a centipawn-like score of board from player's point of
// view. Positional terms are multiplied by featureScale (expected in
// [0.0, 1.0]); material is always applied at full weight.
func Evaluate(b *position.Board, player Color, featureScale float64) int {
	cfg := config.Settings.Eval
	opponent := player.Flip()

	playerMen, playerKings := colorCounts(b, player)
	opponentMen, opponentKings := colorCounts(b, opponent)

	if opponentMen+opponentKings == 0 {
		return cfg.TerminalWin
	}
	if playerMen+playerKings == 0 {
		return -cfg.TerminalWin
	}

	material := materialScore(playerMen, playerKings, opponentMen, opponentKings)
	positional := featureSum(b, player) - featureSum(b, opponent)
	positional += endgameKingAdvantage(b, player, opponent, playerKings, opponentKings)

	return material + int(math.Round(positional*featureScale))
}

// QuickEvaluate returns material only, used by the search kernel for move
// ordering where a full positional pass would be too slow to run on every
// candidate.
func QuickEvaluate(b *position.Board, player Color) int {
	opponent := player.Flip()
	playerMen, playerKings := colorCounts(b, player)
	opponentMen, opponentKings := colorCounts(b, opponent)
	return materialScore(playerMen, playerKings, opponentMen, opponentKings)
}

func materialScore(playerMen, playerKings, opponentMen, opponentKings int) int {
	cfg := config.Settings.Eval
	score := (playerMen-opponentMen)*cfg.ManValue + (playerKings-opponentKings)*cfg.KingValue
	if playerKings > 0 && opponentKings == 0 {
		score += cfg.FirstKingBonus
	} else if opponentKings > 0 && playerKings == 0 {
		score -= cfg.FirstKingBonus
	}
	return score
}

func colorCounts(b *position.Board, c Color) (men, kings int) {
	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc == PieceNone || pc.ColorOf() != c {
			continue
		}
		if pc.TypeOf() == Man {
			men++
		} else {
			kings++
		}
	}
	return men, kings
}

// featureSum adds up the positional terms that are scored per color: a
// piece belonging to c contributes to its own side's sum, and Evaluate
// takes the difference between the two sides' sums. This keeps the
// function symmetric under a color swap plus a board mirror, except for
// the inner-center bonus: its square set contains 24 but not 27, the
// square 24 maps to under that mirror.
func featureSum(b *position.Board, c Color) float64 {
	cfg := config.Settings.Eval
	var sum float64

	var left, right int
	var manMobility, kingMobility int
	var manCount, kingCount int

	for sq := Square(1); sq <= NumSquares; sq++ {
		pc := b.Get(sq)
		if pc == PieceNone || pc.ColorOf() != c {
			continue
		}
		row, col := sq.RowOf(), sq.ColOf()

		if centerSquares[sq] {
			sum += float64(cfg.CenterControl)
		}
		if innerCenterSquares[sq] {
			sum += float64(cfg.InnerCenterBonus)
		}
		if col < 5 {
			left++
		} else {
			right++
		}
		if row == col || row+col == 9 {
			sum += float64(cfg.TempoMainDiagonal)
		}
		if hasSameColorNeighbor(b, sq, pc) {
			sum += float64(cfg.PieceStructureConnect)
		}

		switch pc.TypeOf() {
		case Man:
			manCount++
			sum += float64(advancementRows(c, row) * cfg.AdvancementPerRow)
			if row == backRow(c) {
				sum += float64(cfg.BackRowHold)
			}
			if isRunawayCorridor(b, sq, pc) {
				sum += float64(cfg.RunawayManBonus)
			}
		case King:
			kingCount++
			sum += float64(centralizationValue(row, col) * cfg.KingCentralization)
		}
	}

	manMobility = movegen.QuietMoveCount(b, c, Man)
	kingMobility = movegen.QuietMoveCount(b, c, King)
	sum += float64(manMobility * cfg.ManMobility)
	sum += float64(kingMobility * cfg.KingMobility)

	imbalance := left - right
	if imbalance < 0 {
		imbalance = -imbalance
	}
	sum += float64(imbalance * cfg.LeftRightImbalance)

	if manMobility+kingMobility <= 2 && manCount+kingCount > 2 {
		sum += float64(cfg.LockedPositionPenalty)
	}

	return sum
}

func backRow(c Color) int {
	if c == White {
		return 0
	}
	return 9
}

// advancementRows returns how many rows a man of color c has moved from
// its own back row.
func advancementRows(c Color, row int) int {
	if c == White {
		return row
	}
	return 9 - row
}

func centralizationValue(row, col int) int {
	dist := math.Abs(float64(row)-4.5) + math.Abs(float64(col)-4.5)
	return int(math.Round(7 - dist))
}

func hasSameColorNeighbor(b *position.Board, sq Square, pc Piece) bool {
	for dir := Direction(0); dir < DirectionLength; dir++ {
		n := board.Adjacent(sq, dir)
		if n == SqNone {
			continue
		}
		if np := b.Get(n); np != PieceNone && np.ColorOf() == pc.ColorOf() {
			return true
		}
	}
	return false
}

// isRunawayCorridor reports whether the man on sq has a clear path to
// promotion: the promotion row is within 4 rows and both of its forward
// diagonals are free of enemy pieces all the way to the edge.
func isRunawayCorridor(b *position.Board, sq Square, pc Piece) bool {
	cfg := config.Settings.Eval
	c := pc.ColorOf()
	distance := pc.ColorOf().PromotionRow() - sq.RowOf()
	if distance < 0 {
		distance = -distance
	}
	if distance > cfg.RunawayMaxDistance {
		return false
	}
	for _, dir := range c.ForwardDirections() {
		for _, s := range board.Ray(sq, dir) {
			if other := b.Get(s); other != PieceNone && other.ColorOf() != c {
				return false
			}
		}
	}
	return true
}

// endgameKingAdvantage rewards a net king lead once the total piece count
// on the board has dropped to an endgame-sized material balance.
func endgameKingAdvantage(b *position.Board, player, opponent Color, playerKings, opponentKings int) float64 {
	cfg := config.Settings.Eval
	playerMen, _ := colorCounts(b, player)
	opponentMen, _ := colorCounts(b, opponent)
	total := playerMen + playerKings + opponentMen + opponentKings
	if total > cfg.EndgamePieceCountLimit {
		return 0
	}
	return float64((playerKings - opponentKings) * cfg.EndgameKingAdvantage)
}

// Report renders a short diagnostic dump of a position: the board, the
// material-only quick evaluation and the full evaluation.
func Report(b *position.Board, player Color, featureScale float64) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("%s\n", b.String()))
	report.WriteString(out.Sprintf("Player       : %s\n", player))
	report.WriteString(out.Sprintf("Feature scale: %.2f\n", featureScale))
	report.WriteString(out.Sprintf("Quick eval   : %d\n", QuickEvaluate(b, player)))
	report.WriteString(out.Sprintf("Full eval    : %d\n", Evaluate(b, player, featureScale)))
	return report.String()
}
