// Command draughtsgo runs batches of self-play games between search
// difficulty profiles and reports the resulting Glicko-2 rating update.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/DraughtsGo/internal/config"
	"github.com/frankkopp/DraughtsGo/internal/logging"
	"github.com/frankkopp/DraughtsGo/internal/notation"
	"github.com/frankkopp/DraughtsGo/internal/position"
	"github.com/frankkopp/DraughtsGo/internal/rating"
	"github.com/frankkopp/DraughtsGo/internal/rules"
	"github.com/frankkopp/DraughtsGo/internal/search"
	"github.com/frankkopp/DraughtsGo/internal/util"
	. "github.com/frankkopp/DraughtsGo/internal/types"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	whiteProfile := flag.String("white", "medium", "search profile for White\n(easy|medium|hard|expert)")
	blackProfile := flag.String("black", "medium", "search profile for Black\n(easy|medium|hard|expert)")
	games := flag.Int("games", 1, "number of self-play games to run")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "max number of games running at once")
	cpuProfile := flag.Bool("cpuprofile", false, "enable pprof CPU profiling for the run")
	versionInfo := flag.Bool("version", false, "prints version and exits")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	log := logging.GetLog()

	profiles := config.Settings.Search.Profiles()
	white, ok := profiles[*whiteProfile]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown white profile %q\n", *whiteProfile)
		os.Exit(1)
	}
	black, ok := profiles[*blackProfile]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown black profile %q\n", *blackProfile)
		os.Exit(1)
	}

	log.Infof("starting %d game(s), white=%s black=%s, concurrency=%d", *games, white.Name, black.Name, *concurrency)

	cancelled := util.NewBool(false)
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		log.Notice("interrupt received, finishing in-flight games and stopping")
		cancelled.Store(true)
	}()

	results := runBatch(*games, *concurrency, white, black, cancelled)
	report(results, white, black)
}

// gameResult is the outcome of one self-play game, scored from White's
// point of view (1 win, 0.5 draw, 0 loss).
type gameResult struct {
	seed       int64
	plies      int
	phase      GamePhase
	drawReason DrawReason
	winReason  WinReason
	whiteScore float64
	lastMove   string
}

// runBatch plays n games concurrently, bounded to at most concurrency
// games in flight at once. A game already running when cancelled is set
// finishes its current ply and then stops early; a game not yet started
// is skipped.
func runBatch(n, concurrency int, white, black config.Profile, cancelled *util.Bool) []gameResult {
	if concurrency < 1 {
		concurrency = 1
	}
	sem := semaphore.NewWeighted(int64(concurrency))
	results := make([]gameResult, n)
	played := make([]bool, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		if cancelled.Load() {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := sem.Acquire(context.Background(), 1); err != nil {
				return
			}
			defer sem.Release(1)
			if cancelled.Load() {
				return
			}
			results[i] = playGame(int64(i+1), white, black, cancelled)
			played[i] = true
		}(i)
	}
	wg.Wait()
	kept := results[:0]
	for i, r := range results {
		if played[i] {
			kept = append(kept, r)
		}
	}
	return kept
}

// playGame drives one synchronous game to completion by alternately
// calling FindBestMove for the side to move and applying the chosen move
// through the rules engine, which is the only component allowed to
// advance a GameState.
func playGame(seed int64, white, black config.Profile, cancelled *util.Bool) gameResult {
	state := position.InitialGameState()
	for state.Phase == InProgress && !cancelled.Load() {
		profile := white
		if state.ToMove == Black {
			profile = black
		}
		best := search.FindBestMove(&state.Board, state.ToMove, profile, seed+int64(len(state.MoveHistory)))
		if best == nil {
			break
		}
		next, err := rules.ApplyMove(&state, best.Move)
		if err != nil {
			break
		}
		state = next
	}

	whiteScore := 0.5
	switch state.Phase {
	case WhiteWins:
		whiteScore = 1
	case BlackWins:
		whiteScore = 0
	}

	lastMove := ""
	if n := len(state.MoveHistory); n > 0 {
		lastMove = notation.FormatMove(state.MoveHistory[n-1].Move)
	}

	return gameResult{
		seed:       seed,
		plies:      len(state.MoveHistory),
		phase:      state.Phase,
		drawReason: state.DrawReason,
		winReason:  state.WinReason,
		whiteScore: whiteScore,
		lastMove:   lastMove,
	}
}

func report(results []gameResult, white, black config.Profile) {
	whiteWins, blackWins, draws := 0, 0, 0
	whiteResults := make([]rating.Result, 0, len(results))
	blackResults := make([]rating.Result, 0, len(results))
	blackDefault := rating.DefaultRating()
	whiteDefault := rating.DefaultRating()

	for _, r := range results {
		switch r.whiteScore {
		case 1:
			whiteWins++
		case 0:
			blackWins++
		default:
			draws++
		}
		whiteResults = append(whiteResults, rating.Result{OpponentRating: blackDefault, Score: r.whiteScore})
		blackResults = append(blackResults, rating.Result{OpponentRating: whiteDefault, Score: 1 - r.whiteScore})
	}

	out.Printf("played %d games: white(%s) %d  black(%s) %d  draws %d\n",
		len(results), white.Name, whiteWins, black.Name, blackWins, draws)

	if len(results) > 0 {
		whiteNext := rating.UpdateRating(whiteDefault, whiteResults)
		blackNext := rating.UpdateRating(blackDefault, blackResults)
		out.Printf("white rating delta: %.1f -> %.1f (RD %.1f)\n", whiteDefault.Value, whiteNext.Value, whiteNext.RD)
		out.Printf("black rating delta: %.1f -> %.1f (RD %.1f)\n", blackDefault.Value, blackNext.Value, blackNext.RD)
	}

	for _, r := range results {
		out.Printf("  game seed=%d plies=%d result=%s draw=%s win=%s last=%s\n",
			r.seed, r.plies, r.phase, r.drawReason, r.winReason, r.lastMove)
	}
}

func printVersionInfo() {
	out.Println("DraughtsGo - an International Draughts engine core")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
	out.Println(util.MemStat())
}
