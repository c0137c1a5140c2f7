package main

import (
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-solver/internal/game"
	"github.com/vancomm/minesweeper-solver/internal/mines"
	"github.com/vancomm/minesweeper-solver/internal/solver"
)

var (
	log = logrus.New()

	width   int
	height  int
	count   int
	games   int
	seed    uint64
	verbose bool
	logfile string
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&count, "mines", 10, "mine count")
	flag.IntVar(&games, "games", 1, "number of games to play")
	flag.Uint64Var(&seed, "seed", 0, "rng seed (0 picks one at random)")
	flag.BoolVar(&verbose, "v", false, "log every move")
	flag.StringVar(&logfile, "logfile", "", "also write logs to a rotated file")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logfile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logfile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to open log file: ", err)
		}
		log.AddHook(hook)
	}
}

func main() {
	flag.Parse()
	setupLogging()

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rnd := rand.New(rand.NewPCG(seed, seed))

	params := mines.GameParams{Width: width, Height: height, MineCount: count}
	if err := params.Validate(); err != nil {
		log.Fatal("bad game parameters: ", err)
	}

	log.WithFields(logrus.Fields{
		"params": params.String(),
		"games":  games,
		"seed":   seed,
	}).Info("starting")

	won := 0
	for i := range games {
		board, err := mines.NewBoard(params, rnd)
		if err != nil {
			log.Fatal("unable to generate board: ", err)
		}

		var onMove func(p game.Playthrough) error
		if verbose {
			onMove = func(p game.Playthrough) error {
				m := p.Moves[len(p.Moves)-1]
				log.WithFields(logrus.Fields{
					"game":  i,
					"cell":  m.Cell.String(),
					"guess": m.Guess,
					"count": m.Count,
				}).Debug("move")
				return nil
			}
		}

		p, err := game.Play(board, solver.New(width, height, rnd), onMove)
		if err != nil {
			log.Fatal("playthrough failed: ", err)
		}
		if p.Won {
			won++
		}

		log.WithFields(logrus.Fields{
			"game":    i,
			"won":     p.Won,
			"moves":   len(p.Moves),
			"guesses": p.GuessCount(),
		}).Info("game over")

		if verbose {
			os.Stdout.WriteString(p.Grid.ToString(width) + "\n")
		}
	}

	log.WithFields(logrus.Fields{
		"played":   games,
		"won":      won,
		"win_rate": float64(won) / float64(games),
	}).Info("done")
}
