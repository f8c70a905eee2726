package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/letterfall/game"
)

func main() {
	width := flag.Int("width", game.DefaultWidth, "Board width in columns.")
	height := flag.Int("height", game.DefaultHeight, "Board height in rows.")
	threshold := flag.Int("threshold", game.DefaultMatchThreshold, "Minimum run length that clears.")
	letters := flag.String("letters", "ABC", "Alphabet the letter source draws from.")
	logPath := flag.String("log", "", "Write a debug log to this file (stdout belongs to the screen).")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	logger := zap.NewNop()
	if *logPath != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logPath}
		cfg.ErrorOutputPaths = []string{*logPath}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer logger.Sync()
	}

	alphabet := make([]game.Symbol, 0, len(*letters))
	for _, r := range *letters {
		alphabet = append(alphabet, game.Symbol(r))
	}

	app, err := newApp(game.Config{
		Width:          *width,
		Height:         *height,
		MatchThreshold: *threshold,
		Letters:        game.NewRandomSource(alphabet),
	}, logger, !*mute)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err := app.run(); err != nil {
		app.screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	app.screen.Fini()
	fmt.Printf("Thanks for playing! Final score: %d over %d turns.\n", app.session.Score(), app.session.Turn())
}

type app struct {
	screen  tcell.Screen
	session *game.Session
	logger  *zap.Logger
	audio   bool
}

func newApp(cfg game.Config, logger *zap.Logger, sound bool) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	a := &app{
		screen:  screen,
		session: game.NewSession(cfg),
		logger:  logger,
	}

	if sound {
		if err := a.initAudio(); err != nil {
			// Non-fatal, the game can run without sound.
			logger.Warn("audio initialization failed", zap.Error(err))
		}
	}
	return a, nil
}

func (a *app) run() error {
	for {
		a.draw()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			cmd, ok := commandForKey(ev)
			if !ok {
				continue
			}
			if cmd == game.CmdQuit {
				return nil
			}
			res, err := a.session.Apply(cmd)
			if err != nil {
				return err
			}
			if cmd == game.CmdDrop {
				a.logger.Info("drop",
					zap.Int("column", a.session.Cursor()),
					zap.Bool("placed", res.Placed),
					zap.Int("destroyed", res.Destroyed),
					zap.Int("scoreDelta", res.ScoreDelta),
					zap.Int("depth", res.Depth),
					zap.Int("score", a.session.Score()),
				)
				if res.Destroyed > 0 {
					a.playClearSound(res.Depth)
				}
			}
		}
	}
}

func commandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CmdMoveLeft, true
	case tcell.KeyRight:
		return game.CmdMoveRight, true
	case tcell.KeyEnter, tcell.KeyDown:
		return game.CmdDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return game.CmdMoveLeft, true
		case 'l':
			return game.CmdMoveRight, true
		case 'i', ' ':
			return game.CmdDrop, true
		case 'x', 'q':
			return game.CmdQuit, true
		}
	}
	return 0, false
}
