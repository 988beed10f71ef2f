package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/logging"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/session"
	"github.com/vancomm/sweeper/internal/timer"
)

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Adopt(mines.Log, log)

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	game, err := session.New(cfg.Board, mines.NewRand(), log)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}
	clock := timer.New(game, cfg.Timer.Interval)
	con := console.New(os.Stdin, os.Stdout, game, clock, log)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return clock.Run(gCtx)
	})
	g.Go(func() error {
		return con.Run(gCtx)
	})

	err = g.Wait()
	switch {
	case err == nil, errors.Is(err, console.ErrQuit), errors.Is(err, context.Canceled):
		log.WithFields(logrus.Fields{
			"status":  game.Status().String(),
			"elapsed": clock.Elapsed(),
		}).Info("bye")
	default:
		log.Errorf("exit reason: %s", err)
		os.Exit(1)
	}
}
