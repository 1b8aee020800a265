package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/server"
	"forest-guardians/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var (
		addr        string
		balancePath string
		seed        int64
		tickRate    int
	)
	flag.StringVar(&addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&balancePath, "balance", "", "Path to a YAML balance file (empty for defaults)")
	flag.Int64Var(&seed, "seed", 0, "Simulation seed (0 for random)")
	flag.IntVar(&tickRate, "tick-rate", 30, "Simulation ticks per second")
	flag.Parse()

	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load balance")
	}
	if tickRate <= 0 {
		logger.Log.Fatal("tick-rate must be positive")
	}

	game, err := app.NewGame(balance, seed)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create game")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := app.NewSession(game, time.Second/time.Duration(tickRate))
	go func() {
		if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.WithError(err).Error("session stopped")
		}
	}()

	hub := server.NewHub(session, time.Second/config.BroadcastRateFPS)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: server.SetupRouter(session, hub),
	}
	go func() {
		logger.Log.WithField("addr", addr).Info("Forest Guardians server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("server start error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("graceful shutdown failed")
	}
	logger.Log.Info("Done.")
}
