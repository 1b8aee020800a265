// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"forest-guardians/internal/app"
	"forest-guardians/internal/config"
	"forest-guardians/internal/state"
	"forest-guardians/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		balancePath string
		seed        int64
		skipMenu    bool
		pprofAddr   string
	)
	flag.StringVar(&balancePath, "balance", "configs/balance.yaml", "Path to a YAML balance file (empty for defaults)")
	flag.Int64Var(&seed, "seed", 0, "Simulation seed (0 for random)")
	flag.BoolVar(&skipMenu, "skip-menu", false, "Start directly in the game")
	flag.StringVar(&pprofAddr, "pprof", "", "Serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger.Init()

	if pprofAddr != "" {
		go func() {
			logger.Log.WithError(http.ListenAndServe(pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	balance, err := config.LoadBalance(balancePath)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load balance")
	}
	game, err := app.NewGame(balance, seed)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create game")
	}

	sm := state.NewStateMachine()
	if skipMenu {
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, game))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Forest Guardians")
	if err := ebiten.RunGame(a); err != nil {
		logger.Log.WithError(err).Fatal("game loop failed")
	}
}
