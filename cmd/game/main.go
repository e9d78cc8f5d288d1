// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/metrics"
	"go-path-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaMs := float64(now.Sub(a.lastUpdateTime)) / float64(time.Millisecond)
	if deltaMs > config.MaxDeltaMs {
		deltaMs = config.MaxDeltaMs
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaMs)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config (default: $TD_CONFIG, then built-in)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	debugAddr := flag.String("debug-addr", "localhost:6060", "pprof and /metrics address, empty to disable")
	startFromGame := flag.Bool("skip-menu", true, "start the game right away instead of the menu")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		logging.Error("%v", err)
		os.Exit(2)
	}
	logging.SetLevel(level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}

	// Метрики текущей сессии; после рестарта подменяются новыми
	var recorder atomic.Pointer[metrics.Recorder]
	onSession := func(sim *app.Simulation) {
		rec := metrics.NewRecorder(sim.SessionID.String())
		rec.SetEconomy(sim.Economy().Money(), sim.Economy().Lives())
		sim.SubscribeAll(rec)
		recorder.Store(rec)
	}

	if *debugAddr != "" {
		http.Handle("/metrics", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recorder.Load()
			if rec == nil {
				http.Error(w, "no game session", http.StatusServiceUnavailable)
				return
			}
			rec.Handler().ServeHTTP(w, r)
		}))
		go func() {
			logging.Info("debug server (pprof, /metrics) on %s", *debugAddr)
			if err := http.ListenAndServe(*debugAddr, nil); err != nil {
				logging.Error("debug server: %v", err)
			}
		}()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *startFromGame {
		game, err := state.NewGameState(sm, cfg, onSession)
		if err != nil {
			logging.Error("%v", err)
			os.Exit(1)
		}
		sm.SetState(game)
	} else {
		sm.SetState(state.NewMenuState(sm, cfg, onSession))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(a); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}
