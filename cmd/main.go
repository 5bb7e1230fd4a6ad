package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/sea-battle/api"
	"github.com/saeidalz13/sea-battle/db"
	"github.com/saeidalz13/sea-battle/db/sqlc"
	"github.com/saeidalz13/sea-battle/internal"
	"github.com/saeidalz13/sea-battle/internal/analytics"
	"github.com/saeidalz13/sea-battle/internal/config"
	"github.com/saeidalz13/sea-battle/internal/console"
	mb "github.com/saeidalz13/sea-battle/models/battleship"
	mc "github.com/saeidalz13/sea-battle/models/connection"
)

const spectatorCleanupInterval = time.Minute * 5

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "level", cfg.LogLevel, "err", err)
	}
	log.SetLevel(level)

	seed := cfg.RngSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Debug("random source seeded", "seed", seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameManager := mb.NewBattleshipGameManager()
	narrator := console.NewNarrator(os.Stdout)
	notifiers := mb.Notifiers{narrator}

	if cfg.DatabaseUrl != "" {
		conn := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer conn.Close()

		dbManager := sqlc.NewDbManager(sqlc.New(conn))
		notifiers = append(notifiers, analytics.NewRecorder(dbManager.Analytics, internal.HostIpNet()))
		log.Info("match analytics enabled")
	}

	if cfg.SpectatePort != 0 {
		sessionManager := mc.NewSpectatorSessionManager(spectatorCleanupInterval)
		go sessionManager.CleanupPeriodically(ctx)

		requestProcessor := api.NewRequestProcessor(sessionManager, gameManager)
		notifiers = append(notifiers, requestProcessor)

		mux := http.NewServeMux()
		mux.Handle("GET /spectate", requestProcessor)

		go func() {
			addr := fmt.Sprintf("0.0.0.0:%d", cfg.SpectatePort)
			log.Info("spectator stream listening", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Error("spectator stream stopped", "err", err)
			}
		}()
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	humanChooser := mb.NewHumanChooser(prompter)
	botChooser := console.NewThinkingChooser(
		mb.NewBotChooser(mb.DefaultBoardSize, rng),
		cfg.BotThinkMin,
		cfg.BotThinkMax,
		rng,
	)

	narrator.Greet()

matchLoop:
	for {
		game := gameManager.CreateGame(humanChooser, botChooser, rng, notifiers)
		if cfg.SpectatePort != 0 {
			log.Info("match started", "game", game.Uuid(), "spectate", fmt.Sprintf("ws://localhost:%d/spectate?%s=%s", cfg.SpectatePort, api.URLQueryGameUuidKeyword, game.Uuid()))
		}

		state, err := game.Play()
		gameManager.TerminateGame(game.Uuid())
		if err != nil {
			if errors.Is(err, io.EOF) {
				narrator.Println("\nBye!")
				break matchLoop
			}
			log.Fatal("match aborted", "game", game.Uuid(), "err", err)
		}
		log.Debug("match over", "game", game.Uuid(), "state", state.String(), "moves", game.Moves())

		again, err := prompter.Confirm("Play again?")
		if err != nil || !again {
			narrator.Println("Bye!")
			break matchLoop
		}
	}
}
