package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/rs/zerolog"

	"bigtwo/internal/app"
	"bigtwo/internal/cli"
	"bigtwo/internal/config"
	"bigtwo/internal/domain"
)

func main() {
	configPath := flag.String("config", "data/game_config.json", "path to the game config file")
	flag.Parse()

	env, err := config.LoadConsoleEnv()
	if err != nil {
		pterm.Error.Printfln("bad environment: %v", err)
		os.Exit(1)
	}

	log := newLogger(env.LogLevel)

	if err := config.LoadGameConfig(*configPath); err != nil {
		log.Warn().Err(err).Msg("using default game config")
	}
	gc := config.GetGameConfig()

	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Big ", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("Two", pterm.FgLightRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(banner)
	}

	var rng *rand.Rand
	if env.Seed != 0 {
		rng = rand.New(rand.NewSource(env.Seed))
	}

	svc := app.NewService(rng, log, domain.ScoreOptions{
		PointsPerCard:   gc.PointsPerCard,
		DeuceMultiplier: gc.DeuceMultiplier,
	})

	runner := cli.NewRunner(
		svc,
		env.PlayerName,
		time.Duration(gc.BotThinkDelayMs)*time.Millisecond,
		cli.TerminalPrompt,
		log,
	)

	if _, err := runner.Run(); err != nil {
		log.Error().Err(err).Msg("game aborted")
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
