package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/golangdaddy/drifter/internal/log"
	"github.com/golangdaddy/drifter/pkg/config"
	"github.com/golangdaddy/drifter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

const envSeed = "DRIFT_SEED"

func main() {
	tuningPath := flag.String("tuning", "", "TOML tuning file (default $"+config.EnvTuningPath+" or built-in values)")
	writeTuning := flag.String("write-tuning", "", "write the resolved tuning to this file and exit")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	seed := flag.Int64("seed", 0, "skid and scenery seed (default $"+envSeed+" or the clock)")
	flag.Parse()

	log.Init(*logLevel)

	tuning, err := config.Resolve(*tuningPath)
	if err != nil {
		log.Error("failed to load tuning", "error", err)
		os.Exit(1)
	}

	if *writeTuning != "" {
		if err := config.Save(*writeTuning, tuning); err != nil {
			log.Error("failed to write tuning", "error", err)
			os.Exit(1)
		}
		log.Info("tuning written", "path", *writeTuning)
		return
	}

	runSeed := resolveSeed(*seed)
	log.Info("starting drifter", "seed", runSeed, "max_speed", tuning.MaxSpeed)

	ebiten.SetWindowSize(game.DefaultWidth, game.DefaultHeight)
	ebiten.SetWindowTitle("Drifter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewGame(tuning, runSeed)); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
}

// resolveSeed prefers the flag, then $DRIFT_SEED, then the clock
func resolveSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if v := os.Getenv(envSeed); v != "" {
		if s, err := strconv.ParseInt(v, 10, 64); err == nil {
			return s
		}
		log.Warn("ignoring malformed seed", "env", envSeed, "value", v)
	}
	return time.Now().UnixNano()
}
