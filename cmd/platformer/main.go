// Platformer runs the game in a window.
//
// Usage:
//
//	platformer [-config assets/config.toml] [-levels dir] [-debug]
//	platformer -script run.json [-shots dir] [-quit]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/platformer"
	"github.com/phanxgames/platformer/level"
	"github.com/phanxgames/platformer/render"
)

func main() {
	var (
		configPath = flag.String("config", "assets/config.toml", "path to the TOML config file")
		levelsDir  = flag.String("levels", "", "directory of level files (overrides levels_dir)")
		debug      = flag.Bool("debug", false, "print per-tick stage timings and show FPS")
		scriptPath = flag.String("script", "", "JSON input script to replay instead of live input")
		shotsDir   = flag.String("shots", "screenshots", "directory for script screenshots")
		quit       = flag.Bool("quit", false, "exit when the input script ends")
	)
	flag.Parse()

	cfg, err := platformer.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *levelsDir != "" {
		cfg.LevelsDir = *levelsDir
	}
	if *debug {
		cfg.Debug = true
	}

	var script *render.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		if script, err = render.LoadScript(data); err != nil {
			log.Fatal(err)
		}
	}

	opts := render.DefaultOptions(cfg)
	opts.ScreenshotDir = *shotsDir
	opts.QuitAfterScript = *quit

	m := platformer.NewMachine(donburi.NewWorld(), cfg, level.Dir(cfg.LevelsDir))
	if err := render.Run(m, &platformer.InitState{}, opts, script); err != nil {
		log.Fatal(err)
	}
}
