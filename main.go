// Package main provides the entry point for the HoloMat kiosk.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"holomat/internal/app"
	"holomat/internal/config"
	"holomat/internal/logging"
	"holomat/internal/version"
	"holomat/ui/mainwindow"
	"holomat/ui/prefs"
)

const appID = "com.holomat.kiosk"

func main() {
	configPath := flag.String("config", "holomat.toml", "Path to the kiosk config file")
	var flags config.Flags
	flag.StringVar(&flags.Apps, "apps", "", "Path to the app catalog (overrides config)")
	flag.BoolVar(&flags.ShowAll, "show-all", false, "Place every app on the ring instead of a window")
	flag.BoolVar(&flags.Tray, "tray", false, "Show the bottom-bar tray instead of the carousel")
	flag.BoolVar(&flags.Fullscreen, "fullscreen", false, "Start fullscreen")
	flag.Float64Var(&flags.MmPerPixel, "mm-per-pixel", 0, "Display scale in millimetres per pixel")
	flag.StringVar(&flags.Theme, "theme", "", "Color theme")
	flag.StringVar(&flags.Tool, "tool", "", "Initial overlay tool")
	verbose := flag.Bool("v", false, "Verbose logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := logging.Logger()
	log.Info("Starting HoloMat", "version", version.Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		log.Info("Config: no config file, using defaults", "path", *configPath)
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	state := app.NewState(cfg)
	appPrefs := prefs.Load()

	fyneApp := fyneapp.NewWithID(appID)
	win := mainwindow.New(fyneApp, state, appPrefs)
	if err := state.LoadCatalog(cfg.Apps); err != nil {
		log.Warn("Catalog: starting empty", "err", err)
	}

	win.ShowAndRun()
}
