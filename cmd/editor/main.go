package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speedgame/config"
	"github.com/milk9111/speedgame/editor"
)

func main() {
	configPath := flag.String("config", "", "editor config YAML (defaults to $SPEEDGAME_CONFIG, then built-in settings)")
	levelName := flag.String("level", "", "level to open: a .sgld path or a bundled level name")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := os.WriteFile(*writeConfig, config.DefaultYAML, 0o644); err != nil {
			log.Fatalf("write config: %v", err)
		}
		log.Printf("wrote default config to %s", *writeConfig)
		return
	}

	log.Println("editor starting...")

	env, err := config.LoadEnv()
	if err != nil {
		log.Printf("%v", err)
	}
	path := *configPath
	if path == "" {
		path = env.ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("%v; using defaults", err)
		cfg = config.Default()
	}

	workDir := env.LevelDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			log.Printf("working dir: %v", err)
		}
	}

	edEnv := editor.Env{
		Dialog:    saveDialog{},
		Clipboard: newSystemClipboard(),
		WorkDir:   workDir,
	}
	ctrl, err := editor.NewController(cfg, edEnv)
	if err != nil {
		log.Printf("%v; using defaults", err)
		cfg = config.Default()
		if ctrl, err = editor.NewController(cfg, edEnv); err != nil {
			log.Fatalf("editor: %v", err)
		}
	}

	if *levelName != "" {
		level, err := openLevel(*levelName, env.LevelDir)
		if err != nil {
			log.Printf("failed to load level %s: %v", *levelName, err)
		} else {
			ctrl.Dispatch(editor.OpenLevel{Level: level})
		}
	}

	var watcher *config.Watcher
	if path != "" {
		if watcher, err = config.NewWatcher(path); err != nil {
			log.Printf("config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(NewGame(ctrl, watcher)); err != nil {
		log.Fatal(err)
	}
}
