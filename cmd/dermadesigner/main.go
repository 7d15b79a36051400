// Dermadesigner is a WYSIWYG editor for Derma layouts. Pick a widget type in
// the palette on the left, click the canvas to place it, then drag, resize
// and parent widgets. Ctrl+E writes the Lua that rebuilds the layout.
//
// Keys:
//   - Delete removes the selection; PageUp/PageDown raise or lower it.
//   - Arrow keys nudge the selection by one pixel.
//   - Ctrl+L lock, Ctrl+M centre, Ctrl+H hide in the designer,
//     Ctrl+V toggle runtime visibility, Ctrl+P parent to the widget under
//     the cursor (or detach).
//   - Typing filters the palette; Enter places the best match; Escape clears.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"

	derma "github.com/alandoherty/dermadesignerb"
	"github.com/alandoherty/dermadesignerb/config"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	scriptPath := flag.String("script", "", "JSON automation script to play on start")
	debug := flag.Bool("debug", false, "print diagnostics to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	skin, err := derma.LoadSkin(cfg.Assets.Dir)
	if err != nil {
		log.Fatal(err)
	}
	font, err := derma.LoadFont(cfg.Assets.FontFile, cfg.Assets.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	reg := derma.NewRegistry()
	if err := derma.RegisterStandardWidgets(reg, skin); err != nil {
		log.Fatal(err)
	}

	session := derma.NewSession(reg)
	session.SetSkin(skin)
	session.SetDebugMode(cfg.Debug.Enabled || *debug)
	session.ParentsFirst = cfg.Export.ParentsFirst

	game := derma.NewGame(session, derma.NewPalette(reg, cfg.Window.PaletteWidth), font, derma.GameConfig{
		Title:               cfg.Window.Title,
		Width:               cfg.Window.Width,
		Height:              cfg.Window.Height,
		PaletteWidth:        cfg.Window.PaletteWidth,
		DoubleClickInterval: cfg.Canvas.DoubleClick(),
		TickInterval:        cfg.Canvas.TickInterval(),
		ScreenshotDir:       cfg.Debug.ScreenshotDir,
	})
	game.OnExport = func(code string) error {
		return export(cfg.Export, session, code)
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		runner, err := derma.LoadTestScript(data)
		if err != nil {
			log.Fatal(err)
		}
		game.SetTestRunner(runner)
	}

	if err := derma.Run(game); err != nil {
		log.Fatal(err)
	}
}

// export writes code to the configured file and, if enabled, the clipboard.
func export(cfg config.ExportConfig, session *derma.Session, code string) error {
	for _, w := range session.CheckDesign() {
		fmt.Fprintf(os.Stderr, "[derma] export warning: %s\n", w)
	}
	if cfg.Path != "" {
		if err := os.WriteFile(cfg.Path, []byte(code), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Path, err)
		}
	}
	if cfg.Clipboard && !clipboard.Unsupported {
		if err := clipboard.WriteAll(code); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}
