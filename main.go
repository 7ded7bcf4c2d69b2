package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/olivier-w/glimmer/internal/config"
	"github.com/olivier-w/glimmer/internal/field"
	"github.com/olivier-w/glimmer/internal/gfx"
	"github.com/olivier-w/glimmer/internal/surface"
	"github.com/olivier-w/glimmer/internal/ui"
)

func main() {
	term := flag.Bool("term", false, "render in the terminal instead of an SDL window")
	width := flag.Int("width", 960, "window width in pixels (height is width x 0.75)")
	fps := flag.Int("fps", 0, "terminal frame rate (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	cfgPath := flag.String("config", "", "TOML tuning file")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *fps > 0 {
		cfg.FPS = *fps
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	theme := gfx.DefaultTheme()

	// Prefer the SDL window; a failure here means no display, which is
	// not an error for a decorative animation — try the terminal next.
	if !*term {
		if win, err := surface.NewWindow("glimmer", *width); err == nil {
			defer win.Close()
			win.Run(field.New(cfg, theme, s))
			return
		}
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		// No surface anywhere: abort silently rather than crash or
		// spam a pipe with escape codes.
		return
	}

	program := tea.NewProgram(ui.New(cfg, theme, s), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
