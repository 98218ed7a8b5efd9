package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// session bundles what every command needs.
type session struct {
	cfg      config.PlatformerConfig
	loader   *levels.Loader
	reg      *registry.Registry
	logger   *log.Logger
	closeLog func()
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newSession loads config and levels. Interactive sessions log to
// ~/.platformer/platformer.log since the terminal belongs to the UI.
func newSession(interactive bool) *session {
	s := &session{closeLog: func() {}}

	var out io.Writer = os.Stderr
	if interactive {
		f, err := openLogFile()
		if err != nil {
			out = io.Discard
		} else {
			out = f
			s.closeLog = func() { f.Close() }
		}
	}
	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q: %v", flagLogLevel, err)
	}
	s.logger.SetLevel(level)

	s.cfg, err = config.LoadPlatformer(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		fail("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	config.ApplyDifficultyPreset(&s.cfg, preset)
	if flagFPS > 0 {
		s.cfg.Screen.TickRate = flagFPS
	}
	if err := config.ValidateConfig(s.cfg); err != nil {
		fail("%v", err)
	}

	s.loader, err = levels.Open(flagLevels, s.logger)
	if err != nil {
		fail("%v", err)
	}
	s.reg = registry.New()
	if err := platformer.RegisterLevels(s.reg, s.loader, s.cfg, s.logger); err != nil {
		fail("%v", err)
	}
	return s
}

func openLogFile() (*os.File, error) {
	dir := config.UserDir()
	if dir == "" {
		return nil, fmt.Errorf("no home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "platformer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// runtimeConfig sizes the game to the terminal.
func (s *session) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.cfg.Screen.TickRate,
		Seed:     flagSeed,
	}
}

// openStore opens the run database. Failure is a warning; games still work.
func (s *session) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open times database: %v\n", err)
		s.logger.Warn("no times database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
