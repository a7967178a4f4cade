package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/XThorin/WizardChase/internal/audio"
	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/core"
	"github.com/XThorin/WizardChase/internal/game"
	"github.com/XThorin/WizardChase/internal/platform/tui"
	"github.com/XThorin/WizardChase/internal/share"
	"github.com/XThorin/WizardChase/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Wizard Chase in this terminal.

Controls:
  Mouse click      - Tap the wizard or a power-up
  Arrows/WASD      - Move the crosshair
  Space            - Tap at the crosshair
  P                - Pause / resume
  Esc              - Leave the round
  Q/Ctrl+C         - Quit

Examples:
  wizardchase play
  wizardchase play --seed 42
  wizardchase play --config ./my-wizard.yaml
  wizardchase play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not open the audio device")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the first frame
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	profile := profileName()
	prefs := defaultPreferences(rules)
	if store != nil {
		if prefs, err = store.LoadPreferences(profile, prefs); err != nil {
			logger.Warn("could not load preferences", "profile", profile, "error", err)
		}
	}

	speaker := audio.NewSpeaker(audio.Options{
		MusicVolume:  rules.Audio.MusicVolume,
		SoundVolume:  rules.Audio.SoundVolume,
		MusicEnabled: prefs.MusicEnabled,
		SoundEnabled: prefs.SoundEnabled,
		Logger:       logger,
	})
	if !flagMute {
		if initErr := speaker.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	logger.Info("session started", "profile", profile, "language", prefs.Language)
	runErr := tui.Run(ctx, tui.Options{
		Runtime:     cfg,
		Rules:       rules,
		Audio:       speaker,
		Store:       store,
		Profile:     profile,
		Preferences: prefs,
		Sharer: share.New(share.Options{
			Clipboard:  os.Stdout,
			UseBrowser: true,
			Logger:     logger,
		}),
		Logger: logger,
	})
	stop()
	logger.Info("session ended")

	// Close resources before potential exit
	speaker.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// defaultPreferences are used until a profile has stored settings.
func defaultPreferences(rules config.Rules) game.Preferences {
	return game.Preferences{
		Language:     defaultLanguage(rules.Preferences.DefaultLanguage),
		MusicEnabled: rules.Preferences.MusicEnabled,
		SoundEnabled: rules.Preferences.SoundEnabled,
	}
}

// openLogger writes logs to a file, since the terminal belongs to the UI.
// When the file cannot be opened logs are discarded.
func openLogger(path string) (*log.Logger, func()) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "wizardchase",
			})
			return logger, func() { f.Close() }
		}
	}
	return log.New(io.Discard), func() {}
}
