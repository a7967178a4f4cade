package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XThorin/WizardChase/internal/config"
	"github.com/XThorin/WizardChase/internal/i18n"
	"github.com/XThorin/WizardChase/internal/storage"
)

var (
	flagLang  string
	flagMusic string
	flagSound string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change stored settings",
	Long: `Show the stored settings of a profile, or change them.

Examples:
  wizardchase settings
  wizardchase settings --lang ja
  wizardchase settings --music off --sound on
  wizardchase settings --profile ava --lang es`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagLang, "lang", "", "Language code (see 'wizardchase languages')")
	settingsCmd.Flags().StringVar(&flagMusic, "music", "", "Background music: on or off")
	settingsCmd.Flags().StringVar(&flagSound, "sound", "", "Sound effects: on or off")
}

func runSettings(cmd *cobra.Command, _ []string) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	profile := profileName()
	prefs, err := store.LoadPreferences(profile, defaultPreferences(rules))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	changed := false
	if flagLang != "" {
		if _, err := i18n.Lookup(flagLang); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'wizardchase languages' to see available languages.")
			os.Exit(1)
		}
		prefs.Language = flagLang
		changed = true
	}
	for _, toggle := range []struct {
		name  string
		value string
		dst   *bool
	}{
		{"music", flagMusic, &prefs.MusicEnabled},
		{"sound", flagSound, &prefs.SoundEnabled},
	} {
		if !cmd.Flags().Changed(toggle.name) {
			continue
		}
		on, err := parseOnOff(toggle.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: --%s %v\n", toggle.name, err)
			os.Exit(1)
		}
		*toggle.dst = on
		changed = true
	}

	if changed {
		if err := store.SavePreferences(profile, prefs); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
	}

	lang, _ := i18n.Lookup(prefs.Language)
	fmt.Printf("Settings for %s\n", profile)
	fmt.Println()
	fmt.Printf("  %-9s %s (%s)\n", "Language", lang.DisplayName, prefs.Language)
	fmt.Printf("  %-9s %s\n", "Music", onOff(prefs.MusicEnabled))
	fmt.Printf("  %-9s %s\n", "Sound", onOff(prefs.SoundEnabled))
}

func parseOnOff(v string) (bool, error) {
	switch v {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expects on or off, got %q", v)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
