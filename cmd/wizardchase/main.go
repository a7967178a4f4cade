// wizardchase is a terminal arcade game: catch the wizard before the clock
// runs out.
//
// Usage:
//
//	wizardchase                  - Play (same as "play")
//	wizardchase play             - Play in this terminal
//	wizardchase serve            - Start SSH server for remote play
//	wizardchase scores           - Show the best rounds
//	wizardchase languages        - List UI languages
//	wizardchase settings         - Show or change stored settings
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible rounds
//	--db <path>       - Set database path (default: ~/.wizardchase/wizardchase.db)
//	--config <path>   - Use a custom rules YAML
//	--log <path>      - Set log file for the terminal UI
//	--profile <name>  - Settings profile (default: current user)
//
// Defaults for --db, --log and the initial language may also come from
// WIZARDCHASE_DB, WIZARDCHASE_LOG and WIZARDCHASE_LANG, read from the
// environment or a .env file in the working directory.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables read at startup.
const (
	envDB   = "WIZARDCHASE_DB"
	envLog  = "WIZARDCHASE_LOG"
	envLang = "WIZARDCHASE_LANG"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wizardchase",
	Short: "Wizard Chase - catch the wizard in your terminal",
	Long: `Wizard Chase is a 60-second arcade round in your terminal. The wizard
jumps around the field every second; click it (or aim with the arrow keys
and press space) to score. Power-ups add points or time.

Available commands:
  play       - Play in this terminal (default)
  serve      - Start SSH server for remote play
  scores     - View the best rounds
  languages  - List UI languages
  settings   - Show or change stored settings

Examples:
  wizardchase
  wizardchase play --seed 42
  wizardchase serve --ssh :2222
  wizardchase scores --limit 20
  wizardchase settings --lang tr --music off`,
	PersistentPreRunE: loadEnv,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wizardchase/wizardchase.db", "Path to scores and settings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.wizardchase/wizardchase.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Settings profile (default: current user)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadEnv reads .env and applies environment defaults to flags the user
// did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envDB); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envLog); v != "" && !flags.Changed("log") {
		flagLogPath = v
	}
	return nil
}

// defaultLanguage returns WIZARDCHASE_LANG or fallback.
func defaultLanguage(fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envLang)); v != "" {
		return v
	}
	return fallback
}

// profileName resolves --profile, falling back to the OS user name.
func profileName() string {
	if flagProfile != "" {
		return flagProfile
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
