package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/XThorin/WizardChase/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds",
	Long: `Display the best rounds recorded in the database.

Examples:
  wizardchase scores
  wizardchase scores --limit 20
  wizardchase scores --player Ava`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show rounds of this player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagPlayer != "" {
		scores, err = store.PlayerScores(flagPlayer, flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Wizard Chase")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wizardchase play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "----", "----")

	for i, e := range scores {
		record := ""
		if e.NewRecord {
			record = "  *"
		}
		fmt.Printf("  %-4d  %-16s  %-6d  %-6s  %s%s\n",
			i+1, e.Player, e.Score, fmt.Sprintf("%ds", e.TimePlayed),
			e.CreatedAt.Local().Format("2006-01-02 15:04"), record)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f\n", stats.Rounds, stats.HighScore, stats.AvgScore)
	}
}
