package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XThorin/WizardChase/internal/i18n"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List UI languages",
	Long:  `Shows the languages the game can be played in.`,
	Args:  cobra.NoArgs,
	Run:   runLanguages,
}

func runLanguages(_ *cobra.Command, _ []string) {
	fmt.Println("Available languages:")
	fmt.Println()
	fmt.Printf("  %-4s  %s\n", "Code", "Name")
	fmt.Printf("  %-4s  %s\n", "----", "----")
	for _, l := range i18n.All() {
		fmt.Printf("  %-4s  %s\n", l.Code, l.DisplayName)
	}
	fmt.Println()
	fmt.Println("Run 'wizardchase settings --lang <code>' to change the language.")
}
