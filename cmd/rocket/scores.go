package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-rocket/internal/platform/tui"
	"github.com/vovakirdan/retro-rocket/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
	flagClearRuns   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the profile and run history",
	Long: `Display the high score, credits balance and best runs.

Examples:
  rocket scores
  rocket scores --recent --limit 5
  rocket scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by most recent instead of best")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete the run history (keeps high score and credits)")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening profile database: %w", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	profile, err := store.Load()
	if err != nil {
		return err
	}

	var runs []storage.RunEntry
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Retro Rocket")
	fmt.Println()
	fmt.Printf("  High score: %d\n", profile.HighScore)
	fmt.Printf("  Credits:    %d\n", profile.Credits)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rocket play' to set the first score!")
		return nil
	}

	fmt.Println(title)
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Credits", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, r.Score, r.CreditsEarned, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %d runs, average score %.1f, %d credits earned\n", stats.Runs, stats.AvgScore, stats.TotalCredits)
	return nil
}
