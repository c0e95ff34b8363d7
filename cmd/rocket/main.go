// rocket is a retro arcade shooter for the terminal: steer a ship through a
// wrap-around meteor field, shoot, and graze meteors for near-miss points.
//
// Usage:
//
//	rocket play            - Play
//	rocket scores          - Show the profile and best runs
//	rocket list            - List registered games
//	rocket config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.rocket/rocket.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/retro-rocket/internal/games/rocket"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Retro Rocket - a meteor field shooter in your terminal",
	Long: `Retro Rocket puts you in a small ship inside a wrap-around meteor field.
Shoot meteors for points, fly close to them for near-miss bonuses, and
turn finished runs into credits.

Available commands:
  play     - Start the game
  scores   - View the profile and run history
  list     - Show registered games
  config   - Print the default configuration

Examples:
  rocket play
  rocket play --difficulty hard
  rocket scores --interactive
  rocket config > ~/.rocket/configs/rocket.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rocket/rocket.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.rocket/rocket.log", "Log file used while the game owns the terminal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
