// bugfeature is an arcade shooter about shipping software: shoot falling bugs
// to turn them into features, collect features, and launch production
// rockets at the mothership before the bugs reach production.
//
// Usage:
//
//	bugfeature play          - Play in the terminal (or a window with --gui)
//	bugfeature serve         - Start SSH server for remote play
//	bugfeature scores        - Show the best runs
//	bugfeature levels        - Show the difficulty level table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.bugfeature/scores.db)
//
// A .env file in the working directory may set BUGFEATURE_DB,
// BUGFEATURE_SSH_ADDR and BUGFEATURE_HOST_KEY.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/games/bugfeature"
)

const defaultDBPath = "~/.bugfeature/scores.db"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugfeature",
	Short: "Bug to Feature - turn bugs into features and ship them",
	Long: `Bug to Feature is an arcade shooter about shipping software.

Shoot the bugs the mothership drops to turn them into features, catch
the features, and once you hold five of them launch a production rocket
at the mothership. Ship 15 releases to win; let 3 bugs reach production
and the game is over.

Available commands:
  play     - Play in the terminal, or in a window with --gui
  serve    - Start SSH server for remote play
  scores   - View the best runs
  levels   - Show the difficulty level table

Examples:
  bugfeature play
  bugfeature play --gui --sound
  bugfeature serve --ssh :2222
  bugfeature scores --interactive`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadEnv(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		if !cmd.Flags().Changed("db") {
			flagDBPath = config.GetEnv(config.EnvDBPath, defaultDBPath)
		}
		return nil
	},
}

// playerName is the name local runs are recorded under.
func playerName() string {
	return config.GetEnv("USER", "local")
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (env "+config.EnvDBPath+")")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// gameID is the only game this binary registers.
const gameID = bugfeature.ID
