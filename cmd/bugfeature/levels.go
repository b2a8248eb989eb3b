package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bug-to-feature/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty level table",
	Long: `Print the levels the mothership goes through as releases ship.

Uses the same config search as 'play', so --config and --difficulty
show the table a game with those flags would use.

Examples:
  bugfeature levels
  bugfeature levels --difficulty fixed`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	fmt.Println(levelsTable(cfg.Difficulty.Levels))

	if !cfg.Difficulty.Enabled {
		fmt.Println("Level progression is disabled: the game stays at the first level.")
	}
	fmt.Printf("Victory after %d releases, %d features per rocket, %d lives.\n",
		cfg.Session.VictoryLaunches, cfg.Session.FeaturesPerRocket, cfg.Session.Lives)
	return nil
}

func levelsTable(levels []config.LevelConfig) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Level", "Name", "From launch", "Mothership speed", "Erratic chance").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, lvl := range levels {
		t.Row(
			fmt.Sprintf("%d", i+1),
			lvl.Name,
			fmt.Sprintf("%d", lvl.Threshold),
			fmt.Sprintf("%.0f", lvl.Speed),
			fmt.Sprintf("%.0f%%", lvl.ErraticChance*100),
		)
	}
	return t
}
