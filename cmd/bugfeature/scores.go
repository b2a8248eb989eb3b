package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-to-feature/internal/platform/tui"
	"github.com/vovakirdan/bug-to-feature/internal/storage"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var (
	flagScoresAll   bool
	flagInteractive bool
	flagPlayer      string
	flagRunID       string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs, or every run with --all.

With --player, lists that player's most recent runs instead.
With --interactive, opens the scoreboard browser.
With --id, shows a single run. With --clear, deletes every recorded run.

Examples:
  bugfeature scores
  bugfeature scores --all
  bugfeature scores --player alice
  bugfeature scores --interactive
  bugfeature scores --id 0b5c6a8e-3f0e-4d2b-9a61-6f7b2f0c9d11
  bugfeature scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every run instead of the top 10")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "List the recent runs of this player")
	scoresCmd.Flags().StringVar(&flagRunID, "id", "", "Show the run with this ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.MarkFlagsMutuallyExclusive("id", "clear", "interactive", "all")
	scoresCmd.MarkFlagsMutuallyExclusive("id", "clear", "player")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("All Bug to Feature runs deleted.")
		return nil

	case flagRunID != "":
		if _, err := uuid.Parse(flagRunID); err != nil {
			return fmt.Errorf("invalid run id %q: %w", flagRunID, err)
		}
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return fmt.Errorf("retrieving run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("no run with id %s", flagRunID)
		}
		fmt.Println(runDetails(*run))
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player := flagPlayer
		if player == "" {
			player = playerName()
		}
		_, err := tui.RunScoreboard(store, gameID, player, width, height)
		return err
	}

	limit := 10
	if flagScoresAll {
		limit = math.MaxInt32
	}

	var runs []storage.RunRecord
	title := "Top runs"
	if flagPlayer != "" {
		title = fmt.Sprintf("Recent runs - %s", flagPlayer)
		runs, err = store.RecentRuns(flagPlayer, limit)
	} else {
		runs, err = store.TopRuns(gameID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	fmt.Printf("Bug to Feature - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bugfeature play' to set the first high score!")
		return nil
	}

	fmt.Println(runsTable(runs))

	// Show totals
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Releases shipped: %d   Most launches: %d\n",
			stats.HighScore, stats.GamesCount, stats.Victories, stats.BestLaunch)
	}
	return nil
}

// runsTable lays runs out as a bordered table.
func runsTable(runs []storage.RunRecord) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Launches", "Level", "Branch", "Result", "Time", "Player", "Date", "ID").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, r := range runs {
		t.Row(
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Launches),
			r.Level,
			r.Branch,
			runResult(r),
			formatDuration(r.Duration),
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.ID,
		)
	}
	return t
}

// runDetails lays a single run out as a two-column table.
func runDetails(r storage.RunRecord) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(
			[]string{"ID", r.ID},
			[]string{"Player", r.Player},
			[]string{"Score", fmt.Sprintf("%d", r.Score)},
			[]string{"Result", runResult(r)},
			[]string{"Launches", fmt.Sprintf("%d", r.Launches)},
			[]string{"Level", r.Level},
			[]string{"Branch", r.Branch},
			[]string{"Time", formatDuration(r.Duration)},
			[]string{"Date", r.CreatedAt.Format("2006-01-02 15:04")},
		)
}

func runResult(r storage.RunRecord) string {
	if r.Victory {
		return "shipped"
	}
	return "crashed"
}

// formatDuration renders a run duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
