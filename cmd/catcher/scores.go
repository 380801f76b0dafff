package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/games/catcher"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and aggregate statistics.

Examples:
  catcher scores
  catcher scores --limit 25
  catcher scores --all
  catcher scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded game")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(catcher.ID); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(catcher.ID)
	} else {
		scores, err = store.TopScores(catcher.ID, flagScoresLimit)
	}
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(catcher.ID)
	if err != nil {
		return err
	}

	printScores(os.Stdout, scores, stats)
	return nil
}

// printScores writes the score table and summary.
func printScores(w io.Writer, scores []storage.ScoreEntry, stats *storage.GameStats) {
	fmt.Fprintln(w, "High Scores - Fruit Catcher")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'catcher play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %-6s  %s\n",
			i+1, e.Player, e.Score, formatRun(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best score: %d   Games: %d   Average: %.1f   Longest run: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, formatRun(stats.LongestRun))
	}
}

func formatRun(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
