package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"extbadges/lib/serviceutil"
	"extbadges/services/badges"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	delayMs    *uint64
	destPath   *string
	badgesPath *string
)

func init() {
	delayMs = rootCmd.Flags().Uint64("delay", 1000, "Delay in milliseconds before each outbound query.")
	destPath = rootCmd.Flags().String("dest", ".", "Path where to put resulting badge SVGs.")
	badgesPath = rootCmd.Flags().String("badges", "./badges.toml", "Path to the badge entries TOML.")
}

var rootCmd = &cobra.Command{
	Use:   "extbadges [--delay <ms>] [--dest <path>] [--badges <path>]",
	Short: "extbadges scrapes user counts from browser extension stores into SVG badges.",
	Run: func(cmd *cobra.Command, args []string) {
		service := badges.NewService(badges.Options{
			Delay:      time.Duration(*delayMs) * time.Millisecond,
			DestDir:    *destPath,
			BadgesPath: *badgesPath,
		}, nil)

		results, err := service.Run(cmd.Context())
		printSummary(results)
		if err != nil {
			serviceutil.Fatal("badge run aborted", err)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printSummary(results []badges.Result) {
	if len(results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"entry", "users", "status"})
	for _, r := range results {
		if r.Err != nil {
			t.AppendRow(table.Row{r.Name, "-", r.Err.Error()})
			continue
		}
		t.AppendRow(table.Row{r.Name, r.Total, "ok"})
	}
	t.Render()
}
