package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
	"github.com/akorolev/quarterday/internal/stats"
)

var statsFormat string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's category distribution",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "Output format: table, csv, json")
}

func runStats(cmd *cobra.Command, args []string) error {
	dateKey := todayKey()

	store := mustOpenStore()
	day, err := store.LoadDay(dateKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := store.SaveActiveView(model.ViewStats); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	rows := stats.Aggregate(day.Slots)
	total := stats.TotalLogged(day.Slots)

	switch statsFormat {
	case "csv":
		fmt.Println("category,slots,minutes,share")
		for _, row := range rows {
			fmt.Printf("%s,%d,%d,%s\n",
				csvEscape(string(row.Category)), row.Count, row.Count*grid.SlotMinutes,
				stats.FormatShare(row.Count, total))
		}
	case "json":
		out := struct {
			Date       string                `json:"date"`
			Categories []stats.CategoryCount `json:"categories"`
			TotalSlots int                   `json:"total_slots"`
		}{Date: day.Date, Categories: rows, TotalSlots: total}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default: // table
		if len(rows) == 0 {
			fmt.Println("Nothing logged yet.")
			return nil
		}
		fmt.Printf("%s\n\n", day.Date)
		table := uitable.New()
		table.AddRow("CATEGORY", "SLOTS", "TIME", "SHARE")
		for _, row := range rows {
			table.AddRow(
				colorize(row.Category, string(row.Category)),
				fmt.Sprintf("%d", row.Count),
				stats.FormatDuration(row.Count),
				stats.FormatShare(row.Count, total),
			)
		}
		table.AddRow("total", fmt.Sprintf("%d", total), stats.FormatDuration(total), "")
		fmt.Println(table)
	}
	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
