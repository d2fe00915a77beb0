package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
	"github.com/akorolev/quarterday/internal/stats"
)

var showAll bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's activity grid",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showAll, "all", false, "Include empty slots")
}

// categoryColors mirrors the per-category accent colors of the tracker UI.
var categoryColors = map[model.Category]*color.Color{
	model.CategoryWork:    color.New(color.FgCyan),
	model.CategoryLeisure: color.New(color.FgMagenta),
	model.CategorySport:   color.New(color.FgGreen),
	model.CategoryFood:    color.New(color.FgYellow),
	model.CategoryStudy:   color.New(color.FgHiMagenta),
	model.CategorySleep:   color.New(color.FgBlue),
	model.CategoryOther:   color.New(color.FgWhite),
}

func colorize(c model.Category, s string) string {
	if cc, ok := categoryColors[c]; ok {
		return cc.Sprint(s)
	}
	return s
}

func runShow(cmd *cobra.Command, args []string) error {
	now := time.Now()
	dateKey := todayKey()

	store := mustOpenStore()
	day, err := store.LoadDay(dateKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := store.SaveActiveView(model.ViewTracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	logged := stats.TotalLogged(day.Slots)
	fmt.Printf("%s — %d of %d slots logged (%s)\n\n",
		day.Date, logged, grid.SlotsPerDay, stats.FormatDuration(logged))

	if logged == 0 && !showAll {
		fmt.Println("Nothing logged yet. Use: qday log [time] <activity> --category <cat>")
		return nil
	}

	current := grid.SlotIDAt(now)
	table := uitable.New()
	table.AddRow("", "TIME", "CATEGORY", "ACTIVITY")
	for _, slot := range day.Slots {
		empty := strings.TrimSpace(slot.Activity) == ""
		if empty && !showAll {
			continue
		}
		marker := ""
		if slot.ID == current {
			marker = "→"
		}
		cat := ""
		if !empty {
			cat = colorize(slot.Category, string(slot.Category))
		}
		table.AddRow(marker, slot.Time, cat, slot.Activity)
	}
	fmt.Println(table)
	return nil
}
