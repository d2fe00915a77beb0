package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/akorolev/quarterday/internal/grid"
	"github.com/akorolev/quarterday/internal/model"
)

var logCategory string

var logCmd = &cobra.Command{
	Use:   "log [time] <activity>",
	Short: "Label a 15-minute slot with an activity",
	Long: `Label one slot of today's grid. The time is a quarter-hour like 08:15;
when omitted, the slot containing the current time is used. An empty
activity clears the slot.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logCategory, "category", string(model.CategoryOther),
		"Category: "+categoryList())
}

func categoryList() string {
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func runLog(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var slotID, activity string
	if len(args) == 2 {
		id, err := grid.ParseSlotID(args[0])
		if err != nil {
			return err
		}
		slotID, activity = id, args[1]
	} else {
		slotID, activity = grid.SlotIDAt(now), args[0]
	}

	category, ok := model.ParseCategory(logCategory)
	if !ok {
		return fmt.Errorf("unknown category %q (choose one of: %s)", logCategory, categoryList())
	}

	store := mustOpenStore()
	if _, err := store.UpdateSlot(todayKey(), slotID, activity, category); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if strings.TrimSpace(activity) == "" {
		fmt.Printf("Cleared slot %s\n", slotID)
		return nil
	}
	fmt.Printf("Logged %s  %s: %s\n", slotID, category, activity)
	return nil
}
