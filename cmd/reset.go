package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace today's grid with a fresh empty one",
	Long:  `Reset today's log to 96 empty slots. There is no undo.`,
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return fmt.Errorf("reset is irreversible; re-run with --yes to confirm")
	}

	dateKey := todayKey()
	store := mustOpenStore()
	if _, err := store.ResetDay(dateKey); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Reset %s to an empty grid.\n", dateKey)
	return nil
}
