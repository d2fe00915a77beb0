package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akorolev/quarterday/internal/advice"
	"github.com/akorolev/quarterday/internal/config"
	"github.com/akorolev/quarterday/internal/gemini"
	"github.com/akorolev/quarterday/internal/model"
)

var adviceCached bool

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Get AI productivity advice for today's log",
	Long: `Send today's logged activities to the generative-text service and print
its productivity advice. The result is stored and can be re-read later
with --cached without contacting the service again.`,
	Args: cobra.NoArgs,
	RunE: runAdvice,
}

func init() {
	adviceCmd.Flags().BoolVar(&adviceCached, "cached", false, "Print the stored advice without a new request")
}

func runAdvice(cmd *cobra.Command, args []string) error {
	dateKey := todayKey()

	store := mustOpenStore()
	if err := store.SaveActiveView(model.ViewAdvice); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if adviceCached {
		text, err := store.Advice(dateKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if text == "" {
			fmt.Println("No advice stored for today yet. Run: qday advice")
			return nil
		}
		fmt.Println(text)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	client := gemini.NewClient(gemini.Options{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		TopP:        cfg.Gemini.TopP,
		TopK:        cfg.Gemini.TopK,
		Timeout:     time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	})
	advisor := advice.New(client, store, cfg.Gemini.Language, newLogger())

	fmt.Fprintln(os.Stderr, "Requesting advice...")
	fmt.Println(advisor.Request(context.Background(), dateKey))
	return nil
}
